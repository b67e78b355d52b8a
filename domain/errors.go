package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrInvalidRequest          ErrorKind = "invalid_request"
	ErrExternalService         ErrorKind = "external_service"
	ErrJobTimeout              ErrorKind = "job_timeout"
	ErrJobFailed               ErrorKind = "job_failed"
	ErrNoContinuationFrame     ErrorKind = "no_continuation_frame"
	ErrStorageUpload           ErrorKind = "storage_upload"
	ErrSegmentGenerationFailed ErrorKind = "segment_generation_failed"
)

// PipelineError tags an error with its taxonomy kind so callers can pick a
// retry decision or an HTTP status without string matching.
type PipelineError struct {
	Kind ErrorKind
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewPipelineError(kind ErrorKind, err error) *PipelineError {
	return &PipelineError{Kind: kind, Err: err}
}

func Errorf(kind ErrorKind, format string, args ...interface{}) *PipelineError {
	return &PipelineError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// SegmentError identifies which segment of a run failed and why.
type SegmentError struct {
	Index int
	Kind  ErrorKind
	Err   error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment %d: %s: %v", e.Index, e.Kind, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}

func NewSegmentError(index int, kind ErrorKind, err error) *SegmentError {
	return &SegmentError{Index: index, Kind: kind, Err: err}
}

// KindOf walks the error chain and returns the first taxonomy kind it finds,
// or the empty kind for untagged errors.
func KindOf(err error) ErrorKind {
	var segErr *SegmentError
	if errors.As(err, &segErr) {
		return segErr.Kind
	}
	var pipeErr *PipelineError
	if errors.As(err, &pipeErr) {
		return pipeErr.Kind
	}
	return ""
}

// IsRetryable reports whether a segment attempt that produced err may be
// resubmitted. Malformed input and malformed upstream output never retry.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case ErrExternalService, ErrJobTimeout, ErrJobFailed:
		return true
	default:
		return false
	}
}
