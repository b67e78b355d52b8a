package domain

type JobState string

const (
	JobPending   JobState = "PENDING"
	JobRunning   JobState = "RUNNING"
	JobSucceeded JobState = "SUCCEEDED"
	JobFailed    JobState = "FAILED"
)

// IsTerminal reports whether the job can no longer change state.
func (s JobState) IsTerminal() bool {
	return s == JobSucceeded || s == JobFailed
}

// JobHandle is the opaque identifier the generation provider assigns to an
// asynchronous video job.
type JobHandle string

// ImageRef points at an image either by URL or by inline bytes.
type ImageRef struct {
	URL      string
	Data     []byte
	MimeType string
}

func (r *ImageRef) IsEmpty() bool {
	return r == nil || (r.URL == "" && len(r.Data) == 0)
}

// VideoArtifact is the output of one generated segment.
type VideoArtifact struct {
	Data      []byte
	SourceURL string
	MimeType  string
}

func NewSegmentRequest(prompt string, seedImage *ImageRef, index int) SegmentRequest {
	return SegmentRequest{
		Prompt:    prompt,
		SeedImage: seedImage,
		Index:     index,
	}
}

// SegmentRequest describes one segment to generate. Immutable once built.
type SegmentRequest struct {
	Prompt    string
	SeedImage *ImageRef
	Index     int
}

// SegmentJob tracks one submitted generation job until its output is consumed.
type SegmentJob struct {
	Handle   JobHandle
	Request  SegmentRequest
	Attempts int
	State    JobState
	Result   *SegmentResult
}

// SegmentResult is the product of a succeeded job: the video itself plus the
// continuation frame used to seed the following segment.
type SegmentResult struct {
	Video      VideoArtifact
	FinalFrame *ImageRef
}

// JobPoll is one status observation of an in-flight job.
type JobPoll struct {
	State       JobState
	Result      *SegmentResult
	FailureNote string
}

type RunStatus string

const (
	RunPending    RunStatus = "pending"
	RunGenerating RunStatus = "generating"
	RunCompleted  RunStatus = "completed"
	RunFailed     RunStatus = "failed"
)

// RunRecord is the status row persisted per pipeline run.
type RunRecord struct {
	RunID        string
	Status       RunStatus
	SegmentCount int
	FinalURL     string
	Failure      string
}

// GeneratedImage is one candidate produced by the image-to-image flow, paired
// with whatever text the model emitted alongside it.
type GeneratedImage struct {
	Data     []byte
	MimeType string
	Text     string
}
