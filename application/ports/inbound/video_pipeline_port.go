package inbound

import (
	"context"
	"time"
)

type StartRunParams struct {
	RunID          string
	SegmentPrompts []string
	ImagePrompts   []string
	ImageURLs      []string
	Bucket         string
	KeyPrefix      string
	PollInterval   time.Duration
	MaxRetries     int
}

type RunResult struct {
	URL string
}

// VideoPipelinePort runs one multi-segment generation pipeline to completion
// and returns the public URL of the final segment's artifact. No partial URLs
// are ever returned.
type VideoPipelinePort interface {
	StartRun(ctx context.Context, params StartRunParams) (*RunResult, error)
}
