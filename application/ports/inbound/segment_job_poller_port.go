package inbound

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/domain"
	"time"
)

// SegmentJobPollerPort waits for a submitted job to reach a terminal state,
// querying at a fixed interval up to maxAttempts times.
type SegmentJobPollerPort interface {
	AwaitCompletion(ctx context.Context, job *domain.SegmentJob, pollInterval time.Duration, maxAttempts int) (*domain.SegmentResult, error)
}
