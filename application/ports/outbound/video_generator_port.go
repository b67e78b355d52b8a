package outbound

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/domain"
)

type SubmitSegmentParams struct {
	Prompt    string
	SeedImage *domain.ImageRef
}

// VideoGeneratorPort is the asynchronous generation provider. Submit consumes
// provider quota and returns an opaque job handle; Poll reports one status
// observation for that handle. Retry policy lives with the caller, never here.
type VideoGeneratorPort interface {
	Submit(ctx context.Context, params SubmitSegmentParams) (domain.JobHandle, error)
	Poll(ctx context.Context, handle domain.JobHandle) (*domain.JobPoll, error)
}
