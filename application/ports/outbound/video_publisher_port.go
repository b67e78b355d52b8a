package outbound

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/domain"
)

type PublishVideoRequest struct {
	Video     domain.VideoArtifact
	Bucket    string
	KeyPrefix string
}

type PublishVideoResponse struct {
	URL    string
	Key    string
	Region string
}

// VideoPublisherPort writes one video object to durable storage and returns
// its public URL. Upload failures are surfaced as-is, never retried here.
type VideoPublisherPort interface {
	Publish(ctx context.Context, req PublishVideoRequest) (*PublishVideoResponse, error)
}
