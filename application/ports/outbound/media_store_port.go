package outbound

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/domain"
)

type SaveImageRequest struct {
	Image     domain.GeneratedImage
	Bucket    string
	KeyPrefix string
}

// MediaStorePort uploads one generated image and returns its public URL.
type MediaStorePort interface {
	SaveImage(ctx context.Context, req SaveImageRequest) (string, error)
}
