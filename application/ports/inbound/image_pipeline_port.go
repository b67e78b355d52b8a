package inbound

import (
	"context"
)

type GenerateImagesParams struct {
	Prompt    string
	ImageURL  string
	Bucket    string
	KeyPrefix string
}

type GenerateImagesResult struct {
	URLs  []string
	Texts []string
}

// ImagePipelinePort generates images from a prompt plus a reference image and
// uploads every candidate, returning their public URLs in candidate order.
type ImagePipelinePort interface {
	Generate(ctx context.Context, params GenerateImagesParams) (*GenerateImagesResult, error)
}
