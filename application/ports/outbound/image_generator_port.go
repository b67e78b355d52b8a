package outbound

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/domain"
)

// ImageGeneratorPort produces images from a text prompt, optionally steered by
// a reference image. Generate returns a single seed image; GenerateFromImage
// returns every candidate the model emitted together with its text parts.
type ImageGeneratorPort interface {
	Generate(ctx context.Context, prompt string) (*domain.ImageRef, error)
	GenerateFromImage(ctx context.Context, prompt string, reference *domain.ImageRef) ([]domain.GeneratedImage, error)
}
