package mock_generator

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/domain"
)

type cannedImageGenerator struct{}

func NewCannedImageGenerator() outbound.ImageGeneratorPort {
	return &cannedImageGenerator{}
}

func (g *cannedImageGenerator) Generate(_ context.Context, prompt string) (*domain.ImageRef, error) {
	if prompt == "" {
		return nil, domain.Errorf(domain.ErrInvalidRequest, "image prompt is empty")
	}
	return &domain.ImageRef{
		Data:     []byte("mock-seed-image: " + prompt),
		MimeType: "image/png",
	}, nil
}

func (g *cannedImageGenerator) GenerateFromImage(_ context.Context, prompt string, reference *domain.ImageRef) ([]domain.GeneratedImage, error) {
	if reference.IsEmpty() {
		return nil, domain.Errorf(domain.ErrInvalidRequest, "a reference image is required")
	}
	return []domain.GeneratedImage{
		{
			Data:     []byte("mock-derived-image: " + prompt),
			MimeType: "image/png",
			Text:     "mock caption",
		},
	}, nil
}
