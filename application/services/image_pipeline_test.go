package services

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/application/ports/inbound"
	"github.com/ohduang-droid/fc-morphix/domain"
	"github.com/panjf2000/ants/v2"
	"testing"
)

func TestImagePipeline_Generate(t *testing.T) {
	workerPool, err := ants.NewPool(20)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	imageGenerator := &fakeImageGenerator{
		images: []domain.GeneratedImage{
			{Data: []byte("img-0"), MimeType: "image/png", Text: "a caption"},
			{Data: []byte("img-1"), MimeType: "image/png"},
		},
	}
	store := &fakeMediaStore{}
	pipeline := NewImagePipeline(fakeLogger{}, imageGenerator, store, workerPool)

	result, err := pipeline.Generate(context.Background(), inbound.GenerateImagesParams{
		Prompt:   "make it cartoon",
		ImageURL: "http://x/ref.png",
	})
	if err != nil {
		t.Fatal("generate failed:", err)
	}

	expected := []string{
		"https://bucket.s3.amazonaws.com/images/img-0",
		"https://bucket.s3.amazonaws.com/images/img-1",
	}
	if len(result.URLs) != len(expected) {
		t.Fatalf("expected %d urls, got %d", len(expected), len(result.URLs))
	}
	for i, url := range expected {
		if result.URLs[i] != url {
			t.Errorf("url %d: expected %s, got %s", i, url, result.URLs[i])
		}
	}
	if len(result.Texts) != 1 || result.Texts[0] != "a caption" {
		t.Errorf("unexpected texts: %v", result.Texts)
	}
}

func TestImagePipeline_Generate_ValidatesInput(t *testing.T) {
	workerPool, err := ants.NewPool(5)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	pipeline := NewImagePipeline(fakeLogger{}, &fakeImageGenerator{}, &fakeMediaStore{}, workerPool)

	_, err = pipeline.Generate(context.Background(), inbound.GenerateImagesParams{Prompt: "p"})
	if domain.KindOf(err) != domain.ErrInvalidRequest {
		t.Errorf("expected invalid_request, got %v", err)
	}
}

func TestImagePipeline_Generate_UploadFailure(t *testing.T) {
	workerPool, err := ants.NewPool(5)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	imageGenerator := &fakeImageGenerator{
		images: []domain.GeneratedImage{{Data: []byte("img-0")}},
	}
	store := &fakeMediaStore{err: domain.Errorf(domain.ErrStorageUpload, "access denied")}
	pipeline := NewImagePipeline(fakeLogger{}, imageGenerator, store, workerPool)

	_, err = pipeline.Generate(context.Background(), inbound.GenerateImagesParams{
		Prompt:   "p",
		ImageURL: "http://x/ref.png",
	})
	if domain.KindOf(err) != domain.ErrStorageUpload {
		t.Errorf("expected storage_upload, got %v", err)
	}
}
