package services

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/application/ports/inbound"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/channel_utils"
	"github.com/ohduang-droid/fc-morphix/domain"
)

type imagePipeline struct {
	logger         outbound.LoggerPort
	imageGenerator outbound.ImageGeneratorPort
	mediaStore     outbound.MediaStorePort
	workerPool     outbound.TaskDispatcher
}

func NewImagePipeline(
	logger outbound.LoggerPort,
	imageGenerator outbound.ImageGeneratorPort,
	mediaStore outbound.MediaStorePort,
	workerPool outbound.TaskDispatcher) inbound.ImagePipelinePort {
	return &imagePipeline{
		logger:         logger,
		imageGenerator: imageGenerator,
		mediaStore:     mediaStore,
		workerPool:     workerPool,
	}
}

// Generate produces image candidates from a prompt plus a reference image and
// uploads them concurrently. URLs come back in candidate order.
func (p *imagePipeline) Generate(ctx context.Context, params inbound.GenerateImagesParams) (*inbound.GenerateImagesResult, error) {
	if params.Prompt == "" || params.ImageURL == "" {
		return nil, domain.Errorf(domain.ErrInvalidRequest, "prompt and image_url are required")
	}

	images, err := p.imageGenerator.GenerateFromImage(ctx, params.Prompt, &domain.ImageRef{URL: params.ImageURL})
	if err != nil {
		p.logger.Error(err, "Failed to generate images")
		return nil, err
	}
	if len(images) == 0 {
		return nil, domain.Errorf(domain.ErrExternalService, "model returned no images")
	}

	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	urls := make([]string, len(images))
	errChs := make([]<-chan error, 0, len(images))

	for i := range images {
		idx := i
		image := images[i]
		errCh := make(chan error, 1)
		errChs = append(errChs, errCh)

		err := p.workerPool.Submit(func() {
			defer close(errCh)
			url, err := p.mediaStore.SaveImage(newCtx, outbound.SaveImageRequest{
				Image:     image,
				Bucket:    params.Bucket,
				KeyPrefix: params.KeyPrefix,
			})
			if err != nil {
				errCh <- err
				cancel()
				return
			}
			urls[idx] = url
		})
		if err != nil {
			errCh <- err
			close(errCh)
			cancel()
		}
	}

	mergedErrCh, err := channel_utils.MergeChannels(p.workerPool, errChs...)
	if err != nil {
		p.logger.Error(err, "Failed to merge upload error channels")
		return nil, err
	}

	var uploadErr error
	for err := range mergedErrCh {
		if uploadErr == nil {
			uploadErr = err
		}
	}
	if uploadErr != nil {
		p.logger.Error(uploadErr, "Failed to upload generated image")
		return nil, uploadErr
	}

	texts := make([]string, 0, len(images))
	for _, image := range images {
		if image.Text != "" {
			texts = append(texts, image.Text)
		}
	}

	return &inbound.GenerateImagesResult{
		URLs:  urls,
		Texts: texts,
	}, nil
}
