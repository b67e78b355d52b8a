package services

import (
	"context"
	"errors"
	"github.com/ohduang-droid/fc-morphix/application/ports/inbound"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/domain"
)

type videoPipeline struct {
	logger          outbound.LoggerPort
	generator       outbound.VideoGeneratorPort
	imageGenerator  outbound.ImageGeneratorPort
	poller          inbound.SegmentJobPollerPort
	chainer         inbound.SegmentChainerPort
	publisher       outbound.VideoPublisherPort
	runRecorder     outbound.RunRecorderPort
	maxPollAttempts int
}

func NewVideoPipeline(
	logger outbound.LoggerPort,
	generator outbound.VideoGeneratorPort,
	imageGenerator outbound.ImageGeneratorPort,
	poller inbound.SegmentJobPollerPort,
	chainer inbound.SegmentChainerPort,
	publisher outbound.VideoPublisherPort,
	runRecorder outbound.RunRecorderPort,
	maxPollAttempts int) inbound.VideoPipelinePort {
	return &videoPipeline{
		logger:          logger,
		generator:       generator,
		imageGenerator:  imageGenerator,
		poller:          poller,
		chainer:         chainer,
		publisher:       publisher,
		runRecorder:     runRecorder,
		maxPollAttempts: maxPollAttempts,
	}
}

// StartRun generates every segment in order, seeding each one from the
// previous segment's continuation frame, and publishes only the final
// segment's video. Any fatal error aborts the run without publishing.
func (p *videoPipeline) StartRun(ctx context.Context, params inbound.StartRunParams) (*inbound.RunResult, error) {
	if len(params.SegmentPrompts) == 0 {
		return nil, domain.Errorf(domain.ErrInvalidRequest, "at least one segment prompt is required")
	}
	if len(params.ImageURLs) == 0 && len(params.ImagePrompts) == 0 {
		return nil, domain.Errorf(domain.ErrInvalidRequest, "provide at least one image prompt or image URL")
	}

	p.record(ctx, params, domain.RunGenerating, "", "")

	lastIndex := len(params.SegmentPrompts) - 1
	var previous *domain.SegmentResult

	for i, prompt := range params.SegmentPrompts {
		seed, err := p.resolveSeed(ctx, params, i, previous)
		if err != nil {
			err = segmentError(i, err)
			p.record(ctx, params, domain.RunFailed, "", err.Error())
			return nil, err
		}
		// The previous result is consumed once its frame has been extracted.
		previous = nil

		request := domain.NewSegmentRequest(prompt, seed, i)

		result, err := p.generateSegment(ctx, request, params)
		if err != nil {
			p.record(ctx, params, domain.RunFailed, "", err.Error())
			return nil, err
		}

		if i == lastIndex {
			published, err := p.publisher.Publish(ctx, outbound.PublishVideoRequest{
				Video:     result.Video,
				Bucket:    params.Bucket,
				KeyPrefix: params.KeyPrefix,
			})
			if err != nil {
				err = segmentError(i, err)
				p.record(ctx, params, domain.RunFailed, "", err.Error())
				return nil, err
			}

			p.record(ctx, params, domain.RunCompleted, published.URL, "")
			p.logger.InfoWithFields("Pipeline run completed", map[string]interface{}{
				"run_id":   params.RunID,
				"segments": len(params.SegmentPrompts),
				"url":      published.URL,
			})
			return &inbound.RunResult{URL: published.URL}, nil
		}

		previous = result
	}

	return nil, domain.Errorf(domain.ErrInvalidRequest, "no segments to generate")
}

// resolveSeed picks the seed image for segment i. An explicitly provided URL
// wins; otherwise segments after the first chain from the previous result,
// and the first segment falls back to an auto-generated image.
func (p *videoPipeline) resolveSeed(ctx context.Context, params inbound.StartRunParams, i int, previous *domain.SegmentResult) (*domain.ImageRef, error) {
	if i < len(params.ImageURLs) && params.ImageURLs[i] != "" {
		return &domain.ImageRef{URL: params.ImageURLs[i]}, nil
	}
	if i > 0 {
		return p.chainer.Extend(previous)
	}
	if len(params.ImageURLs) > 0 {
		// URLs were supplied, so auto-generation stays suppressed.
		return nil, nil
	}
	p.logger.Info("Generating reference image from prompt")
	return p.imageGenerator.Generate(ctx, params.ImagePrompts[0])
}

// generateSegment submits the request and waits for completion, resubmitting
// the identical request up to MaxRetries extra times on retryable failures.
func (p *videoPipeline) generateSegment(ctx context.Context, request domain.SegmentRequest, params inbound.StartRunParams) (*domain.SegmentResult, error) {
	var lastErr error

	for attempt := 1; attempt <= params.MaxRetries+1; attempt++ {
		if attempt > 1 {
			p.logger.WarnWithFields("Retrying segment", map[string]interface{}{
				"run_id":  params.RunID,
				"segment": request.Index,
				"attempt": attempt,
			})
		}

		handle, err := p.generator.Submit(ctx, outbound.SubmitSegmentParams{
			Prompt:    request.Prompt,
			SeedImage: request.SeedImage,
		})
		if err != nil {
			if ctx.Err() != nil || !domain.IsRetryable(err) {
				return nil, segmentError(request.Index, err)
			}
			lastErr = err
			continue
		}

		job := &domain.SegmentJob{
			Handle:  handle,
			Request: request,
			State:   domain.JobPending,
		}

		result, err := p.poller.AwaitCompletion(ctx, job, params.PollInterval, p.maxPollAttempts)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil || !domain.IsRetryable(err) {
			return nil, segmentError(request.Index, err)
		}
		lastErr = err
	}

	return nil, domain.NewSegmentError(request.Index, domain.ErrSegmentGenerationFailed, lastErr)
}

func (p *videoPipeline) record(ctx context.Context, params inbound.StartRunParams, status domain.RunStatus, finalURL string, failure string) {
	if p.runRecorder == nil {
		return
	}
	err := p.runRecorder.Record(ctx, domain.RunRecord{
		RunID:        params.RunID,
		Status:       status,
		SegmentCount: len(params.SegmentPrompts),
		FinalURL:     finalURL,
		Failure:      failure,
	})
	if err != nil {
		p.logger.WarnWithFields("Failed to record run status", map[string]interface{}{
			"run_id": params.RunID,
			"status": status,
		})
	}
}

func segmentError(index int, err error) error {
	var segErr *domain.SegmentError
	if errors.As(err, &segErr) {
		return err
	}
	kind := domain.KindOf(err)
	if kind == "" {
		kind = domain.ErrExternalService
	}
	return domain.NewSegmentError(index, kind, err)
}
