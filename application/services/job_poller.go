package services

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/application/ports/inbound"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/domain"
	"time"
)

type jobPoller struct {
	logger    outbound.LoggerPort
	generator outbound.VideoGeneratorPort
}

func NewJobPoller(logger outbound.LoggerPort, generator outbound.VideoGeneratorPort) inbound.SegmentJobPollerPort {
	return &jobPoller{
		logger:    logger,
		generator: generator,
	}
}

// AwaitCompletion polls the job at a fixed interval until it reaches a
// terminal state or maxAttempts polls have elapsed. A job that already
// succeeded returns its cached result without touching the provider again.
func (p *jobPoller) AwaitCompletion(ctx context.Context, job *domain.SegmentJob, pollInterval time.Duration, maxAttempts int) (*domain.SegmentResult, error) {
	if job.State == domain.JobSucceeded && job.Result != nil {
		return job.Result, nil
	}

	for attempt := 1; ; attempt++ {
		poll, err := p.generator.Poll(ctx, job.Handle)
		if err != nil {
			p.logger.ErrorWithFields(err, "Failed to poll generation job", map[string]interface{}{
				"handle":  job.Handle,
				"attempt": attempt,
			})
			return nil, err
		}
		job.Attempts = attempt
		job.State = poll.State

		switch poll.State {
		case domain.JobSucceeded:
			if poll.Result == nil || len(poll.Result.Video.Data) == 0 && poll.Result.Video.SourceURL == "" {
				job.State = domain.JobFailed
				return nil, domain.Errorf(domain.ErrJobFailed, "job %s reported success without a video", job.Handle)
			}
			job.Result = poll.Result
			return poll.Result, nil
		case domain.JobFailed:
			return nil, domain.Errorf(domain.ErrJobFailed, "job %s failed: %s", job.Handle, poll.FailureNote)
		}

		if attempt >= maxAttempts {
			return nil, domain.Errorf(domain.ErrJobTimeout, "job %s not terminal after %d polls", job.Handle, maxAttempts)
		}

		p.logger.DebugWithFields("Waiting for video generation", map[string]interface{}{
			"handle":  job.Handle,
			"state":   poll.State,
			"attempt": attempt,
		})

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
