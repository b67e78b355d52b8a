package mock_generator

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/domain"
	"sync"
)

// cannedVideoGenerator fakes the generation provider: every job reports
// RUNNING on its first poll and SUCCEEDED on the second, with deterministic
// video bytes and a continuation frame. No quota is consumed.
type cannedVideoGenerator struct {
	mu      sync.Mutex
	counter int
	polls   map[domain.JobHandle]int
}

func NewCannedVideoGenerator() outbound.VideoGeneratorPort {
	return &cannedVideoGenerator{
		polls: make(map[domain.JobHandle]int),
	}
}

func (g *cannedVideoGenerator) Submit(_ context.Context, params outbound.SubmitSegmentParams) (domain.JobHandle, error) {
	if params.Prompt == "" {
		return "", domain.Errorf(domain.ErrInvalidRequest, "segment prompt is empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	handle := domain.JobHandle(fmt.Sprintf("operations/mock-%d-%s", g.counter, uuid.NewString()))
	g.polls[handle] = 0
	return handle, nil
}

func (g *cannedVideoGenerator) Poll(_ context.Context, handle domain.JobHandle) (*domain.JobPoll, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	count, ok := g.polls[handle]
	if !ok {
		return nil, domain.Errorf(domain.ErrExternalService, "unknown job handle %s", handle)
	}
	g.polls[handle] = count + 1

	if count == 0 {
		return &domain.JobPoll{State: domain.JobRunning}, nil
	}

	return &domain.JobPoll{
		State: domain.JobSucceeded,
		Result: &domain.SegmentResult{
			Video: domain.VideoArtifact{
				Data:     []byte(fmt.Sprintf("mock-video-%s", handle)),
				MimeType: "video/mp4",
			},
			FinalFrame: &domain.ImageRef{
				Data:     []byte(fmt.Sprintf("mock-frame-%s", handle)),
				MimeType: "image/png",
			},
		},
	}, nil
}
