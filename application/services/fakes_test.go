package services

import (
	"context"
	"fmt"
	"github.com/ohduang-droid/fc-morphix/application/ports/inbound"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/domain"
	"sync"
)

type fakeLogger struct{}

func (fakeLogger) Info(string)                                     {}
func (fakeLogger) InfoWithFields(string, map[string]interface{})   {}
func (fakeLogger) Error(error, string)                             {}
func (fakeLogger) ErrorWithFields(error, string, map[string]interface{}) {
}
func (fakeLogger) Debug(string)                                  {}
func (fakeLogger) DebugWithFields(string, map[string]interface{}) {}
func (fakeLogger) Warn(string)                                   {}
func (fakeLogger) WarnWithFields(string, map[string]interface{})  {}

func submitParams(prompt string) outbound.SubmitSegmentParams {
	return outbound.SubmitSegmentParams{Prompt: prompt}
}

func segmentResult(tag string) *domain.SegmentResult {
	return &domain.SegmentResult{
		Video: domain.VideoArtifact{
			Data:     []byte("video-" + tag),
			MimeType: "video/mp4",
		},
		FinalFrame: &domain.ImageRef{
			Data:     []byte("frame-" + tag),
			MimeType: "image/png",
		},
	}
}

// fakeVideoGenerator scripts one poll sequence per submission, in submission
// order. Submissions beyond the scripts succeed on the first poll.
type fakeVideoGenerator struct {
	mu        sync.Mutex
	submits   []outbound.SubmitSegmentParams
	scripts   [][]domain.JobPoll
	pollIndex map[domain.JobHandle]int
	handleSub map[domain.JobHandle]int
}

func newFakeVideoGenerator(scripts ...[]domain.JobPoll) *fakeVideoGenerator {
	return &fakeVideoGenerator{
		scripts:   scripts,
		pollIndex: make(map[domain.JobHandle]int),
		handleSub: make(map[domain.JobHandle]int),
	}
}

func succeedOn(result *domain.SegmentResult) []domain.JobPoll {
	return []domain.JobPoll{{State: domain.JobSucceeded, Result: result}}
}

func failAlways(note string) []domain.JobPoll {
	return []domain.JobPoll{{State: domain.JobFailed, FailureNote: note}}
}

func (g *fakeVideoGenerator) Submit(_ context.Context, params outbound.SubmitSegmentParams) (domain.JobHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	handle := domain.JobHandle(fmt.Sprintf("job-%d", len(g.submits)))
	g.handleSub[handle] = len(g.submits)
	g.submits = append(g.submits, params)
	return handle, nil
}

func (g *fakeVideoGenerator) Poll(_ context.Context, handle domain.JobHandle) (*domain.JobPoll, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sub, ok := g.handleSub[handle]
	if !ok {
		return nil, domain.Errorf(domain.ErrExternalService, "unknown handle %s", handle)
	}
	if sub >= len(g.scripts) {
		return &domain.JobPoll{State: domain.JobSucceeded, Result: segmentResult(string(handle))}, nil
	}

	script := g.scripts[sub]
	idx := g.pollIndex[handle]
	if idx >= len(script) {
		idx = len(script) - 1
	}
	g.pollIndex[handle]++
	poll := script[idx]
	return &poll, nil
}

type fakeImageGenerator struct {
	mu      sync.Mutex
	prompts []string
	err     error
	images  []domain.GeneratedImage
}

func (g *fakeImageGenerator) Generate(_ context.Context, prompt string) (*domain.ImageRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.prompts = append(g.prompts, prompt)
	return &domain.ImageRef{Data: []byte("seed-" + prompt), MimeType: "image/png"}, nil
}

func (g *fakeImageGenerator) GenerateFromImage(_ context.Context, prompt string, _ *domain.ImageRef) ([]domain.GeneratedImage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.prompts = append(g.prompts, prompt)
	return g.images, nil
}

type fakePublisher struct {
	mu       sync.Mutex
	requests []outbound.PublishVideoRequest
	err      error
}

func (p *fakePublisher) Publish(_ context.Context, req outbound.PublishVideoRequest) (*outbound.PublishVideoResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	p.requests = append(p.requests, req)
	return &outbound.PublishVideoResponse{
		URL:    fmt.Sprintf("https://bucket.s3.amazonaws.com/videos/%d.mp4", len(p.requests)),
		Key:    fmt.Sprintf("videos/%d.mp4", len(p.requests)),
		Region: "us-east-1",
	}, nil
}

type fakeRunRecorder struct {
	mu      sync.Mutex
	records []domain.RunRecord
}

func (r *fakeRunRecorder) Record(_ context.Context, record domain.RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// spyChainer counts invocations so tests can assert chaining never happened.
type spyChainer struct {
	inner  inbound.SegmentChainerPort
	called int
}

func (s *spyChainer) Extend(previous *domain.SegmentResult) (*domain.ImageRef, error) {
	s.called++
	return s.inner.Extend(previous)
}

type fakeMediaStore struct {
	mu       sync.Mutex
	requests []outbound.SaveImageRequest
	err      error
}

func (s *fakeMediaStore) SaveImage(_ context.Context, req outbound.SaveImageRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.requests = append(s.requests, req)
	return fmt.Sprintf("https://bucket.s3.amazonaws.com/images/%s", string(req.Image.Data)), nil
}
