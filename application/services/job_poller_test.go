package services

import (
	"context"
	"errors"
	"github.com/ohduang-droid/fc-morphix/domain"
	"testing"
	"time"
)

func TestJobPoller_AwaitCompletion_ReturnsResultOnSuccess(t *testing.T) {
	generator := newFakeVideoGenerator([]domain.JobPoll{
		{State: domain.JobRunning},
		{State: domain.JobSucceeded, Result: segmentResult("0")},
	})
	poller := NewJobPoller(fakeLogger{}, generator)

	handle, err := generator.Submit(context.Background(), submitParams("a"))
	if err != nil {
		t.Fatal("submit failed:", err)
	}
	job := &domain.SegmentJob{Handle: handle, State: domain.JobPending}

	result, err := poller.AwaitCompletion(context.Background(), job, time.Millisecond, 5)
	if err != nil {
		t.Fatal("await failed:", err)
	}
	if string(result.Video.Data) != "video-0" {
		t.Errorf("unexpected video payload: %s", result.Video.Data)
	}
	if job.State != domain.JobSucceeded {
		t.Errorf("expected job state SUCCEEDED, got %s", job.State)
	}
	if job.Attempts != 2 {
		t.Errorf("expected 2 poll attempts, got %d", job.Attempts)
	}
}

func TestJobPoller_AwaitCompletion_TimesOut(t *testing.T) {
	generator := newFakeVideoGenerator([]domain.JobPoll{
		{State: domain.JobRunning},
	})
	poller := NewJobPoller(fakeLogger{}, generator)

	handle, _ := generator.Submit(context.Background(), submitParams("a"))
	job := &domain.SegmentJob{Handle: handle, State: domain.JobPending}

	_, err := poller.AwaitCompletion(context.Background(), job, time.Millisecond, 3)
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	if domain.KindOf(err) != domain.ErrJobTimeout {
		t.Errorf("expected job_timeout, got %s", domain.KindOf(err))
	}
	if job.Attempts != 3 {
		t.Errorf("expected 3 poll attempts, got %d", job.Attempts)
	}
}

func TestJobPoller_AwaitCompletion_SurfacesJobFailure(t *testing.T) {
	generator := newFakeVideoGenerator(failAlways("quota exceeded"))
	poller := NewJobPoller(fakeLogger{}, generator)

	handle, _ := generator.Submit(context.Background(), submitParams("a"))
	job := &domain.SegmentJob{Handle: handle, State: domain.JobPending}

	_, err := poller.AwaitCompletion(context.Background(), job, time.Millisecond, 5)
	if domain.KindOf(err) != domain.ErrJobFailed {
		t.Fatalf("expected job_failed, got %v", err)
	}
	if job.State != domain.JobFailed {
		t.Errorf("expected job state FAILED, got %s", job.State)
	}
}

func TestJobPoller_AwaitCompletion_IdempotentOnSucceededJob(t *testing.T) {
	generator := newFakeVideoGenerator()
	poller := NewJobPoller(fakeLogger{}, generator)

	cached := segmentResult("cached")
	job := &domain.SegmentJob{
		Handle: "job-unknown-to-generator",
		State:  domain.JobSucceeded,
		Result: cached,
	}

	result, err := poller.AwaitCompletion(context.Background(), job, time.Millisecond, 5)
	if err != nil {
		t.Fatal("await failed:", err)
	}
	if result != cached {
		t.Error("expected the cached result to be returned without polling")
	}
}

func TestJobPoller_AwaitCompletion_SuccessWithoutVideoFails(t *testing.T) {
	generator := newFakeVideoGenerator([]domain.JobPoll{
		{State: domain.JobSucceeded},
	})
	poller := NewJobPoller(fakeLogger{}, generator)

	handle, _ := generator.Submit(context.Background(), submitParams("a"))
	job := &domain.SegmentJob{Handle: handle, State: domain.JobPending}

	_, err := poller.AwaitCompletion(context.Background(), job, time.Millisecond, 5)
	if domain.KindOf(err) != domain.ErrJobFailed {
		t.Fatalf("expected job_failed, got %v", err)
	}
}

func TestJobPoller_AwaitCompletion_CancelledBetweenPolls(t *testing.T) {
	generator := newFakeVideoGenerator([]domain.JobPoll{
		{State: domain.JobRunning},
	})
	poller := NewJobPoller(fakeLogger{}, generator)

	handle, _ := generator.Submit(context.Background(), submitParams("a"))
	job := &domain.SegmentJob{Handle: handle, State: domain.JobPending}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := poller.AwaitCompletion(ctx, job, time.Second, 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
