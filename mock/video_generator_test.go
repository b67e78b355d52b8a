package mock_generator

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/domain"
	"strings"
	"testing"
)

func TestCannedVideoGenerator_PollSequence(t *testing.T) {
	generator := NewCannedVideoGenerator()

	handle, err := generator.Submit(context.Background(), outbound.SubmitSegmentParams{Prompt: "p"})
	if err != nil {
		t.Fatal("submit failed:", err)
	}

	poll, err := generator.Poll(context.Background(), handle)
	if err != nil {
		t.Fatal("first poll failed:", err)
	}
	if poll.State != domain.JobRunning {
		t.Errorf("first poll must report RUNNING, got %s", poll.State)
	}

	poll, err = generator.Poll(context.Background(), handle)
	if err != nil {
		t.Fatal("second poll failed:", err)
	}
	if poll.State != domain.JobSucceeded {
		t.Fatalf("second poll must report SUCCEEDED, got %s", poll.State)
	}
	if !strings.HasPrefix(string(poll.Result.Video.Data), "mock-video-") {
		t.Errorf("unexpected video payload: %s", poll.Result.Video.Data)
	}
	if poll.Result.FinalFrame == nil || len(poll.Result.FinalFrame.Data) == 0 {
		t.Error("a continuation frame must be present")
	}
}

func TestCannedVideoGenerator_DistinctHandles(t *testing.T) {
	generator := NewCannedVideoGenerator()

	first, err := generator.Submit(context.Background(), outbound.SubmitSegmentParams{Prompt: "a"})
	if err != nil {
		t.Fatal("submit failed:", err)
	}
	second, err := generator.Submit(context.Background(), outbound.SubmitSegmentParams{Prompt: "b"})
	if err != nil {
		t.Fatal("submit failed:", err)
	}
	if first == second {
		t.Error("submissions must produce distinct handles")
	}
}

func TestCannedVideoGenerator_UnknownHandle(t *testing.T) {
	generator := NewCannedVideoGenerator()

	_, err := generator.Poll(context.Background(), "operations/nope")
	if domain.KindOf(err) != domain.ErrExternalService {
		t.Errorf("expected external_service, got %v", err)
	}
}

func TestCannedVideoGenerator_EmptyPrompt(t *testing.T) {
	generator := NewCannedVideoGenerator()

	_, err := generator.Submit(context.Background(), outbound.SubmitSegmentParams{})
	if domain.KindOf(err) != domain.ErrInvalidRequest {
		t.Errorf("expected invalid_request, got %v", err)
	}
}
