package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/hosthans/ids-wasteseparation/internal/store"
)

// recordingRepo captures appended events for assertions. Only the method
// the logging decorator touches is implemented; everything else panics via
// the embedded nil interface.
type recordingRepo struct {
	store.EventRepo
	events []store.LLMEventData
}

func (r *recordingRepo) AppendLLMEvent(_ context.Context, data store.LLMEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestLoggingProviderRecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Text: "Erklärung."})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(t.Context(), "explanation")
	resp, err := p.Generate(ctx, Request{
		System:       "Systemtext",
		Prompt:       "Warum?",
		MaxNewTokens: 500,
		Temperature:  0.8,
		TopK:         50,
		TopP:         0.95,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Text != "Erklärung." {
		t.Errorf("text = %q", resp.Text)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "explanation" {
		t.Errorf("purpose = %q", ev.Purpose)
	}
	if !ev.Success {
		t.Error("expected success")
	}
	if ev.ResponseBody != "Erklärung." {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
	if !strings.Contains(ev.RequestBody, "[system]") || !strings.Contains(ev.RequestBody, "Warum?") {
		t.Errorf("request body = %q", ev.RequestBody)
	}
	if !strings.Contains(ev.RequestBody, "max_new_tokens=500") {
		t.Errorf("missing parameters in request body: %q", ev.RequestBody)
	}
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrStatus{Code: 500, Body: "boom"}})
	p := WithLogging(mock, repo)

	_, err := p.Generate(t.Context(), Request{Prompt: "Warum?"})
	if err == nil {
		t.Fatal("expected error to propagate")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown without context label", ev.Purpose)
	}
}
