package feedback

import (
	"strings"
	"testing"

	"github.com/hosthans/ids-wasteseparation/internal/llm"
	"github.com/hosthans/ids-wasteseparation/internal/quiz"
	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

var testItem = waste.Item{
	Name:       "Joghurtbecher mit Papier",
	Types:      []waste.Type{waste.TypePlastik, waste.TypePapier},
	Difficulty: 3,
}

func TestComposeCorrectAnswer(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewComposer(mock, DefaultConfig())

	msg, level := c.Compose(t.Context(), quiz.Level(2), testItem,
		[]waste.Type{waste.TypePlastik, waste.TypePapier}, true)

	if msg != PraiseMessage {
		t.Errorf("message = %q, want praise", msg)
	}
	if level != quiz.Level(3) {
		t.Errorf("level = %d, want 3", level)
	}
	if mock.CallCount() != 0 {
		t.Errorf("correct answers must not call the provider, got %d calls", mock.CallCount())
	}
}

func TestComposeIncorrectAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "Der Becher besteht aus zwei Materialien und gehört getrennt entsorgt.",
	})
	c := NewComposer(mock, DefaultConfig())

	msg, level := c.Compose(t.Context(), quiz.Level(2), testItem,
		[]waste.Type{waste.TypeBiologisch}, false)

	if level != quiz.Level(1) {
		t.Errorf("level = %d, want 1", level)
	}
	if !strings.Contains(msg, "Das passt aber nicht so gut!") {
		t.Errorf("missing hint line: %q", msg)
	}
	if !strings.Contains(msg, "Joghurtbecher mit Papier") {
		t.Errorf("missing item name: %q", msg)
	}
	if !strings.Contains(msg, "Plastik, Papier") {
		t.Errorf("missing correct categories: %q", msg)
	}
	if !strings.Contains(msg, "zwei Materialien") {
		t.Errorf("missing generated explanation: %q", msg)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.MaxNewTokens != 500 || req.Temperature != 0.8 || req.TopK != 50 || req.TopP != 0.95 {
		t.Errorf("unexpected generation parameters: %+v", req)
	}
	if !strings.Contains(req.Prompt, "Joghurtbecher mit Papier") {
		t.Errorf("query missing item name: %q", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "Biologisch") {
		t.Errorf("query missing user selection: %q", req.Prompt)
	}
	if req.System == "" {
		t.Error("expected system prompt")
	}
}

func TestComposeStatusErrorDegrades(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrStatus{Code: 503, Body: "overloaded"},
	})
	c := NewComposer(mock, DefaultConfig())

	msg, level := c.Compose(t.Context(), quiz.Level(1), testItem,
		[]waste.Type{waste.TypePlastik}, false)

	if level != quiz.Level(1) {
		t.Errorf("level = %d, want 1 (floor)", level)
	}
	if !strings.Contains(msg, "Das passt aber nicht so gut!") {
		t.Errorf("hint must survive provider failure: %q", msg)
	}
	if !strings.Contains(msg, "Error: 503, unable to fetch the explanation.") {
		t.Errorf("missing status placeholder: %q", msg)
	}
}

func TestComposeTransportErrorDegrades(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrUnavailable{},
	})
	c := NewComposer(mock, DefaultConfig())

	msg, _ := c.Compose(t.Context(), quiz.Level(2), testItem,
		[]waste.Type{waste.TypePlastik}, false)

	if !strings.Contains(msg, "unable to fetch the explanation.") {
		t.Errorf("missing error placeholder: %q", msg)
	}
}

func TestComposeNilProvider(t *testing.T) {
	c := NewComposer(nil, DefaultConfig())

	msg, level := c.Compose(t.Context(), quiz.Level(2), testItem,
		[]waste.Type{waste.TypePlastik}, false)

	if level != quiz.Level(1) {
		t.Errorf("level = %d, want 1", level)
	}
	if !strings.Contains(msg, "Keine weitere Erklärung verfügbar.") {
		t.Errorf("missing offline placeholder: %q", msg)
	}
}
