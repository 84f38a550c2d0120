package training

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hosthans/ids-wasteseparation/internal/feedback"
	"github.com/hosthans/ids-wasteseparation/internal/llm"
	"github.com/hosthans/ids-wasteseparation/internal/quiz"
	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen(t *testing.T) *TrainingScreen {
	t.Helper()
	catalog := waste.Catalog{
		{Name: "Joghurtbecher", Types: []waste.Type{waste.TypePlastik}, Difficulty: 1},
		{Name: "Papiertüte", Types: []waste.Type{waste.TypePapier}, Difficulty: 1},
	}
	composer := feedback.NewComposer(llm.NewMockProvider(), feedback.DefaultConfig())
	s := New(catalog, nil, composer)
	s.Init()
	if s.state.Current == nil {
		t.Fatal("expected an item after init")
	}
	return s
}

func TestEmptySelectionRejected(t *testing.T) {
	s := newTestScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty submit must not produce a command")
	}
	if !s.warnEmpty {
		t.Fatal("expected empty-selection warning")
	}
	if s.state.Total != 0 {
		t.Error("empty submit must not count as an attempt")
	}
	if !strings.Contains(s.View(80, 24), "Bitte wähle mindestens eine Kategorie!") {
		t.Error("warning not rendered")
	}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	s := newTestScreen(t)
	item := waste.Item{Name: "Joghurtbecher", Types: []waste.Type{waste.TypePlastik}, Difficulty: 1}
	s.state.Current = &item

	// First option is the Plastik bin.
	s.Update(tea.KeyPressMsg{Code: ' '})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected feedback command")
	}

	if s.phase != phaseLoading {
		t.Errorf("phase = %d, want loading", s.phase)
	}
	if s.state.Score != 1 || s.state.Total != 1 {
		t.Errorf("score = %d/%d, want 1/1", s.state.Score, s.state.Total)
	}
	if s.warnEmpty {
		t.Error("warning should be cleared")
	}

	// Loading ignores key presses.
	s.Update(keyPress('x'))
	if s.phase != phaseLoading {
		t.Error("keys must be ignored while loading")
	}

	s.Update(feedbackReadyMsg{Message: feedback.PraiseMessage, NewLevel: quiz.Level(2)})
	if s.phase != phaseFeedback {
		t.Errorf("phase = %d, want feedback", s.phase)
	}
	if s.state.Level != quiz.Level(2) {
		t.Errorf("level = %d, want 2", s.state.Level)
	}
	if !strings.Contains(s.View(80, 24), "Richtig!") {
		t.Error("verdict not rendered")
	}

	// Any key advances to the next item with a cleared checklist.
	s.Update(keyPress('x'))
	if s.phase != phaseSelecting {
		t.Errorf("phase = %d, want selecting", s.phase)
	}
	if len(s.checklist.Selection()) != 0 {
		t.Error("checklist not cleared for next item")
	}
}

func TestSubmitWrongAnswer(t *testing.T) {
	s := newTestScreen(t)
	item := waste.Item{Name: "Joghurtbecher", Types: []waste.Type{waste.TypePlastik}, Difficulty: 1}
	s.state.Current = &item
	s.state.Level = quiz.Level(2)

	// Second option is the Papier bin.
	s.Update(keyPress('j'))
	s.Update(tea.KeyPressMsg{Code: ' '})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected feedback command")
	}

	if s.state.Score != 0 || s.state.Total != 1 {
		t.Errorf("score = %d/%d, want 0/1", s.state.Score, s.state.Total)
	}
	if s.lastAttempt == nil || s.lastAttempt.Correct {
		t.Fatal("expected incorrect attempt")
	}

	s.Update(feedbackReadyMsg{Message: "Tipp...", NewLevel: quiz.Level(1)})
	if s.state.Level != quiz.Level(1) {
		t.Errorf("level = %d, want 1", s.state.Level)
	}
	if !strings.Contains(s.View(80, 24), "Das ist leider falsch.") {
		t.Error("verdict not rendered")
	}
}

func TestResetKey(t *testing.T) {
	s := newTestScreen(t)
	item := waste.Item{Name: "Joghurtbecher", Types: []waste.Type{waste.TypePlastik}, Difficulty: 1}
	s.state.Current = &item

	s.Update(tea.KeyPressMsg{Code: ' '})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(feedbackReadyMsg{Message: "x", NewLevel: quiz.Level(2)})
	s.Update(keyPress('x'))

	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected score notification command")
	}
	if s.state.Score != 0 || s.state.Total != 0 {
		t.Errorf("counters not reset: %d/%d", s.state.Score, s.state.Total)
	}
	if s.state.Level != quiz.InitialLevel {
		t.Errorf("level = %d, want initial", s.state.Level)
	}
	if s.state.Current == nil {
		t.Error("expected a fresh item after reset")
	}
}
