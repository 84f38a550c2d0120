package training

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hosthans/ids-wasteseparation/internal/feedback"
	"github.com/hosthans/ids-wasteseparation/internal/quiz"
	"github.com/hosthans/ids-wasteseparation/internal/router"
	"github.com/hosthans/ids-wasteseparation/internal/store"
	"github.com/hosthans/ids-wasteseparation/internal/ui/components"
	"github.com/hosthans/ids-wasteseparation/internal/ui/layout"
	"github.com/hosthans/ids-wasteseparation/internal/ui/theme"
	"github.com/hosthans/ids-wasteseparation/internal/waste"

	"github.com/google/uuid"
)

type phase int

const (
	phaseSelecting phase = iota
	phaseLoading
	phaseFeedback
)

// TrainingScreen implements router.Screen for the active training round.
type TrainingScreen struct {
	state     *quiz.State
	catalog   waste.Catalog
	selector  *quiz.Selector
	composer  *feedback.Composer
	eventRepo store.EventRepo

	checklist components.Checklist
	spin      spinner.Model
	phase     phase

	feedbackText string
	lastAttempt  *quiz.Attempt
	warnEmpty    bool
	errMsg       string
}

var _ router.Screen = (*TrainingScreen)(nil)
var _ router.KeyHintProvider = (*TrainingScreen)(nil)

// New creates a TrainingScreen with injected dependencies. The composer may
// wrap a nil provider; feedback then degrades to the static hint text.
func New(catalog waste.Catalog, eventRepo store.EventRepo, composer *feedback.Composer) *TrainingScreen {
	labels := make([]string, 0, len(waste.AllTypes()))
	for _, t := range waste.AllTypes() {
		labels = append(labels, t.BinLabel())
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &TrainingScreen{
		state:     quiz.NewState(uuid.New().String()),
		catalog:   catalog,
		selector:  quiz.NewSelector(nil),
		composer:  composer,
		eventRepo: eventRepo,
		checklist: components.NewChecklist(labels),
		spin:      sp,
	}
}

func (s *TrainingScreen) Init() tea.Cmd {
	s.pickItem()
	return nil
}

func (s *TrainingScreen) Title() string {
	return "Training"
}

func (s *TrainingScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "beliebige Taste", Description: "Weiter"},
		}
	case phaseLoading:
		return nil
	default:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Navigieren"},
			{Key: "Leertaste", Description: "Markieren"},
			{Key: "Enter", Description: "Bestätigen"},
			{Key: "r", Description: "Neu starten"},
			{Key: "Esc", Description: "Zurück"},
		}
	}
}

func (s *TrainingScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackReadyMsg:
		return s.handleFeedbackReady(msg)

	case spinner.TickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *TrainingScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phaseLoading:
		// Wait for the explanation; keys are ignored.
		return s, nil

	case phaseFeedback:
		// Any key moves on to the next item.
		s.pickItem()
		return s, nil
	}

	switch key {
	case "enter":
		return s.submit()
	case "r":
		return s.reset()
	}

	var cmd tea.Cmd
	s.checklist, cmd = s.checklist.Update(msg)
	return s, cmd
}

// submit evaluates the current selection and kicks off feedback composition.
func (s *TrainingScreen) submit() (router.Screen, tea.Cmd) {
	if s.state.Current == nil {
		return s, nil
	}

	indices := s.checklist.Selection()
	if len(indices) == 0 {
		s.warnEmpty = true
		return s, nil
	}
	s.warnEmpty = false

	selected := make([]waste.Type, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, waste.AllTypes()[i])
	}

	item := *s.state.Current
	att := quiz.Evaluate(selected, item)
	s.state.Record(att)
	s.lastAttempt = &att

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendAttempt(context.Background(), store.AttemptEventData{
			SessionID:  s.state.SessionID,
			ItemName:   att.ItemName,
			Selected:   att.Selected,
			CorrectSet: att.CorrectSet,
			Correct:    att.Correct,
			Difficulty: att.Difficulty,
			Level:      int(s.state.Level),
		})
	}

	s.phase = phaseLoading
	score, total := s.state.Score, s.state.Total

	return s, tea.Batch(
		s.spin.Tick,
		s.composeFeedback(item, selected, att.Correct),
		func() tea.Msg { return ScoreChangedMsg{Score: score, Total: total} },
	)
}

// composeFeedback runs the (possibly blocking) feedback composition off the
// update loop and delivers the result as a message.
func (s *TrainingScreen) composeFeedback(item waste.Item, selected []waste.Type, correct bool) tea.Cmd {
	composer := s.composer
	level := s.state.Level
	return func() tea.Msg {
		text, next := composer.Compose(context.Background(), level, item, selected, correct)
		return feedbackReadyMsg{Message: text, NewLevel: next}
	}
}

func (s *TrainingScreen) handleFeedbackReady(msg feedbackReadyMsg) (router.Screen, tea.Cmd) {
	s.state.Level = msg.NewLevel
	s.feedbackText = msg.Message
	s.phase = phaseFeedback
	return s, nil
}

// reset starts the session over at the initial difficulty.
func (s *TrainingScreen) reset() (router.Screen, tea.Cmd) {
	s.state.Reset()
	s.lastAttempt = nil
	s.feedbackText = ""
	s.pickItem()
	return s, func() tea.Msg { return ScoreChangedMsg{} }
}

// pickItem draws the next item at the current difficulty and rearms the
// selection UI.
func (s *TrainingScreen) pickItem() {
	item, err := s.selector.Next(s.catalog, s.state.Level)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.state.Current = &item
	s.checklist.Clear()
	s.warnEmpty = false
	s.feedbackText = ""
	s.phase = phaseSelecting
}
