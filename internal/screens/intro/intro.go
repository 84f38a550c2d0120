package intro

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hosthans/ids-wasteseparation/internal/router"
	"github.com/hosthans/ids-wasteseparation/internal/ui/components"
	"github.com/hosthans/ids-wasteseparation/internal/ui/layout"
	"github.com/hosthans/ids-wasteseparation/internal/ui/theme"
)

// lesson is one didactic page shown before the exercises.
type lesson struct {
	Title   string
	Content string
}

var lessons = []lesson{
	{
		Title:   "Grundlagen des Recyclings",
		Content: "Recycling ist der Prozess der Umwandlung von Abfallstoffen in neue Materialien und Gegenstände. Es trägt dazu bei, den Verbrauch frischer Rohstoffe zu reduzieren, den Energieverbrauch zu senken und die Umweltverschmutzung zu verringern.",
	},
	{
		Title:   "Recycling Kategorien",
		Content: "Es gibt verschiedene Recyclingkategorien: Gelber Sack (Kunststoff- und Metallverpackungen), Restmüll (nicht wiederverwertbarer Abfall), Papiertonne (Papier und Pappe), Sondermüll (gefährlicher Abfall) und Biomüll (organischer Abfall).",
	},
	{
		Title:   "Spezielle Kategorien",
		Content: "Zu den Sonderkategorien zählen Artikel wie Batterien, Elektronik und Gefahrenstoffe, die besondere Handhabungs- und Entsorgungsmethoden erfordern.",
	},
}

type exercise struct {
	Question string
	Options  []string
	Answer   int
}

var binOptions = []string{"Gelber Sack", "Restmüll", "Papiertonne", "Sondermüll", "Biomüll"}

var exercises = []exercise{
	{Question: "Zu welcher Kategorie gehört eine Plastikflasche?", Options: binOptions, Answer: 0},
	{Question: "Zu welcher Kategorie gehört ein öliger Pizzakarton?", Options: binOptions, Answer: 1},
	{Question: "Zu welcher Kategorie gehört eine Zeitschrift?", Options: binOptions, Answer: 2},
}

// IntroScreen walks through the didactic lessons and warm-up exercises.
type IntroScreen struct {
	lessonIndex   int
	exerciseIndex int
	score         int
	choice        components.MultiChoice
	inExercises   bool
	done          bool
}

var _ router.Screen = (*IntroScreen)(nil)
var _ router.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen at the first lesson page.
func New() *IntroScreen {
	return &IntroScreen{}
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return "Einführung"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.done:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Zurück"},
		}
	case s.inExercises:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Navigieren"},
			{Key: "Enter", Description: "Antworten"},
			{Key: "Esc", Description: "Zurück"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Nächste Seite"},
			{Key: "Esc", Description: "Zurück"},
		}
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.done {
		return s, nil
	}

	// Lesson pages advance with enter.
	if !s.inExercises {
		if key == "enter" {
			s.lessonIndex++
			if s.lessonIndex >= len(lessons) {
				s.inExercises = true
				s.loadExercise()
			}
		}
		return s, nil
	}

	// An answered exercise advances on the next key press.
	if s.choice.Submitted {
		if s.choice.IsCorrect() {
			s.score++
		}
		s.exerciseIndex++
		if s.exerciseIndex >= len(exercises) {
			s.done = true
			return s, nil
		}
		s.loadExercise()
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *IntroScreen) loadExercise() {
	ex := exercises[s.exerciseIndex]
	s.choice = components.NewMultiChoice(ex.Question, ex.Options, ex.Answer)
}

func (s *IntroScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render("📘 Einführung in das Recycling"))
	b.WriteString("\n")

	progress := fmt.Sprintf("Lektion %d/%d  ·  Übung %d/%d  ·  Ergebnis %d",
		min(s.lessonIndex, len(lessons)), len(lessons),
		min(s.exerciseIndex, len(exercises)), len(exercises),
		s.score)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(progress))
	b.WriteString("\n\n")

	switch {
	case s.done:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).Bold(true).
			Render("Herzlichen Glückwunsch! Du hast alle Sitzungen und Übungen abgeschlossen."))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Text).
			Render(fmt.Sprintf("Dein Endergebnis ist: %d/%d. Teste jetzt dein Wissen im Training!", s.score, len(exercises))))

	case s.inExercises:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
		if s.choice.Submitted {
			b.WriteString("\n")
			verdict := theme.Correct.Render("Richtig!")
			if !s.choice.IsCorrect() {
				verdict = theme.Incorrect.Render("Leider falsch.")
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
				Render("Beliebige Taste für die nächste Übung..."))
		}

	default:
		l := lessons[s.lessonIndex]
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Secondary).Bold(true).
			Render(l.Title))
		b.WriteString("\n\n")
		content := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(l.Content)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, content))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
