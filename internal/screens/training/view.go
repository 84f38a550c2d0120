package training

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hosthans/ids-wasteseparation/internal/ui/theme"
	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

func (s *TrainingScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state.Current == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Gegenstand wird ausgewählt...")
	}

	switch s.phase {
	case phaseLoading:
		return s.renderLoading(width)
	case phaseFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

// renderQuestion shows the current item and the bin checklist.
func (s *TrainingScreen) renderQuestion(width int) string {
	item := *s.state.Current

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Gegenstand: %s", item.Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Schwierigkeit %s", difficultyStars(item.Difficulty)))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("In welche Tonne(n) gehört dieser Gegenstand?"))
	b.WriteString("\n")
	if item.ImageURL != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Bild: %s", item.ImageURL)))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.checklist.View()))
	b.WriteString("\n")

	if s.warnEmpty {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Bitte wähle mindestens eine Kategorie!"))
	}

	if recap := s.renderRecap(width); recap != "" {
		b.WriteString("\n\n")
		b.WriteString(recap)
	}

	return b.String()
}

// renderRecap shows the last few answered items.
func (s *TrainingScreen) renderRecap(width int) string {
	history := s.state.History
	if len(history) == 0 {
		return ""
	}
	const maxRows = 5
	start := 0
	if len(history) > maxRows {
		start = len(history) - maxRows
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("  Verlauf"))
	b.WriteString("\n")
	for _, att := range history[start:] {
		mark := theme.Correct.Render("✓")
		if !att.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		line := fmt.Sprintf("  %s %-24s %s", mark, att.ItemName, strings.Join(att.CorrectSet, ", "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderLoading shows the spinner while the explanation is fetched.
func (s *TrainingScreen) renderLoading(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.spin.View() + " Weitere Infos werden geladen..."))
	return b.String()
}

// renderFeedback shows the verdict, the composed feedback text and the
// correct bin set.
func (s *TrainingScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastAttempt != nil && s.lastAttempt.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Richtig!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Das ist leider falsch."))
		if s.lastAttempt != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Richtig wäre: %s", strings.Join(s.lastAttempt.CorrectSet, ", "))))
		}
	}

	b.WriteString("\n\n")

	if s.feedbackText != "" {
		textStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, textStyle.Render(s.feedbackText)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Beliebige Taste für den nächsten Gegenstand..."))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Fehler: %s\n\n  Beliebige Taste zum Zurückkehren.", errMsg))
}

// difficultyStars renders a difficulty rating scaled to the catalog bounds.
func difficultyStars(d int) string {
	if d < waste.MinDifficulty {
		d = waste.MinDifficulty
	}
	if d > waste.MaxDifficulty {
		d = waste.MaxDifficulty
	}
	return strings.Repeat("★", d) + strings.Repeat("☆", waste.MaxDifficulty-d)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
