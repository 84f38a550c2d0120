package training

import "github.com/hosthans/ids-wasteseparation/internal/quiz"

// ScoreChangedMsg propagates the running score to the root model so the
// header can display it.
type ScoreChangedMsg struct {
	Score int
	Total int
}

// feedbackReadyMsg is sent when feedback composition (including the
// blocking explanation call for wrong answers) has finished.
type feedbackReadyMsg struct {
	Message  string
	NewLevel quiz.Level
}
