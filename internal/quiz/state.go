package quiz

import "github.com/hosthans/ids-wasteseparation/internal/waste"

// Attempt is one evaluated answer: what was shown, what the learner picked,
// what would have been right. Appended to the session history and never
// mutated afterwards.
type Attempt struct {
	ItemName   string
	Selected   []string
	CorrectSet []string
	Correct    bool
	Difficulty int
}

// State aggregates everything a single training session tracks. It is owned
// by the presentation layer and only ever touched from one goroutine; the
// scoring and feedback functions take it (or its fields) explicitly instead
// of mutating ambient globals.
type State struct {
	SessionID string
	Score     int
	Total     int
	History   []Attempt
	Level     Level
	Current   *waste.Item
}

// NewState creates a session state at the initial difficulty.
func NewState(sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Level:     InitialLevel,
	}
}

// Record appends an evaluated attempt and updates the counters.
func (s *State) Record(att Attempt) {
	s.History = append(s.History, att)
	s.Total++
	if att.Correct {
		s.Score++
	}
}

// Accuracy returns the fraction of correct answers, 0 when nothing was
// answered yet.
func (s *State) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total)
}

// Reset clears history and counters and returns the difficulty to its
// initial value. The session ID and current item are kept; the caller
// re-selects an item afterwards.
func (s *State) Reset() {
	s.Score = 0
	s.Total = 0
	s.History = nil
	s.Level = InitialLevel
}
