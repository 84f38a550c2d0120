package quiz

import "github.com/hosthans/ids-wasteseparation/internal/waste"

// Level is the learner's current difficulty level, bounded to
// [waste.MinDifficulty, waste.MaxDifficulty]. A fresh session starts at
// InitialLevel.
type Level int

// InitialLevel is the difficulty a new or reset session starts at.
const InitialLevel Level = waste.MinDifficulty

// Raise increments the level after a correct answer, capped at the maximum.
func (l Level) Raise() Level {
	if l >= waste.MaxDifficulty {
		return waste.MaxDifficulty
	}
	return l + 1
}

// Lower decrements the level after an incorrect answer, floored at the minimum.
func (l Level) Lower() Level {
	if l <= waste.MinDifficulty {
		return waste.MinDifficulty
	}
	return l - 1
}

// Adjust applies the difficulty rule for an evaluated answer.
func (l Level) Adjust(correct bool) Level {
	if correct {
		return l.Raise()
	}
	return l.Lower()
}
