package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

// ErrEmptySelection means no catalog item is eligible at the given level.
// With a validated catalog this cannot happen at the initial level; it
// signals a configuration problem, not a runtime condition.
type ErrEmptySelection struct {
	Level Level
}

func (e *ErrEmptySelection) Error() string {
	return fmt.Sprintf("no catalog item at difficulty <= %d", e.Level)
}

// Selector picks the next item to show, constrained by the current
// difficulty level.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a Selector using the given source, or the shared
// global source when src is nil. Tests pass a seeded source for
// deterministic picks.
func NewSelector(src rand.Source) *Selector {
	if src == nil {
		return &Selector{}
	}
	return &Selector{rng: rand.New(src)}
}

// Next chooses uniformly at random among catalog items whose difficulty is
// at or below the session level. It must be called again after every
// evaluated answer; the same item may come up twice in a row by chance.
func (s *Selector) Next(catalog waste.Catalog, level Level) (waste.Item, error) {
	eligible := make([]waste.Item, 0, len(catalog))
	for _, item := range catalog {
		if Level(item.Difficulty) <= level {
			eligible = append(eligible, item)
		}
	}
	if len(eligible) == 0 {
		return waste.Item{}, &ErrEmptySelection{Level: level}
	}
	return eligible[s.intN(len(eligible))], nil
}

func (s *Selector) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}
