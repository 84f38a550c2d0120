package quiz

import (
	"sort"

	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

// Evaluate scores a submitted category selection against an item's true
// categories. Correctness is exact set equality: no partial credit for
// subsets or supersets, order does not matter. The caller guarantees the
// selection is non-empty; empty selections are intercepted by the UI before
// they reach this point.
func Evaluate(selected []waste.Type, item waste.Item) Attempt {
	return Attempt{
		ItemName:   item.Name,
		Selected:   sortedLabels(selected),
		CorrectSet: sortedLabels(item.Types),
		Correct:    sameSet(selected, item.Types),
		Difficulty: item.Difficulty,
	}
}

// sameSet reports whether two tag slices contain the same set of values.
func sameSet(a, b []waste.Type) bool {
	set := make(map[waste.Type]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	if len(set) != len(uniq(b)) {
		return false
	}
	for _, t := range b {
		if !set[t] {
			return false
		}
	}
	return true
}

func uniq(ts []waste.Type) map[waste.Type]bool {
	set := make(map[waste.Type]bool, len(ts))
	for _, t := range ts {
		set[t] = true
	}
	return set
}

func sortedLabels(ts []waste.Type) []string {
	labels := make([]string, 0, len(ts))
	for t := range uniq(ts) {
		labels = append(labels, t.String())
	}
	sort.Strings(labels)
	return labels
}
