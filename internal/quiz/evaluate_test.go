package quiz

import (
	"testing"

	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

func TestEvaluateExactSetEquality(t *testing.T) {
	multi := waste.Item{
		Name:       "Joghurtbecher mit Papier",
		Types:      []waste.Type{waste.TypePlastik, waste.TypePapier},
		Difficulty: 3,
	}
	single := waste.Item{
		Name:       "Joghurtbecher",
		Types:      []waste.Type{waste.TypePlastik},
		Difficulty: 1,
	}

	tests := []struct {
		name     string
		item     waste.Item
		selected []waste.Type
		want     bool
	}{
		{"exact match single", single, []waste.Type{waste.TypePlastik}, true},
		{"wrong single", single, []waste.Type{waste.TypePapier}, false},
		{"superset of single", single, []waste.Type{waste.TypePlastik, waste.TypePapier}, false},
		{"exact match multi", multi, []waste.Type{waste.TypePlastik, waste.TypePapier}, true},
		{"order does not matter", multi, []waste.Type{waste.TypePapier, waste.TypePlastik}, true},
		{"subset of multi", multi, []waste.Type{waste.TypePlastik}, false},
		{"superset of multi", multi, []waste.Type{waste.TypePlastik, waste.TypePapier, waste.TypeGiftig}, false},
		{"disjoint", multi, []waste.Type{waste.TypeBiologisch}, false},
		{"duplicate selections collapse", multi, []waste.Type{waste.TypePlastik, waste.TypePlastik, waste.TypePapier}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att := Evaluate(tt.selected, tt.item)
			if att.Correct != tt.want {
				t.Errorf("Correct = %v, want %v", att.Correct, tt.want)
			}
			if att.ItemName != tt.item.Name {
				t.Errorf("ItemName = %q", att.ItemName)
			}
			if att.Difficulty != tt.item.Difficulty {
				t.Errorf("Difficulty = %d, want %d", att.Difficulty, tt.item.Difficulty)
			}
		})
	}
}

func TestEvaluateRecordsSortedSets(t *testing.T) {
	item := waste.Item{
		Name:  "Hybridverpackung",
		Types: []waste.Type{waste.TypePapier, waste.TypePlastik},
	}

	att := Evaluate([]waste.Type{waste.TypePlastik, waste.TypeBiologisch}, item)

	wantSelected := []string{"Biologisch", "Plastik"}
	if len(att.Selected) != len(wantSelected) {
		t.Fatalf("Selected = %v", att.Selected)
	}
	for i, s := range wantSelected {
		if att.Selected[i] != s {
			t.Errorf("Selected[%d] = %q, want %q", i, att.Selected[i], s)
		}
	}

	wantCorrect := []string{"Papier", "Plastik"}
	for i, s := range wantCorrect {
		if att.CorrectSet[i] != s {
			t.Errorf("CorrectSet[%d] = %q, want %q", i, att.CorrectSet[i], s)
		}
	}
}
