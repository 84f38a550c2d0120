package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

func testCatalog() waste.Catalog {
	return waste.Catalog{
		{Name: "leicht-a", Types: []waste.Type{waste.TypePlastik}, Difficulty: 1},
		{Name: "leicht-b", Types: []waste.Type{waste.TypePapier}, Difficulty: 1},
		{Name: "mittel", Types: []waste.Type{waste.TypeBiologisch}, Difficulty: 2},
		{Name: "schwer", Types: []waste.Type{waste.TypePlastik, waste.TypePapier}, Difficulty: 3},
	}
}

func TestSelectorRespectsLevel(t *testing.T) {
	s := NewSelector(rand.NewPCG(1, 2))
	catalog := testCatalog()

	for i := 0; i < 50; i++ {
		item, err := s.Next(catalog, Level(1))
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if item.Difficulty > 1 {
			t.Fatalf("picked %q at difficulty %d for level 1", item.Name, item.Difficulty)
		}
	}

	for i := 0; i < 50; i++ {
		item, err := s.Next(catalog, Level(2))
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if item.Difficulty > 2 {
			t.Fatalf("picked %q at difficulty %d for level 2", item.Name, item.Difficulty)
		}
	}
}

func TestSelectorCoversEligibleItems(t *testing.T) {
	s := NewSelector(rand.NewPCG(7, 11))
	catalog := testCatalog()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		item, err := s.Next(catalog, Level(3))
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		seen[item.Name] = true
	}

	for _, item := range catalog {
		if !seen[item.Name] {
			t.Errorf("item %q never selected at level 3", item.Name)
		}
	}
}

func TestSelectorEmptyEligibleSet(t *testing.T) {
	s := NewSelector(rand.NewPCG(1, 2))
	catalog := waste.Catalog{
		{Name: "schwer", Types: []waste.Type{waste.TypeGiftig}, Difficulty: 3},
	}

	_, err := s.Next(catalog, Level(1))
	var emptyErr *ErrEmptySelection
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
	if emptyErr.Level != Level(1) {
		t.Errorf("error level = %d, want 1", emptyErr.Level)
	}
}

func TestSelectorEmptyCatalog(t *testing.T) {
	s := NewSelector(nil)
	_, err := s.Next(waste.Catalog{}, Level(3))
	var emptyErr *ErrEmptySelection
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}
