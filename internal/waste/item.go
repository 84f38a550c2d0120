package waste

import "strings"

// Item is a single waste product the trainer can show. Items are immutable
// after construction; the catalog is static configuration data.
type Item struct {
	// Name identifies the item. Unique within a catalog.
	Name string

	// Types are the disposal categories the item belongs to. Non-empty;
	// multi-material packaging carries more than one tag.
	Types []Type

	// Difficulty ranks the item from 1 (easy) to 3 (hard). The adaptive
	// selector only offers items at or below the learner's current level.
	Difficulty int

	// ImageURL references a picture of the item.
	ImageURL string
}

// TypeLabels returns the item's tag values as strings.
func (i Item) TypeLabels() []string {
	labels := make([]string, len(i.Types))
	for n, t := range i.Types {
		labels[n] = t.String()
	}
	return labels
}

// TypesString joins the item's tags for display, e.g. "Plastik, Papier".
func (i Item) TypesString() string {
	return strings.Join(i.TypeLabels(), ", ")
}

// HasType reports whether the item carries the given tag.
func (i Item) HasType(t Type) bool {
	for _, it := range i.Types {
		if it == t {
			return true
		}
	}
	return false
}
