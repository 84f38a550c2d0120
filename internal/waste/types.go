package waste

import "fmt"

// Type is one of the five fixed disposal categories. The set is closed:
// items carry one or more of these tags and the answer options offered to
// the user are exactly these five values.
type Type string

const (
	TypePlastik    Type = "Plastik"
	TypePapier     Type = "Papier"
	TypeBiologisch Type = "Biologisch"
	TypeSonstige   Type = "Sonstige"
	TypeGiftig     Type = "Giftig"
)

// AllTypes returns the five disposal categories in display order.
func AllTypes() []Type {
	return []Type{TypePlastik, TypePapier, TypeBiologisch, TypeSonstige, TypeGiftig}
}

// binLabels maps each category tag to the household bin it stands for.
var binLabels = map[Type]string{
	TypePlastik:    "Plastikmüll",
	TypePapier:     "Papiermüll",
	TypeBiologisch: "Biomüll",
	TypeSonstige:   "Restmüll",
	TypeGiftig:     "Sondermüll",
}

// BinLabel returns the display grouping label (bin name) for a category tag.
func (t Type) BinLabel() string {
	return binLabels[t]
}

// String returns the tag value as shown to the user.
func (t Type) String() string {
	return string(t)
}

// ParseType converts a stored tag value back into a Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypePlastik, TypePapier, TypeBiologisch, TypeSonstige, TypeGiftig:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown waste type %q", s)
}
