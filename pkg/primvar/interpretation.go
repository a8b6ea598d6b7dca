package primvar

import (
	"fmt"
	"strings"
)

// Interpretation records what a value array means geometrically. Resampling
// changes representation, not meaning, so it is carried through unchanged.
type Interpretation int

// Geometric interpretations.
const (
	None Interpretation = iota
	Point
	Normal
	Vector
	Color
	UV
)

var interpretationNames = [...]string{
	None:   "None",
	Point:  "Point",
	Normal: "Normal",
	Vector: "Vector",
	Color:  "Color",
	UV:     "UV",
}

// String returns the interpretation name.
func (i Interpretation) String() string {
	if i >= 0 && int(i) < len(interpretationNames) {
		return interpretationNames[i]
	}
	return fmt.Sprintf("Interpretation(%d)", int(i))
}

// ParseInterpretation parses an interpretation name, ignoring case.
// The empty string maps to None.
func ParseInterpretation(s string) (Interpretation, error) {
	if s == "" {
		return None, nil
	}
	for i, name := range interpretationNames {
		if strings.EqualFold(name, s) {
			return Interpretation(i), nil
		}
	}
	return None, fmt.Errorf("unknown interpretation %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (i Interpretation) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(i.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interpretation) UnmarshalText(text []byte) error {
	parsed, err := ParseInterpretation(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
