// Package primvar provides primitive variables: named per-element mesh
// attributes stored at one of five interpolation domains, backed by typed
// value containers.
package primvar

import (
	"fmt"
	"strings"
)

// Interpolation is the domain a primitive variable is stored at.
type Interpolation int

// Interpolation domains, ordered by granularity.
const (
	Invalid     Interpolation = iota
	Constant                  // one value for the whole mesh
	Uniform                   // one value per face
	Varying                   // one value per vertex
	Vertex                    // one value per vertex (control point)
	FaceVarying               // one value per face corner
)

var interpolationNames = [...]string{
	Invalid:     "Invalid",
	Constant:    "Constant",
	Uniform:     "Uniform",
	Varying:     "Varying",
	Vertex:      "Vertex",
	FaceVarying: "FaceVarying",
}

// Interpolations lists every valid domain in granularity order.
func Interpolations() []Interpolation {
	return []Interpolation{Constant, Uniform, Varying, Vertex, FaceVarying}
}

// String returns the domain name.
func (i Interpolation) String() string {
	if i >= 0 && int(i) < len(interpolationNames) {
		return interpolationNames[i]
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// IsValid reports whether i is one of the five domains.
func (i Interpolation) IsValid() bool {
	return i >= Constant && i <= FaceVarying
}

// ParseInterpolation parses a domain name. Matching ignores case and the
// separators '_' and '-', so "faceVarying", "face_varying" and
// "FaceVarying" are all accepted.
func ParseInterpolation(s string) (Interpolation, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(s))
	for _, i := range Interpolations() {
		if strings.ToLower(i.String()) == key {
			return i, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrInvalidInterpolation, s)
}

// MarshalText implements encoding.TextMarshaler.
func (i Interpolation) MarshalText() ([]byte, error) {
	if !i.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterpolation, int(i))
	}
	return []byte(strings.ToLower(i.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interpolation) UnmarshalText(text []byte) error {
	parsed, err := ParseInterpolation(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
