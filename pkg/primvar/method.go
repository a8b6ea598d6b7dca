package primvar

import (
	"fmt"
	"strings"
)

// Method selects how several source values are combined into one.
type Method int

// Reduction methods. Average is the zero value and the default.
const (
	Average Method = iota
	Min
	Max
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Average:
		return "Average"
	case Min:
		return "Min"
	case Max:
		return "Max"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// IsValid reports whether m is a known method.
func (m Method) IsValid() bool {
	return m >= Average && m <= Max
}

// ParseMethod parses a method name. "min"/"minimum" and "max"/"maximum"
// are both accepted; the empty string selects Average.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "", "average", "avg", "mean":
		return Average, nil
	case "min", "minimum":
		return Min, nil
	case "max", "maximum":
		return Max, nil
	}
	return Average, fmt.Errorf("%w: %q", ErrInvalidMethod, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMethod, int(m))
	}
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
