package primvar

import "errors"

// Primitive variable errors.
var (
	ErrDomainMismatch       = errors.New("primitive variable size does not match its interpolation")
	ErrUnsupportedReduction = errors.New("element type does not support reduction")
	ErrInvalidInterpolation = errors.New("invalid interpolation")
	ErrInvalidMethod        = errors.New("invalid resample method")
)
