package meshalgo

import (
	"github.com/Faultbox/meshresample/pkg/mesh"
	"github.com/Faultbox/meshresample/pkg/primvar"
)

// Resampling errors, re-exported from the packages that detect them so
// callers can match everything against meshalgo.
var (
	ErrInvalidTopology      = mesh.ErrInvalidTopology
	ErrDomainMismatch       = primvar.ErrDomainMismatch
	ErrUnsupportedReduction = primvar.ErrUnsupportedReduction
	ErrInvalidInterpolation = primvar.ErrInvalidInterpolation
	ErrInvalidMethod        = primvar.ErrInvalidMethod
)
