package primvar

import (
	"golang.org/x/exp/constraints"

	"github.com/Faultbox/meshresample/pkg/math"
)

// Number is the set of scalar element types that can be reduced.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic supplies the operations a reduction needs for element type T.
// Element types without an Arithmetic can only be copied.
type Arithmetic[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	Add(a, b T) T
	// Div divides an accumulated sum by a contributor count.
	Div(sum T, n int) T
	Min(a, b T) T
	Max(a, b T) T
}

// Averager is implemented by arithmetics that average in a wider type
// than T. reduce prefers it over Add and Div.
type Averager[T any] interface {
	Average(values []T, sources []int) T
}

// ScalarArithmetic implements Arithmetic for scalar numbers. Averages are
// summed and divided in float64 so integer data cannot overflow; the
// quotient is truncated toward zero when T is an integer type.
type ScalarArithmetic[T Number] struct{}

func (ScalarArithmetic[T]) Zero() T      { return 0 }
func (ScalarArithmetic[T]) Add(a, b T) T { return a + b }
func (ScalarArithmetic[T]) Min(a, b T) T { return min(a, b) }
func (ScalarArithmetic[T]) Max(a, b T) T { return max(a, b) }
func (ScalarArithmetic[T]) Div(sum T, n int) T {
	return T(float64(sum) / float64(n))
}

// Average returns the mean of values[sources...].
func (ScalarArithmetic[T]) Average(values []T, sources []int) T {
	var sum float64
	for _, s := range sources {
		sum += float64(values[s])
	}
	return T(sum / float64(len(sources)))
}

// Vec2Arithmetic implements componentwise Arithmetic for math.Vec2.
type Vec2Arithmetic struct{}

func (Vec2Arithmetic) Zero() math.Vec2              { return math.Splat2(0) }
func (Vec2Arithmetic) Add(a, b math.Vec2) math.Vec2 { return a.Add(b) }
func (Vec2Arithmetic) Min(a, b math.Vec2) math.Vec2 { return a.Min(b) }
func (Vec2Arithmetic) Max(a, b math.Vec2) math.Vec2 { return a.Max(b) }
func (Vec2Arithmetic) Div(sum math.Vec2, n int) math.Vec2 {
	return sum.Div(float32(n))
}

// Vec3Arithmetic implements componentwise Arithmetic for math.Vec3.
type Vec3Arithmetic struct{}

func (Vec3Arithmetic) Zero() math.Vec3              { return math.Splat3(0) }
func (Vec3Arithmetic) Add(a, b math.Vec3) math.Vec3 { return a.Add(b) }
func (Vec3Arithmetic) Min(a, b math.Vec3) math.Vec3 { return a.Min(b) }
func (Vec3Arithmetic) Max(a, b math.Vec3) math.Vec3 { return a.Max(b) }
func (Vec3Arithmetic) Div(sum math.Vec3, n int) math.Vec3 {
	return sum.Div(float32(n))
}

// reduce combines values[sources...] with method. sources must not be empty.
func reduce[T any](a Arithmetic[T], values []T, sources []int, method Method) T {
	switch method {
	case Min:
		acc := values[sources[0]]
		for _, s := range sources[1:] {
			acc = a.Min(acc, values[s])
		}
		return acc
	case Max:
		acc := values[sources[0]]
		for _, s := range sources[1:] {
			acc = a.Max(acc, values[s])
		}
		return acc
	default:
		if avg, ok := a.(Averager[T]); ok {
			return avg.Average(values, sources)
		}
		// Always start from the additive identity.
		acc := a.Zero()
		for _, s := range sources {
			acc = a.Add(acc, values[s])
		}
		return a.Div(acc, len(sources))
	}
}
