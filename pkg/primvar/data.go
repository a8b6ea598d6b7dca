package primvar

import (
	"fmt"

	"github.com/Faultbox/meshresample/pkg/math"
)

// Mapping lists, for every target element, the source elements that
// contribute to it.
type Mapping interface {
	Len() int
	Sources(i int) []int
}

// Data is a typed array of primitive variable values.
type Data interface {
	// Len returns the number of elements.
	Len() int
	// TypeName names the element type, e.g. "float" or "v3f".
	TypeName() string
	Interpretation() Interpretation
	// Reducible reports whether values can be averaged or compared.
	Reducible() bool
	Clone() Data
	// Gather returns a new container whose i-th element is the element at
	// sources[i]. A negative source yields the zero value.
	Gather(sources []int) Data
	// Reduce combines the contributors of every target element of m.
	// Targets with a single contributor are copied, targets with none get
	// the zero value. Several contributors on a non-reducible type fail
	// with ErrUnsupportedReduction.
	Reduce(m Mapping, method Method) (Data, error)
	// Elements returns the underlying slice, e.g. []float32.
	Elements() any
}

// TypedData is a Data holding elements of type T.
type TypedData[T any] struct {
	name   string
	values []T
	interp Interpretation
	arith  Arithmetic[T]
}

// NewTypedData wraps values. arith may be nil for element types that are
// only ever copied.
func NewTypedData[T any](name string, values []T, arith Arithmetic[T]) *TypedData[T] {
	if values == nil {
		values = []T{}
	}
	return &TypedData[T]{name: name, values: values, arith: arith}
}

// NewScalarData wraps a slice of scalar numbers.
func NewScalarData[T Number](name string, values []T) *TypedData[T] {
	return NewTypedData[T](name, values, ScalarArithmetic[T]{})
}

// NewFloatData returns float32 data.
func NewFloatData(values ...float32) *TypedData[float32] {
	return NewScalarData("float", values)
}

// NewDoubleData returns float64 data.
func NewDoubleData(values ...float64) *TypedData[float64] {
	return NewScalarData("double", values)
}

// NewIntData returns int32 data.
func NewIntData(values ...int32) *TypedData[int32] {
	return NewScalarData("int", values)
}

// NewV2fData returns Vec2 data with the given interpretation.
func NewV2fData(interp Interpretation, values ...math.Vec2) *TypedData[math.Vec2] {
	return NewTypedData[math.Vec2]("v2f", values, Vec2Arithmetic{}).WithInterpretation(interp)
}

// NewV3fData returns Vec3 data with the given interpretation.
func NewV3fData(interp Interpretation, values ...math.Vec3) *TypedData[math.Vec3] {
	return NewTypedData[math.Vec3]("v3f", values, Vec3Arithmetic{}).WithInterpretation(interp)
}

// NewStringData returns string data. Strings cannot be reduced.
func NewStringData(values ...string) *TypedData[string] {
	return NewTypedData[string]("string", values, nil)
}

// NewBoolData returns bool data. Bools cannot be reduced.
func NewBoolData(values ...bool) *TypedData[bool] {
	return NewTypedData[bool]("bool", values, nil)
}

// WithInterpretation sets the interpretation and returns d.
func (d *TypedData[T]) WithInterpretation(interp Interpretation) *TypedData[T] {
	d.interp = interp
	return d
}

func (d *TypedData[T]) Len() int                       { return len(d.values) }
func (d *TypedData[T]) TypeName() string               { return d.name }
func (d *TypedData[T]) Interpretation() Interpretation { return d.interp }
func (d *TypedData[T]) Reducible() bool                { return d.arith != nil }
func (d *TypedData[T]) Elements() any                  { return d.values }

// Values returns the element slice. Callers must not modify it.
func (d *TypedData[T]) Values() []T {
	return d.values
}

// At returns the i-th element.
func (d *TypedData[T]) At(i int) T {
	return d.values[i]
}

// Clone returns a deep copy.
func (d *TypedData[T]) Clone() Data {
	values := make([]T, len(d.values))
	copy(values, d.values)
	return d.derive(values)
}

// Gather implements Data.
func (d *TypedData[T]) Gather(sources []int) Data {
	out := make([]T, len(sources))
	for i, s := range sources {
		if s >= 0 {
			out[i] = d.values[s]
		}
	}
	return d.derive(out)
}

// Reduce implements Data.
func (d *TypedData[T]) Reduce(m Mapping, method Method) (Data, error) {
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMethod, int(method))
	}

	out := make([]T, m.Len())
	for i := range out {
		sources := m.Sources(i)
		switch len(sources) {
		case 0:
			continue
		case 1:
			out[i] = d.values[sources[0]]
			continue
		}
		if d.arith == nil {
			return nil, fmt.Errorf("%w: %s element %d has %d contributors",
				ErrUnsupportedReduction, d.name, i, len(sources))
		}
		out[i] = reduce(d.arith, d.values, sources, method)
	}
	return d.derive(out), nil
}

// derive wraps values with d's type name, interpretation and arithmetic.
func (d *TypedData[T]) derive(values []T) *TypedData[T] {
	return &TypedData[T]{name: d.name, values: values, interp: d.interp, arith: d.arith}
}

// String returns a short description such as "v3f[9] Point".
func (d *TypedData[T]) String() string {
	if d.interp == None {
		return fmt.Sprintf("%s[%d]", d.name, len(d.values))
	}
	return fmt.Sprintf("%s[%d] %s", d.name, len(d.values), d.interp)
}
