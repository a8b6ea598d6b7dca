package primvar

import "fmt"

// Variable is a primitive variable: a value array stored at an
// interpolation domain, optionally indexed.
//
// An unindexed variable holds one value per element of its domain. An
// indexed variable holds a value table plus one index per element, each
// pointing into the table.
type Variable struct {
	Interpolation Interpolation
	Data          Data
	Indices       []int
}

// New returns an unindexed variable.
func New(interp Interpolation, data Data) *Variable {
	return &Variable{Interpolation: interp, Data: data}
}

// NewIndexed returns an indexed variable.
func NewIndexed(interp Interpolation, data Data, indices []int) *Variable {
	if indices == nil {
		indices = []int{}
	}
	return &Variable{Interpolation: interp, Data: data, Indices: indices}
}

// IsIndexed reports whether the variable carries an index array.
func (v *Variable) IsIndexed() bool {
	return v.Indices != nil
}

// Size returns the number of domain elements the variable covers.
func (v *Variable) Size() int {
	if v.IsIndexed() {
		return len(v.Indices)
	}
	if v.Data == nil {
		return 0
	}
	return v.Data.Len()
}

// Validate checks that the variable covers exactly expected elements and
// that every index points into the value table.
func (v *Variable) Validate(expected int) error {
	if !v.Interpolation.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidInterpolation, v.Interpolation)
	}
	if v.Data == nil {
		return fmt.Errorf("%w: no data", ErrDomainMismatch)
	}
	if size := v.Size(); size != expected {
		return fmt.Errorf("%w: %s variable has %d elements, want %d",
			ErrDomainMismatch, v.Interpolation, size, expected)
	}
	n := v.Data.Len()
	for i, idx := range v.Indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: index %d at element %d is outside value table of size %d",
				ErrDomainMismatch, idx, i, n)
		}
	}
	return nil
}

// Clone returns a deep copy of the variable.
func (v *Variable) Clone() *Variable {
	c := &Variable{Interpolation: v.Interpolation}
	if v.Data != nil {
		c.Data = v.Data.Clone()
	}
	if v.Indices != nil {
		c.Indices = append([]int{}, v.Indices...)
	}
	return c
}

// Expanded returns the variable's values with one entry per domain
// element, resolving indices if present.
func (v *Variable) Expanded() Data {
	if !v.IsIndexed() {
		return v.Data.Clone()
	}
	return v.Data.Gather(v.Indices)
}

// String returns a short description such as "Vertex float[9]".
func (v *Variable) String() string {
	if v.IsIndexed() {
		return fmt.Sprintf("%s %v indexed[%d]", v.Interpolation, v.Data, len(v.Indices))
	}
	return fmt.Sprintf("%s %v", v.Interpolation, v.Data)
}
