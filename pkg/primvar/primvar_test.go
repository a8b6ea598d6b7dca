package primvar

import (
	"errors"
	stdmath "math"
	"reflect"
	"testing"

	"github.com/Faultbox/meshresample/pkg/math"
)

// lists is a Mapping over literal contributor lists.
type lists [][]int

func (l lists) Len() int            { return len(l) }
func (l lists) Sources(i int) []int { return l[i] }

func TestParseInterpolation(t *testing.T) {
	tests := []struct {
		input    string
		expected Interpolation
	}{
		{"Constant", Constant},
		{"uniform", Uniform},
		{"VARYING", Varying},
		{"vertex", Vertex},
		{"FaceVarying", FaceVarying},
		{"faceVarying", FaceVarying},
		{"face_varying", FaceVarying},
		{"face-varying", FaceVarying},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInterpolation(tt.input)
			if err != nil {
				t.Fatalf("ParseInterpolation(%q) failed: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseInterpolation(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}

	if _, err := ParseInterpolation("corner"); !errors.Is(err, ErrInvalidInterpolation) {
		t.Errorf("expected ErrInvalidInterpolation, got %v", err)
	}
}

func TestInterpolationText(t *testing.T) {
	for _, i := range Interpolations() {
		text, err := i.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", i, err)
		}
		var back Interpolation
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if back != i {
			t.Errorf("text round trip of %v gave %v", i, back)
		}
	}

	if _, err := Invalid.MarshalText(); err == nil {
		t.Error("expected error marshaling Invalid")
	}
	if s := Interpolation(42).String(); s != "Interpolation(42)" {
		t.Errorf("unexpected name for out of range value: %s", s)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected Method
	}{
		{"", Average},
		{"average", Average},
		{"min", Min},
		{"Minimum", Min},
		{"max", Max},
		{"MAXIMUM", Max},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.input)
		if err != nil {
			t.Fatalf("ParseMethod(%q) failed: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseMethod(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}

	if _, err := ParseMethod("median"); !errors.Is(err, ErrInvalidMethod) {
		t.Errorf("expected ErrInvalidMethod, got %v", err)
	}
}

func TestParseInterpretation(t *testing.T) {
	got, err := ParseInterpretation("normal")
	if err != nil || got != Normal {
		t.Errorf("ParseInterpretation(normal) = %v, %v", got, err)
	}
	got, err = ParseInterpretation("")
	if err != nil || got != None {
		t.Errorf("ParseInterpretation(\"\") = %v, %v", got, err)
	}
	if _, err := ParseInterpretation("texture"); err == nil {
		t.Error("expected error for unknown interpretation")
	}
}

func TestReduceAverageStartsFromZero(t *testing.T) {
	d := NewV2fData(Vector, math.Splat2(0), math.Splat2(0), math.Splat2(0))

	// Reduce twice to make sure no accumulator state leaks between targets.
	for range 2 {
		out, err := d.Reduce(lists{{0, 1}, {1, 2}, {0, 1, 2}}, Average)
		if err != nil {
			t.Fatalf("Reduce failed: %v", err)
		}
		for i, v := range out.(*TypedData[math.Vec2]).Values() {
			if v != (math.Vec2{}) {
				t.Errorf("element %d = %v, want zero", i, v)
			}
		}
	}
}

func TestReduceMethods(t *testing.T) {
	d := NewFloatData(4, 1, 7, 2)
	m := lists{{0, 1, 2, 3}, {2}, {}, {3, 0}}

	tests := []struct {
		method   Method
		expected []float32
	}{
		{Average, []float32{3.5, 7, 0, 3}},
		{Min, []float32{1, 7, 0, 2}},
		{Max, []float32{7, 7, 0, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			out, err := d.Reduce(m, tt.method)
			if err != nil {
				t.Fatalf("Reduce failed: %v", err)
			}
			got := out.(*TypedData[float32]).Values()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Reduce(%v) = %v, want %v", tt.method, got, tt.expected)
			}
		})
	}
}

func TestReduceIntegerAverageTruncates(t *testing.T) {
	d := NewIntData(1, 2, -1, -2)
	out, err := d.Reduce(lists{{0, 1}, {2, 3}}, Average)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	got := out.(*TypedData[int32]).Values()
	want := []int32{1, -1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("integer average = %v, want %v", got, want)
	}
}

func TestReduceIntegerAverageDoesNotOverflow(t *testing.T) {
	wide, err := NewIntData(2e9, 2e9, stdmath.MaxInt32, stdmath.MaxInt32-1).Reduce(lists{{0, 1}, {2, 3}}, Average)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if got, want := wide.(*TypedData[int32]).Values(), []int32{2e9, stdmath.MaxInt32 - 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("int32 average = %v, want %v", got, want)
	}

	narrow, err := NewScalarData[uint8]("uchar", []uint8{200, 100, 255, 255}).Reduce(lists{{0, 1}, {2, 3}}, Average)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if got, want := narrow.(*TypedData[uint8]).Values(), []uint8{150, 255}; !reflect.DeepEqual(got, want) {
		t.Errorf("uint8 average = %v, want %v", got, want)
	}

	signed, err := NewScalarData[int8]("char", []int8{-128, -128, 127}).Reduce(lists{{0, 1, 0}, {2, 2}}, Average)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if got, want := signed.(*TypedData[int8]).Values(), []int8{-128, 127}; !reflect.DeepEqual(got, want) {
		t.Errorf("int8 average = %v, want %v", got, want)
	}
}

func TestReduceVectorComponentwise(t *testing.T) {
	d := NewV3fData(Point, math.Vec3{X: 1, Y: 9, Z: 5}, math.Vec3{X: 3, Y: 2, Z: 8})

	out, err := d.Reduce(lists{{0, 1}}, Min)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if got, want := out.(*TypedData[math.Vec3]).At(0), (math.Vec3{X: 1, Y: 2, Z: 5}); got != want {
		t.Errorf("Min = %v, want %v", got, want)
	}
	if out.Interpretation() != Point {
		t.Errorf("interpretation not preserved: %v", out.Interpretation())
	}
}

func TestReduceStrings(t *testing.T) {
	d := NewStringData("a", "b")

	// Copy paths work for any type.
	out, err := d.Reduce(lists{{1}, {0}, {}}, Average)
	if err != nil {
		t.Fatalf("copy reduce failed: %v", err)
	}
	if got, want := out.(*TypedData[string]).Values(), []string{"b", "a", ""}; !reflect.DeepEqual(got, want) {
		t.Errorf("copy reduce = %v, want %v", got, want)
	}

	if _, err := d.Reduce(lists{{0, 1}}, Average); !errors.Is(err, ErrUnsupportedReduction) {
		t.Errorf("expected ErrUnsupportedReduction, got %v", err)
	}
	if d.Reducible() {
		t.Error("string data should not be reducible")
	}
}

func TestReduceInvalidMethod(t *testing.T) {
	d := NewFloatData(1, 2)
	if _, err := d.Reduce(lists{{0, 1}}, Method(9)); !errors.Is(err, ErrInvalidMethod) {
		t.Errorf("expected ErrInvalidMethod, got %v", err)
	}
}

func TestGather(t *testing.T) {
	d := NewV3fData(Normal, math.Splat3(1), math.Splat3(2))
	out := d.Gather([]int{1, 1, -1, 0})

	want := []math.Vec3{math.Splat3(2), math.Splat3(2), {}, math.Splat3(1)}
	if got := out.(*TypedData[math.Vec3]).Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Gather = %v, want %v", got, want)
	}
	if out.Interpretation() != Normal {
		t.Errorf("interpretation not preserved: %v", out.Interpretation())
	}
	if out.TypeName() != "v3f" {
		t.Errorf("type name = %s, want v3f", out.TypeName())
	}
}

func TestVariableValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       *Variable
		size    int
		wantErr bool
	}{
		{"dense ok", New(Vertex, NewFloatData(1, 2, 3)), 3, false},
		{"dense short", New(Vertex, NewFloatData(1, 2)), 3, true},
		{"indexed ok", NewIndexed(Uniform, NewFloatData(1, 2), []int{0, 1, 1, 0}), 4, false},
		{"indexed wrong length", NewIndexed(Uniform, NewFloatData(1, 2), []int{0, 1}), 4, true},
		{"index out of range", NewIndexed(Uniform, NewFloatData(1, 2), []int{0, 2, 1, 0}), 4, true},
		{"negative index", NewIndexed(Uniform, NewFloatData(1, 2), []int{0, -1, 1, 0}), 4, true},
		{"no data", New(Constant, nil), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(tt.size)
			if tt.wantErr && !errors.Is(err, ErrDomainMismatch) {
				t.Errorf("expected ErrDomainMismatch, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	if err := New(Invalid, NewFloatData(1)).Validate(1); !errors.Is(err, ErrInvalidInterpolation) {
		t.Errorf("expected ErrInvalidInterpolation, got %v", err)
	}
}

func TestVariableCloneIsDeep(t *testing.T) {
	v := NewIndexed(Vertex, NewFloatData(1, 2), []int{0, 1, 0})
	c := v.Clone()

	c.Indices[0] = 1
	c.Data.(*TypedData[float32]).Values()[0] = 5

	if v.Indices[0] != 0 {
		t.Error("clone shares indices with original")
	}
	if v.Data.(*TypedData[float32]).At(0) != 1 {
		t.Error("clone shares data with original")
	}
}

func TestVariableExpanded(t *testing.T) {
	v := NewIndexed(FaceVarying, NewStringData("x", "y"), []int{1, 0, 1})
	got := v.Expanded().(*TypedData[string]).Values()
	want := []string{"y", "x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expanded = %v, want %v", got, want)
	}
}
