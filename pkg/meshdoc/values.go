package meshdoc

import (
	"fmt"
	stdmath "math"

	"github.com/Faultbox/meshresample/pkg/math"
	"github.com/Faultbox/meshresample/pkg/primvar"
)

// decodeData builds typed data from a document variable.
func decodeData(v VariableDoc) (primvar.Data, error) {
	switch v.Type {
	case "float":
		values, err := decodeScalars(v.Values, func(f float64) float32 { return float32(f) })
		if err != nil {
			return nil, err
		}
		return primvar.NewFloatData(values...).WithInterpretation(v.Interpretation), nil
	case "double":
		values, err := decodeScalars(v.Values, func(f float64) float64 { return f })
		if err != nil {
			return nil, err
		}
		return primvar.NewDoubleData(values...).WithInterpretation(v.Interpretation), nil
	case "int":
		values := make([]int32, len(v.Values))
		for i, raw := range v.Values {
			n, ok := asInt(raw)
			if !ok {
				return nil, fmt.Errorf("value %d: expected integer, got %T", i, raw)
			}
			if n < stdmath.MinInt32 || n > stdmath.MaxInt32 {
				return nil, fmt.Errorf("value %d: %d does not fit in int", i, n)
			}
			values[i] = int32(n)
		}
		return primvar.NewIntData(values...).WithInterpretation(v.Interpretation), nil
	case "v2f":
		values := make([]math.Vec2, len(v.Values))
		for i, raw := range v.Values {
			c, err := decodeVector(raw, 2)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			values[i] = math.Vec2{X: c[0], Y: c[1]}
		}
		return primvar.NewV2fData(v.Interpretation, values...), nil
	case "v3f":
		values := make([]math.Vec3, len(v.Values))
		for i, raw := range v.Values {
			c, err := decodeVector(raw, 3)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			values[i] = math.Vec3{X: c[0], Y: c[1], Z: c[2]}
		}
		return primvar.NewV3fData(v.Interpretation, values...), nil
	case "string":
		values := make([]string, len(v.Values))
		for i, raw := range v.Values {
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("value %d: expected string, got %T", i, raw)
			}
			values[i] = s
		}
		return primvar.NewStringData(values...).WithInterpretation(v.Interpretation), nil
	case "bool":
		values := make([]bool, len(v.Values))
		for i, raw := range v.Values {
			b, ok := raw.(bool)
			if !ok {
				return nil, fmt.Errorf("value %d: expected bool, got %T", i, raw)
			}
			values[i] = b
		}
		return primvar.NewBoolData(values...).WithInterpretation(v.Interpretation), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, v.Type)
}

// encodeData returns the document type name and values for d.
func encodeData(d primvar.Data) (string, []any, error) {
	var values []any
	switch elems := d.Elements().(type) {
	case []float32:
		values = boxAll(elems)
	case []float64:
		values = boxAll(elems)
	case []int32:
		values = boxAll(elems)
	case []string:
		values = boxAll(elems)
	case []bool:
		values = boxAll(elems)
	case []math.Vec2:
		values = make([]any, len(elems))
		for i, e := range elems {
			values[i] = []float32{e.X, e.Y}
		}
	case []math.Vec3:
		values = make([]any, len(elems))
		for i, e := range elems {
			values[i] = []float32{e.X, e.Y, e.Z}
		}
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownType, d.TypeName())
	}
	return d.TypeName(), values, nil
}

func boxAll[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func decodeScalars[T any](raw []any, conv func(float64) T) ([]T, error) {
	out := make([]T, len(raw))
	for i, r := range raw {
		f, ok := asFloat(r)
		if !ok {
			return nil, fmt.Errorf("value %d: expected number, got %T", i, r)
		}
		out[i] = conv(f)
	}
	return out, nil
}

func decodeVector(raw any, n int) ([]float32, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected list of %d numbers, got %T", n, raw)
	}
	if len(list) != n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(list))
	}
	out := make([]float32, n)
	for i, c := range list {
		f, ok := asFloat(c)
		if !ok {
			return nil, fmt.Errorf("component %d: expected number, got %T", i, c)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// asFloat accepts the numeric types produced by the YAML and TOML decoders.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}
