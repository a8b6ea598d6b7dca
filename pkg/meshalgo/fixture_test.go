package meshalgo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshresample/pkg/math"
	"github.com/Faultbox/meshresample/pkg/mesh"
	"github.com/Faultbox/meshresample/pkg/primvar"
)

// newTestMesh returns a 2x2 quad plane over [0, 10] carrying one variable
// per domain, dense and indexed, plus vectors with interpretations:
//
//	6---7---8
//	| 2 | 3 |
//	3---4---5
//	| 0 | 1 |
//	0---1---2
func newTestMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.CreatePlane(math.Vec2{}, math.Splat2(10), 2, 2)
	require.NoError(t, err)

	m.Set("a", primvar.New(primvar.Constant, primvar.NewFloatData(0.5)))
	m.Set("b", primvar.New(primvar.Vertex, primvar.NewFloatData(seq(9)...)))
	m.Set("c", primvar.New(primvar.Uniform, primvar.NewFloatData(seq(4)...)))
	m.Set("d", primvar.New(primvar.Varying, primvar.NewFloatData(seq(9)...)))
	m.Set("e", primvar.New(primvar.FaceVarying, primvar.NewFloatData(seq(16)...)))

	m.Set("f", primvar.NewIndexed(primvar.Vertex, primvar.NewFloatData(seq(3)...), []int{0, 1, 2, 0, 1, 2, 0, 1, 2}))
	m.Set("g", primvar.NewIndexed(primvar.Uniform, primvar.NewFloatData(seq(3)...), []int{0, 1, 2, 0}))
	m.Set("h", primvar.NewIndexed(primvar.Varying, primvar.NewFloatData(seq(3)...), []int{0, 1, 2, 0, 1, 2, 0, 1, 2}))
	m.Set("i", primvar.NewIndexed(primvar.FaceVarying, primvar.NewFloatData(seq(3)...), []int{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0}))

	m.Set("vertex_Point_V3f", primvar.New(primvar.Vertex, primvar.NewV3fData(primvar.Point, splat3(seq(9))...)))
	m.Set("uniform_Normal_V3f", primvar.New(primvar.Uniform, primvar.NewV3fData(primvar.Normal, splat3(seq(4))...)))
	m.Set("varying_Vector_V2f", primvar.New(primvar.Varying, primvar.NewV2fData(primvar.Vector, splat2(seq(9))...)))
	m.Set("faceVarying_Color_V2f", primvar.New(primvar.FaceVarying, primvar.NewV2fData(primvar.Color, splat2(seq(16))...)))

	m.Set("j", primvar.New(primvar.Constant, primvar.NewStringData("test")))

	require.NoError(t, m.ValidateVariables())
	return m
}

// variable returns a copy of the named fixture variable so tests can
// mutate it freely.
func variable(t *testing.T, m *mesh.Mesh, name string) *primvar.Variable {
	t.Helper()
	v, ok := m.Get(name)
	require.True(t, ok, "fixture has no variable %q", name)
	return v.Clone()
}

func seq(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}

func splat2(values []float32) []math.Vec2 {
	out := make([]math.Vec2, len(values))
	for i, v := range values {
		out[i] = math.Splat2(v)
	}
	return out
}

func splat3(values []float32) []math.Vec3 {
	out := make([]math.Vec3, len(values))
	for i, v := range values {
		out[i] = math.Splat3(v)
	}
	return out
}

func floats(t *testing.T, v *primvar.Variable) []float32 {
	t.Helper()
	d, ok := v.Data.(*primvar.TypedData[float32])
	require.True(t, ok, "expected float data, got %T", v.Data)
	return d.Values()
}

func vec2s(t *testing.T, v *primvar.Variable) []math.Vec2 {
	t.Helper()
	d, ok := v.Data.(*primvar.TypedData[math.Vec2])
	require.True(t, ok, "expected v2f data, got %T", v.Data)
	return d.Values()
}

func vec3s(t *testing.T, v *primvar.Variable) []math.Vec3 {
	t.Helper()
	d, ok := v.Data.(*primvar.TypedData[math.Vec3])
	require.True(t, ok, "expected v3f data, got %T", v.Data)
	return d.Values()
}
