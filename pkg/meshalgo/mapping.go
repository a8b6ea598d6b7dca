package meshalgo

import (
	"fmt"

	"github.com/Faultbox/meshresample/pkg/mesh"
	"github.com/Faultbox/meshresample/pkg/primvar"
)

// position collapses the five interpolations onto the four element
// layouts they actually use. Varying and Vertex share one.
type position int

const (
	posConstant position = iota
	posUniform
	posVertex
	posFaceVarying
	numPositions
)

var positionNames = [numPositions]string{"constant", "uniform", "vertex", "facevarying"}

func (p position) String() string { return positionNames[p] }

func positionOf(interp primvar.Interpolation) (position, error) {
	switch interp {
	case primvar.Constant:
		return posConstant, nil
	case primvar.Uniform:
		return posUniform, nil
	case primvar.Varying, primvar.Vertex:
		return posVertex, nil
	case primvar.FaceVarying:
		return posFaceVarying, nil
	}
	return 0, fmt.Errorf("%w: %s", primvar.ErrInvalidInterpolation, interp)
}

func positionSize(t *mesh.Topology, p position) int {
	switch p {
	case posConstant:
		return 1
	case posUniform:
		return t.NumFaces()
	case posVertex:
		return t.NumVertices()
	default:
		return t.NumCorners()
	}
}

// builder computes the fan-in map for one (source, target) position pair.
type builder func(t *mesh.Topology) *FanIn

// strategies is indexed by [source][target].
var strategies = [numPositions][numPositions]builder{
	posConstant: {
		posConstant:    identity(posConstant),
		posUniform:     fromConstant(posUniform),
		posVertex:      fromConstant(posVertex),
		posFaceVarying: fromConstant(posFaceVarying),
	},
	posUniform: {
		posConstant:    toConstant(posUniform),
		posUniform:     identity(posUniform),
		posVertex:      uniformToVertex,
		posFaceVarying: uniformToFaceVarying,
	},
	posVertex: {
		posConstant:    toConstant(posVertex),
		posUniform:     vertexToUniform,
		posVertex:      identity(posVertex),
		posFaceVarying: vertexToFaceVarying,
	},
	posFaceVarying: {
		posConstant:    toConstant(posFaceVarying),
		posUniform:     faceVaryingToUniform,
		posVertex:      faceVaryingToVertex,
		posFaceVarying: identity(posFaceVarying),
	},
}

// BuildFanIn returns the fan-in map from src to dst on t. It depends only
// on topology, never on variable values.
func BuildFanIn(t *mesh.Topology, src, dst primvar.Interpolation) (*FanIn, error) {
	from, err := positionOf(src)
	if err != nil {
		return nil, err
	}
	to, err := positionOf(dst)
	if err != nil {
		return nil, err
	}
	return strategies[from][to](t), nil
}

// identity maps every element of p onto itself.
func identity(p position) builder {
	return func(t *mesh.Topology) *FanIn {
		n := positionSize(t, p)
		f := newFanIn(n, n)
		for i := range n {
			f.push(i)
		}
		return f
	}
}

// fromConstant copies the single constant value to every element of p.
func fromConstant(p position) builder {
	return func(t *mesh.Topology) *FanIn {
		n := positionSize(t, p)
		f := newFanIn(n, n)
		for range n {
			f.push(0)
		}
		return f
	}
}

// toConstant combines every element of p into the single constant value.
func toConstant(p position) builder {
	return func(t *mesh.Topology) *FanIn {
		n := positionSize(t, p)
		f := newFanIn(1, n)
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		f.push(all...)
		return f
	}
}

// vertexToUniform gives each face the vertices it visits, in corner order.
// A vertex visited twice by one face is listed twice so it weighs twice in
// an average.
func vertexToUniform(t *mesh.Topology) *FanIn {
	f := newFanIn(t.NumFaces(), t.NumCorners())
	for face := range t.NumFaces() {
		f.push(t.FaceVertices(face)...)
	}
	return f
}

// faceVaryingToUniform gives each face its own corners.
func faceVaryingToUniform(t *mesh.Topology) *FanIn {
	f := newFanIn(t.NumFaces(), t.NumCorners())
	for face := range t.NumFaces() {
		start, end := t.FaceCornerRange(face)
		for c := start; c < end; c++ {
			f.sources = append(f.sources, c)
		}
		f.offsets = append(f.offsets, len(f.sources))
	}
	return f
}

// uniformToVertex gives each vertex the faces that touch it. A face
// touching the vertex at several corners is listed once.
func uniformToVertex(t *mesh.Topology) *FanIn {
	f := newFanIn(t.NumVertices(), t.NumCorners())
	for v := range t.NumVertices() {
		f.push(t.VertexFaces(v)...)
	}
	return f
}

// faceVaryingToVertex gives each vertex every corner that references it,
// across all faces.
func faceVaryingToVertex(t *mesh.Topology) *FanIn {
	f := newFanIn(t.NumVertices(), t.NumCorners())
	for v := range t.NumVertices() {
		f.push(t.VertexCorners(v)...)
	}
	return f
}

// uniformToFaceVarying gives each corner its owning face.
func uniformToFaceVarying(t *mesh.Topology) *FanIn {
	f := newFanIn(t.NumCorners(), t.NumCorners())
	for c := range t.NumCorners() {
		f.push(t.CornerFace(c))
	}
	return f
}

// vertexToFaceVarying gives each corner the vertex it references.
func vertexToFaceVarying(t *mesh.Topology) *FanIn {
	f := newFanIn(t.NumCorners(), t.NumCorners())
	for c := range t.NumCorners() {
		f.push(t.CornerVertex(c))
	}
	return f
}
