// Package mesh provides read-only polygon mesh topology and a container
// pairing a topology with its primitive variables.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshresample/pkg/primvar"
)

// ErrInvalidTopology is returned when face vertex counts and vertex ids
// do not describe a consistent mesh.
var ErrInvalidTopology = errors.New("invalid mesh topology")

// Topology describes polygon connectivity.
//
// A corner is one (face, vertex) incidence. Corners are numbered face by
// face, so the corners of face f are contiguous and vertexIDs[c] is the
// vertex referenced by corner c.
type Topology struct {
	faceVertexCounts []int
	vertexIDs        []int
	numVertices      int

	// faceOffsets[f] is the first corner of face f; faceOffsets[numFaces]
	// is the corner count.
	faceOffsets []int
	cornerFaces []int

	// Corners referencing vertex v are vertexCorners[vertexOffsets[v]:vertexOffsets[v+1]],
	// in ascending order.
	vertexOffsets []int
	vertexCorners []int
}

// New builds a topology from per-face corner counts and per-corner vertex
// ids. The vertex count is one more than the largest id. The input slices
// are copied.
func New(faceVertexCounts, vertexIDs []int) (*Topology, error) {
	total := 0
	for f, n := range faceVertexCounts {
		if n < 0 {
			return nil, fmt.Errorf("%w: face %d has negative vertex count %d", ErrInvalidTopology, f, n)
		}
		total += n
	}
	if total != len(vertexIDs) {
		return nil, fmt.Errorf("%w: face vertex counts sum to %d but there are %d vertex ids",
			ErrInvalidTopology, total, len(vertexIDs))
	}

	numVertices := 0
	for c, id := range vertexIDs {
		if id < 0 {
			return nil, fmt.Errorf("%w: corner %d references negative vertex %d", ErrInvalidTopology, c, id)
		}
		numVertices = max(numVertices, id+1)
	}

	t := &Topology{
		faceVertexCounts: append([]int{}, faceVertexCounts...),
		vertexIDs:        append([]int{}, vertexIDs...),
		numVertices:      numVertices,
	}
	t.buildFaceIndex()
	t.buildVertexIndex()
	return t, nil
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(faceVertexCounts, vertexIDs []int) *Topology {
	t, err := New(faceVertexCounts, vertexIDs)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Topology) buildFaceIndex() {
	t.faceOffsets = make([]int, len(t.faceVertexCounts)+1)
	t.cornerFaces = make([]int, len(t.vertexIDs))
	corner := 0
	for f, n := range t.faceVertexCounts {
		t.faceOffsets[f] = corner
		for range n {
			t.cornerFaces[corner] = f
			corner++
		}
	}
	t.faceOffsets[len(t.faceVertexCounts)] = corner
}

// buildVertexIndex inverts vertexIDs with a counting sort.
func (t *Topology) buildVertexIndex() {
	t.vertexOffsets = make([]int, t.numVertices+1)
	for _, v := range t.vertexIDs {
		t.vertexOffsets[v+1]++
	}
	for v := range t.numVertices {
		t.vertexOffsets[v+1] += t.vertexOffsets[v]
	}

	t.vertexCorners = make([]int, len(t.vertexIDs))
	next := append([]int{}, t.vertexOffsets[:t.numVertices]...)
	for c, v := range t.vertexIDs {
		t.vertexCorners[next[v]] = c
		next[v]++
	}
}

// NumFaces returns the number of faces.
func (t *Topology) NumFaces() int { return len(t.faceVertexCounts) }

// NumVertices returns the number of vertices.
func (t *Topology) NumVertices() int { return t.numVertices }

// NumCorners returns the number of face corners.
func (t *Topology) NumCorners() int { return len(t.vertexIDs) }

// VariableSize returns how many elements a variable at interp holds.
// Invalid interpolations have size zero.
func (t *Topology) VariableSize(interp primvar.Interpolation) int {
	switch interp {
	case primvar.Constant:
		return 1
	case primvar.Uniform:
		return t.NumFaces()
	case primvar.Varying, primvar.Vertex:
		return t.NumVertices()
	case primvar.FaceVarying:
		return t.NumCorners()
	default:
		return 0
	}
}

// FaceVertexCounts returns the corner count of every face.
// Callers must not modify the result.
func (t *Topology) FaceVertexCounts() []int { return t.faceVertexCounts }

// VertexIDs returns the vertex referenced by every corner.
// Callers must not modify the result.
func (t *Topology) VertexIDs() []int { return t.vertexIDs }

// CornerVertex returns the vertex referenced by corner c.
func (t *Topology) CornerVertex(c int) int { return t.vertexIDs[c] }

// CornerFace returns the face owning corner c.
func (t *Topology) CornerFace(c int) int { return t.cornerFaces[c] }

// FaceVertexCount returns the number of corners of face f.
func (t *Topology) FaceVertexCount(f int) int { return t.faceVertexCounts[f] }

// FaceCornerRange returns the half-open corner range [start, end) of face f.
func (t *Topology) FaceCornerRange(f int) (start, end int) {
	return t.faceOffsets[f], t.faceOffsets[f+1]
}

// FaceCorners returns the corners of face f.
func (t *Topology) FaceCorners(f int) []int {
	start, end := t.FaceCornerRange(f)
	corners := make([]int, 0, end-start)
	for c := start; c < end; c++ {
		corners = append(corners, c)
	}
	return corners
}

// FaceVertices returns the vertices visited by face f in corner order,
// repeats included. Callers must not modify the result.
func (t *Topology) FaceVertices(f int) []int {
	start, end := t.FaceCornerRange(f)
	return t.vertexIDs[start:end:end]
}

// VertexCorners returns, in ascending order, every corner that references
// vertex v. Callers must not modify the result.
func (t *Topology) VertexCorners(v int) []int {
	start, end := t.vertexOffsets[v], t.vertexOffsets[v+1]
	return t.vertexCorners[start:end:end]
}

// VertexFaces returns, in ascending order, every face that references
// vertex v. A face touching v at several corners is listed once.
func (t *Topology) VertexFaces(v int) []int {
	corners := t.VertexCorners(v)
	faces := make([]int, 0, len(corners))
	for _, c := range corners {
		f := t.cornerFaces[c]
		if n := len(faces); n > 0 && faces[n-1] == f {
			continue
		}
		faces = append(faces, f)
	}
	return faces
}
