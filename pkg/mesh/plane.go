package mesh

import (
	"fmt"

	"github.com/Faultbox/meshresample/pkg/math"
	"github.com/Faultbox/meshresample/pkg/primvar"
)

// CreatePlane builds a flat quad grid spanning [lo, hi] in the XY plane
// with divX by divY faces.
//
// Vertices are laid out row by row starting at lo, faces in the same scan
// order, and each face visits its corners counter-clockwise starting at
// its lowest vertex: v, v+1, v+row+1, v+row where row = divX+1.
//
// The mesh carries "P" (Vertex positions, Point) and "uv" (FaceVarying,
// indexed by vertex id).
func CreatePlane(lo, hi math.Vec2, divX, divY int) (*Mesh, error) {
	if divX < 1 || divY < 1 {
		return nil, fmt.Errorf("%w: plane needs at least one division per axis, got %dx%d",
			ErrInvalidTopology, divX, divY)
	}

	row := divX + 1
	numVertices := row * (divY + 1)

	positions := make([]math.Vec3, 0, numVertices)
	uvs := make([]math.Vec2, 0, numVertices)
	size := hi.Sub(lo)
	for j := range divY + 1 {
		for i := range row {
			u := float32(i) / float32(divX)
			v := float32(j) / float32(divY)
			positions = append(positions, math.Vec3{X: lo.X + size.X*u, Y: lo.Y + size.Y*v})
			uvs = append(uvs, math.Vec2{X: u, Y: v})
		}
	}

	counts := make([]int, 0, divX*divY)
	ids := make([]int, 0, 4*divX*divY)
	for j := range divY {
		for i := range divX {
			v := j*row + i
			counts = append(counts, 4)
			ids = append(ids, v, v+1, v+row+1, v+row)
		}
	}

	topo, err := New(counts, ids)
	if err != nil {
		return nil, err
	}

	m := NewMesh(topo)
	m.Set("P", primvar.New(primvar.Vertex, primvar.NewV3fData(primvar.Point, positions...)))
	m.Set("uv", primvar.NewIndexed(primvar.FaceVarying, primvar.NewV2fData(primvar.UV, uvs...), append([]int{}, ids...)))
	return m, nil
}
