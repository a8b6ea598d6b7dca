package meshdoc

import (
	"github.com/Faultbox/meshresample/pkg/primvar"
)

// Document is the on-disk shape of a mesh.
type Document struct {
	Topology  TopologyDoc            `yaml:"topology" toml:"topology"`
	Variables map[string]VariableDoc `yaml:"variables,omitempty" toml:"variables,omitempty"`
}

// TopologyDoc lists the face-vertex layout.
type TopologyDoc struct {
	FaceVertexCounts []int `yaml:"face_vertex_counts" toml:"face_vertex_counts"`
	VertexIDs        []int `yaml:"vertex_ids" toml:"vertex_ids"`
}

// VariableDoc is one primitive variable. Values holds scalars for
// float, double, int, string and bool, and 2- or 3-element lists for
// v2f and v3f. Indices is nil for unindexed variables; an indexed
// variable always writes the key, even when its index array is empty.
type VariableDoc struct {
	Interpolation  primvar.Interpolation  `yaml:"interpolation" toml:"interpolation"`
	Type           string                 `yaml:"type" toml:"type"`
	Interpretation primvar.Interpretation `yaml:"interpretation,omitempty" toml:"interpretation,omitempty"`
	Values         []any                  `yaml:"values" toml:"values"`
	Indices        *[]int                 `yaml:"indices,omitempty" toml:"indices,omitempty"`
}
