// Package meshdoc reads and writes meshes with primitive variables as YAML
// or TOML documents.
package meshdoc

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshresample/pkg/mesh"
	"github.com/Faultbox/meshresample/pkg/primvar"
)

// Document errors.
var (
	ErrUnknownFormat = errors.New("unknown mesh document format")
	ErrUnknownType   = errors.New("unknown primitive variable type")
	ErrDuplicateName = errors.New("duplicate primitive variable name")
)

// Parse decodes a mesh document and validates every variable against the
// topology.
func Parse(data []byte, format Format) (*mesh.Mesh, error) {
	var doc Document
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	case TOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return doc.Mesh()
}

// Load reads a mesh document, picking the format from the file extension.
func Load(path string) (*mesh.Mesh, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Encode serializes m in the given format.
func Encode(m *mesh.Mesh, format Format) ([]byte, error) {
	doc, err := FromMesh(m)
	if err != nil {
		return nil, err
	}
	switch format {
	case YAML:
		return yaml.Marshal(doc)
	case TOML:
		return toml.Marshal(doc)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

// Save writes m to path, picking the format from the file extension.
func Save(m *mesh.Mesh, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(m, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Mesh converts the document into a validated mesh. Variable names are
// stored in Unicode NFC form.
func (d *Document) Mesh() (*mesh.Mesh, error) {
	topo, err := mesh.New(d.Topology.FaceVertexCounts, d.Topology.VertexIDs)
	if err != nil {
		return nil, err
	}

	m := mesh.NewMesh(topo)
	for raw, vd := range d.Variables {
		name := norm.NFC.String(raw)
		if _, dup := m.Get(name); dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		if !vd.Interpolation.IsValid() {
			return nil, fmt.Errorf("variable %q: %w", name, primvar.ErrInvalidInterpolation)
		}
		data, err := decodeData(vd)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		var v *primvar.Variable
		if vd.Indices != nil {
			v = primvar.NewIndexed(vd.Interpolation, data, *vd.Indices)
		} else {
			v = primvar.New(vd.Interpolation, data)
		}
		m.Set(name, v)
	}

	if err := m.ValidateVariables(); err != nil {
		return nil, err
	}
	return m, nil
}

// FromMesh builds a document from m.
func FromMesh(m *mesh.Mesh) (*Document, error) {
	doc := &Document{
		Topology: TopologyDoc{
			FaceVertexCounts: m.Topology.FaceVertexCounts(),
			VertexIDs:        m.Topology.VertexIDs(),
		},
		Variables: make(map[string]VariableDoc, len(m.Variables)),
	}

	for _, name := range m.Names() {
		v := m.Variables[name]
		typeName, values, err := encodeData(v.Data)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		vd := VariableDoc{
			Interpolation:  v.Interpolation,
			Type:           typeName,
			Interpretation: v.Data.Interpretation(),
			Values:         values,
		}
		if v.IsIndexed() {
			indices := v.Indices
			vd.Indices = &indices
		}
		doc.Variables[name] = vd
	}
	return doc, nil
}
