package mesh

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/Faultbox/meshresample/pkg/primvar"
)

// Mesh pairs a topology with named primitive variables.
type Mesh struct {
	Topology  *Topology
	Variables map[string]*primvar.Variable
}

// NewMesh returns a mesh with no variables.
func NewMesh(topo *Topology) *Mesh {
	return &Mesh{
		Topology:  topo,
		Variables: make(map[string]*primvar.Variable),
	}
}

// Set stores v under name, replacing any previous variable.
func (m *Mesh) Set(name string, v *primvar.Variable) {
	if m.Variables == nil {
		m.Variables = make(map[string]*primvar.Variable)
	}
	m.Variables[name] = v
}

// Get returns the variable called name.
func (m *Mesh) Get(name string) (*primvar.Variable, bool) {
	v, ok := m.Variables[name]
	return v, ok
}

// Names returns the variable names in sorted order.
func (m *Mesh) Names() []string {
	names := make([]string, 0, len(m.Variables))
	for name := range m.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateVariables checks every variable against the topology. The
// returned error combines one failure per invalid variable.
func (m *Mesh) ValidateVariables() error {
	var errs error
	for _, name := range m.Names() {
		v := m.Variables[name]
		if err := v.Validate(m.Topology.VariableSize(v.Interpolation)); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("variable %q: %w", name, err))
		}
	}
	return errs
}
