// Package meshalgo resamples primitive variables between interpolation
// domains of a polygon mesh.
//
// Resampling builds a fan-in map from the variable's domain to the target
// domain and then either copies (every target has one contributor) or
// reduces (averages, or takes the componentwise minimum or maximum of the
// contributors).
package meshalgo

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshresample/pkg/mesh"
	"github.com/Faultbox/meshresample/pkg/primvar"
)

// Resampler resamples primitive variables. The zero value is ready to use
// and neither logs nor caches.
type Resampler struct {
	logger *zap.Logger
	cache  *MappingCache
}

// Option configures a Resampler.
type Option func(*Resampler)

// WithLogger sets the logger used for debug traces and warnings.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resampler) { r.logger = l }
}

// WithCache makes the resampler reuse fan-in maps from c.
func WithCache(c *MappingCache) Option {
	return func(r *Resampler) { r.cache = c }
}

// NewResampler returns a Resampler configured by opts.
func NewResampler(opts ...Option) *Resampler {
	r := &Resampler{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resampler) log() *zap.Logger {
	if r.logger == nil {
		return zap.NewNop()
	}
	return r.logger
}

// ResamplePrimitiveVariable resamples v in place to target with a default
// Resampler. See Resampler.Resample.
func ResamplePrimitiveVariable(t *mesh.Topology, v *primvar.Variable, target primvar.Interpolation, method primvar.Method) error {
	var r Resampler
	return r.Resample(t, v, target, method)
}

// Resample converts v in place to the target interpolation on topology t.
//
// Indexed variables stay indexed when every target element's contributors
// resolve to one shared index; the value table is then reused unchanged.
// Otherwise the result is dense. Interpretation metadata is preserved.
//
// On error v is left untouched.
func (r *Resampler) Resample(t *mesh.Topology, v *primvar.Variable, target primvar.Interpolation, method primvar.Method) error {
	if t == nil {
		return fmt.Errorf("%w: nil topology", ErrInvalidTopology)
	}
	if v == nil {
		return fmt.Errorf("%w: nil variable", ErrDomainMismatch)
	}
	if !target.IsValid() {
		return fmt.Errorf("%w: target %s", ErrInvalidInterpolation, target)
	}
	if !method.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidMethod, int(method))
	}
	if err := v.Validate(t.VariableSize(v.Interpolation)); err != nil {
		return err
	}

	source := v.Interpolation
	if source == target {
		return nil
	}

	fanIn, err := r.fanIn(t, source, target)
	if err != nil {
		return err
	}

	var (
		data    primvar.Data
		indices []int
		path    string
	)
	switch {
	case v.IsIndexed():
		if shared, ok := fanIn.SharedIndices(v.Indices); ok {
			path = "indexed"
			data, indices = v.Data.Clone(), shared
			break
		}
		path = "resolved"
		data, err = v.Data.Reduce(fanIn.Resolve(v.Indices), method)
	case fanIn.IsGather():
		path = "gather"
		data = v.Data.Gather(fanIn.Gather())
	default:
		path = "reduce"
		data, err = v.Data.Reduce(fanIn, method)
	}
	if err != nil {
		return fmt.Errorf("resampling %s to %s: %w", source, target, err)
	}

	r.log().Debug("resampled primitive variable",
		zap.Stringer("from", source),
		zap.Stringer("to", target),
		zap.Stringer("method", method),
		zap.String("path", path),
		zap.String("type", data.TypeName()),
		zap.Int("elements", fanIn.Len()),
	)

	v.Interpolation = target
	v.Data = data
	v.Indices = indices
	return nil
}

func (r *Resampler) fanIn(t *mesh.Topology, src, dst primvar.Interpolation) (*FanIn, error) {
	if r.cache == nil {
		return BuildFanIn(t, src, dst)
	}
	f, hit, err := r.cache.FanIn(t, src, dst)
	if err != nil {
		return nil, err
	}
	r.log().Debug("fan-in map",
		zap.Stringer("from", src),
		zap.Stringer("to", dst),
		zap.Bool("cached", hit),
	)
	return f, nil
}

// ResampleAll resamples every variable of m to target. Variables whose
// element type cannot be reduced along the required path are left as they
// are and reported in skipped. Any other failure stops the pass; variables
// already processed keep their new domain.
func (r *Resampler) ResampleAll(m *mesh.Mesh, target primvar.Interpolation, method primvar.Method) (skipped []string, err error) {
	for _, name := range m.Names() {
		err := r.Resample(m.Topology, m.Variables[name], target, method)
		if errors.Is(err, ErrUnsupportedReduction) {
			r.log().Warn("skipping variable that cannot be reduced",
				zap.String("variable", name),
				zap.Stringer("to", target),
				zap.Error(err),
			)
			skipped = append(skipped, name)
			continue
		}
		if err != nil {
			return skipped, fmt.Errorf("variable %q: %w", name, err)
		}
	}
	return skipped, nil
}
