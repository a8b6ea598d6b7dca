package meshalgo

// FanIn lists, for every target element, the source elements that
// contribute to it. Lists are stored back to back: the sources of target i
// are sources[offsets[i]:offsets[i+1]]. A FanIn is immutable once built.
type FanIn struct {
	offsets []int
	sources []int
}

func newFanIn(targets, capacity int) *FanIn {
	offsets := make([]int, 1, targets+1)
	return &FanIn{offsets: offsets, sources: make([]int, 0, capacity)}
}

// push appends the contributor list of the next target.
func (f *FanIn) push(sources ...int) {
	f.sources = append(f.sources, sources...)
	f.offsets = append(f.offsets, len(f.sources))
}

// Len returns the number of target elements.
func (f *FanIn) Len() int {
	return len(f.offsets) - 1
}

// Sources returns the contributors of target i, repeats included.
// Callers must not modify the result.
func (f *FanIn) Sources(i int) []int {
	start, end := f.offsets[i], f.offsets[i+1]
	return f.sources[start:end:end]
}

// Width returns the number of contributors of target i.
func (f *FanIn) Width(i int) int {
	return f.offsets[i+1] - f.offsets[i]
}

// IsGather reports whether no target has more than one contributor, in
// which case resampling is a plain copy.
func (f *FanIn) IsGather() bool {
	for i := range f.Len() {
		if f.Width(i) > 1 {
			return false
		}
	}
	return true
}

// Gather returns the single contributor of every target, or -1 for
// targets with none. Only meaningful when IsGather is true.
func (f *FanIn) Gather() []int {
	out := make([]int, f.Len())
	for i := range out {
		out[i] = -1
		if f.Width(i) > 0 {
			out[i] = f.sources[f.offsets[i]]
		}
	}
	return out
}

// Resolve returns a FanIn with every source s replaced by indices[s].
func (f *FanIn) Resolve(indices []int) *FanIn {
	sources := make([]int, len(f.sources))
	for i, s := range f.sources {
		sources[i] = indices[s]
	}
	return &FanIn{offsets: f.offsets, sources: sources}
}

// SharedIndices resolves every target's contributors through indices and
// reports whether each target's contributors all agree on one index. If
// so it returns that index per target. Targets without contributors have
// no index to share, so their presence yields false.
func (f *FanIn) SharedIndices(indices []int) ([]int, bool) {
	out := make([]int, f.Len())
	for i := range out {
		sources := f.Sources(i)
		if len(sources) == 0 {
			return nil, false
		}
		idx := indices[sources[0]]
		for _, s := range sources[1:] {
			if indices[s] != idx {
				return nil, false
			}
		}
		out[i] = idx
	}
	return out, true
}
