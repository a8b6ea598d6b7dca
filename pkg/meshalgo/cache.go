package meshalgo

import (
	"sync"

	"github.com/Faultbox/meshresample/pkg/mesh"
	"github.com/Faultbox/meshresample/pkg/primvar"
)

// MappingCache memoizes fan-in maps per topology, for hosts that resample
// many variables on the same mesh. It is safe for concurrent use.
//
// Entries are keyed by topology pointer. A host that rebuilds a mesh must
// Invalidate the old topology or it will be kept alive by the cache.
type MappingCache struct {
	mu      sync.Mutex
	entries map[*mesh.Topology]*[numPositions][numPositions]*FanIn
}

// NewMappingCache returns an empty cache.
func NewMappingCache() *MappingCache {
	return &MappingCache{entries: make(map[*mesh.Topology]*[numPositions][numPositions]*FanIn)}
}

// FanIn returns the cached fan-in map from src to dst on t, building it on
// first use. hit reports whether the map was already cached.
func (c *MappingCache) FanIn(t *mesh.Topology, src, dst primvar.Interpolation) (f *FanIn, hit bool, err error) {
	from, err := positionOf(src)
	if err != nil {
		return nil, false, err
	}
	to, err := positionOf(dst)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = make(map[*mesh.Topology]*[numPositions][numPositions]*FanIn)
	}
	table, ok := c.entries[t]
	if !ok {
		table = new([numPositions][numPositions]*FanIn)
		c.entries[t] = table
	}
	if f := table[from][to]; f != nil {
		return f, true, nil
	}

	f = strategies[from][to](t)
	table[from][to] = f
	return f, false, nil
}

// Invalidate drops every map cached for t.
func (c *MappingCache) Invalidate(t *mesh.Topology) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, t)
}

// Reset drops every cached map.
func (c *MappingCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of topologies with cached maps.
func (c *MappingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
