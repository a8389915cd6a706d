package world

import (
	"sync/atomic"

	"github.com/zyedidia/generic/mapset"
)

// CollisionMap is the immutable set of blocked tiles for one level.
// Every coordinate outside [0,width) x [0,height) is blocked.
type CollisionMap struct {
	blocked mapset.Set[GridCoords]
	width   int
	height  int
}

// NewCollisionMap builds a collision map from obstacle cells and level size in tiles.
func NewCollisionMap(cells []GridCoords, width, height int) *CollisionMap {
	blocked := mapset.New[GridCoords]()
	for _, c := range cells {
		blocked.Put(c)
	}
	return &CollisionMap{
		blocked: blocked,
		width:   width,
		height:  height,
	}
}

// IsBlocked reports whether a tile cannot be entered.
func (m *CollisionMap) IsBlocked(c GridCoords) bool {
	return !m.InBounds(c) || m.blocked.Has(c)
}

// InBounds reports whether a tile lies inside the level rectangle.
func (m *CollisionMap) InBounds(c GridCoords) bool {
	if m == nil {
		return false
	}
	return c.X >= 0 && c.Y >= 0 && c.X < m.width && c.Y < m.height
}

// Width returns the level width in tiles.
func (m *CollisionMap) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

// Height returns the level height in tiles.
func (m *CollisionMap) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Obstacles returns the number of blocked cells stored in the set.
func (m *CollisionMap) Obstacles() int {
	if m == nil {
		return 0
	}
	return m.blocked.Size()
}

// Collisions holds the collision map of the current level.
// Rebuild swaps the whole map in one step so readers never see a partial level.
type Collisions struct {
	current atomic.Pointer[CollisionMap]
}

// Rebuild replaces the current map with one built from the given cells.
func (c *Collisions) Rebuild(cells []GridCoords, width, height int) {
	c.current.Store(NewCollisionMap(cells, width, height))
}

// Install replaces the current map with an already built one.
func (c *Collisions) Install(m *CollisionMap) {
	c.current.Store(m)
}

// Map returns the current map. Before the first rebuild it is nil and blocks everything.
func (c *Collisions) Map() *CollisionMap {
	return c.current.Load()
}

// IsBlocked queries the current map.
func (c *Collisions) IsBlocked(g GridCoords) bool {
	return c.current.Load().IsBlocked(g)
}
