// Package level turns authored or generated maps into the data a level is
// built from: its tiles, blocked cells and entity spawns.
package level

import (
	"errors"
	"fmt"

	"github.com/vascocosta/glulands/internal/entity"
	"github.com/vascocosta/glulands/internal/world"
)

var (
	// ErrLevelNotFound is returned for a negative level index.
	ErrLevelNotFound = errors.New("level not found")
	// ErrMalformedLevel wraps every validation failure.
	ErrMalformedLevel = errors.New("malformed level")
)

// Spawn is one entity placement.
type Spawn struct {
	Kind   entity.Kind
	At     world.GridCoords
	Patrol []world.GridCoords // cows only: waypoint offsets in tiles, +y up
}

// Data is a fully parsed level. Tiles are indexed [y][x] with y growing upward,
// matching grid coordinates.
type Data struct {
	Name       string
	Index      int
	Width      int
	Height     int
	Tiles      [][]world.Tile
	Blocked    []world.GridCoords
	Spawns     []Spawn
	Procedural bool
}

// TileAt returns the tile at g, or a wall outside the level.
func (d *Data) TileAt(g world.GridCoords) world.Tile {
	if g.X < 0 || g.Y < 0 || g.X >= d.Width || g.Y >= d.Height {
		return world.TileWall
	}
	return d.Tiles[g.Y][g.X]
}

// Count returns how many spawns of a kind the level has.
func (d *Data) Count(kind entity.Kind) int {
	n := 0
	for _, s := range d.Spawns {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Validate checks the invariants a Session relies on.
func (d *Data) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %q has size %dx%d", ErrMalformedLevel, d.Name, d.Width, d.Height)
	}
	if len(d.Tiles) != d.Height {
		return fmt.Errorf("%w: %q has %d tile rows, want %d", ErrMalformedLevel, d.Name, len(d.Tiles), d.Height)
	}
	for y, row := range d.Tiles {
		if len(row) != d.Width {
			return fmt.Errorf("%w: %q row %d has width %d, want %d", ErrMalformedLevel, d.Name, y, len(row), d.Width)
		}
	}

	if n := d.Count(entity.KindPlayer); n != 1 {
		return fmt.Errorf("%w: %q has %d player spawns, want 1", ErrMalformedLevel, d.Name, n)
	}
	for _, kind := range []entity.Kind{entity.KindPortalEntry, entity.KindPortalExit, entity.KindGoal} {
		if n := d.Count(kind); n > 1 {
			return fmt.Errorf("%w: %q has %d %v spawns, want at most 1", ErrMalformedLevel, d.Name, n, kind)
		}
	}

	for _, s := range d.Spawns {
		if !d.TileAt(s.At).IsPassable() {
			return fmt.Errorf("%w: %q places %v on blocked cell %v", ErrMalformedLevel, d.Name, s.Kind, s.At)
		}
		if s.Kind != entity.KindCow && len(s.Patrol) > 0 {
			return fmt.Errorf("%w: %q gives a patrol to %v at %v", ErrMalformedLevel, d.Name, s.Kind, s.At)
		}
	}
	return nil
}

// blockedCells lists every impassable tile.
func blockedCells(tiles [][]world.Tile) []world.GridCoords {
	var cells []world.GridCoords
	for y, row := range tiles {
		for x, t := range row {
			if !t.IsPassable() {
				cells = append(cells, world.GridCoords{X: x, Y: y})
			}
		}
	}
	return cells
}
