// Package movement resolves player motion against the collision map.
package movement

import (
	"time"

	"github.com/vascocosta/glulands/internal/world"
)

// Direction is a set of held directional inputs.
type Direction uint8

const (
	Up Direction = 1 << iota
	Down
	Left
	Right
)

// Has reports whether every direction in d2 is held in d.
func (d Direction) Has(d2 Direction) bool {
	return d&d2 == d2
}

// Facing selects the player sprite.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns a human-readable facing name.
func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Params are the tuning constants of the resolver.
type Params struct {
	Speed           float64 // pixels per second
	DiagonalDamping float64 // per-axis factor when both axes move
	Correction      float64 // pixel bias toward travel before quantizing
	TileSize        int
}

// State is the player's position as seen by the resolver.
type State struct {
	Pos    world.Vec2
	Grid   world.GridCoords
	Facing Facing
}

// Blocker answers collision queries.
type Blocker interface {
	IsBlocked(world.GridCoords) bool
}

// Intent is the per-frame motion derived from held keys.
type Intent struct {
	Vector     world.Vec2 // unit per axis, damped on diagonals
	Correction world.Vec2
	Facing     Facing
	HasFacing  bool
}

// Moving reports whether the intent displaces the player.
func (i Intent) Moving() bool {
	return i.Vector != (world.Vec2{})
}

// Derive turns held keys into a motion intent. Opposing keys on one axis cancel.
// Facing follows the last held direction in the order left, right, up, down.
func Derive(held Direction, p Params) Intent {
	var in Intent

	if held.Has(Left) {
		in.Facing, in.HasFacing = FacingLeft, true
	}
	if held.Has(Right) {
		in.Facing, in.HasFacing = FacingRight, true
	}
	if held.Has(Up) {
		in.Facing, in.HasFacing = FacingUp, true
	}
	if held.Has(Down) {
		in.Facing, in.HasFacing = FacingDown, true
	}

	switch {
	case held.Has(Left) && !held.Has(Right):
		in.Vector.X, in.Correction.X = -1, -p.Correction
	case held.Has(Right) && !held.Has(Left):
		in.Vector.X, in.Correction.X = 1, p.Correction
	}
	switch {
	case held.Has(Up) && !held.Has(Down):
		in.Vector.Y, in.Correction.Y = 1, p.Correction
	case held.Has(Down) && !held.Has(Up):
		in.Vector.Y, in.Correction.Y = -1, -p.Correction
	}

	if in.Vector.X != 0 && in.Vector.Y != 0 {
		in.Vector = in.Vector.Scale(p.DiagonalDamping)
	}

	return in
}

// Resolve computes one frame of player motion. A move into a blocked tile is
// rejected whole: position and grid coordinate stay as they were. Facing is
// updated either way. The second result reports whether a move was committed.
func Resolve(s State, held Direction, dt time.Duration, p Params, blocker Blocker) (State, bool) {
	in := Derive(held, p)
	if in.HasFacing {
		s.Facing = in.Facing
	}
	if !in.Moving() {
		return s, true
	}

	candidate := s.Pos.Add(in.Vector.Scale(p.Speed * dt.Seconds()))
	candidateGrid := world.ToGrid(candidate.Add(in.Correction), p.TileSize)

	if blocker.IsBlocked(candidateGrid) {
		return s, false
	}

	s.Pos = candidate
	s.Grid = candidateGrid
	return s, true
}
