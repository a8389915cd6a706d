package world

import (
	"fmt"
	"math"
)

// GridCoords is an integer tile address. Y grows upward: row 0 is the bottom of the level.
type GridCoords struct {
	X, Y int
}

// Add returns the coordinate offset by the given delta.
func (g GridCoords) Add(dx, dy int) GridCoords {
	return GridCoords{X: g.X + dx, Y: g.Y + dy}
}

// String implements fmt.Stringer.
func (g GridCoords) String() string {
	return fmt.Sprintf("(%d,%d)", g.X, g.Y)
}

// Vec2 is a continuous position or direction in world pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length, or the zero vector if v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// ToGrid quantizes a continuous position into the tile containing it.
// Floor is used so positions left of or below the origin land outside the level.
func ToGrid(p Vec2, tileSize int) GridCoords {
	size := float64(tileSize)
	return GridCoords{
		X: int(math.Floor(p.X / size)),
		Y: int(math.Floor(p.Y / size)),
	}
}

// CellCenter returns the continuous position at the center of a tile.
func CellCenter(g GridCoords, tileSize int) Vec2 {
	size := float64(tileSize)
	return Vec2{
		X: (float64(g.X) + 0.5) * size,
		Y: (float64(g.Y) + 0.5) * size,
	}
}

// CellFoot returns the bottom-center point of a tile, the anchor of standing sprites.
func CellFoot(g GridCoords, tileSize int) Vec2 {
	size := float64(tileSize)
	return Vec2{
		X: (float64(g.X) + 0.5) * size,
		Y: float64(g.Y) * size,
	}
}
