package ui

import (
	"github.com/vascocosta/glulands/internal/entity"
	"github.com/vascocosta/glulands/internal/world"
)

// Overlay is a full-screen message drawn over the level.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayMenu
	OverlayPause
	OverlayGameOver
)

// Status is the status bar content.
type Status struct {
	Score     int
	Health    int // clamped at zero
	Keys      int
	Required  int
	Level     int // 1-based
	LevelName string
	Muted     bool
}

// View is everything the renderer draws for one frame. Tiles are indexed
// [y][x] with y growing upward.
type View struct {
	Tiles       [][]world.Tile
	Sprites     []entity.Sprite
	Status      Status
	Overlay     Overlay
	Teleporting bool
}
