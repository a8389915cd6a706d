package entity

import (
	"github.com/yohamta/donburi"

	"github.com/vascocosta/glulands/internal/movement"
	"github.com/vascocosta/glulands/internal/patrol"
	"github.com/vascocosta/glulands/internal/world"
)

// Component tables. Every entity has a Tag; the rest depend on the kind.
var (
	Tag      = donburi.NewComponentType[Kind]()
	Grid     = donburi.NewComponentType[world.GridCoords]()
	Position = donburi.NewComponentType[world.Vec2]() // player and cows
	Facing   = donburi.NewComponentType[movement.Facing]()
	Route    = donburi.NewComponentType[patrol.Route]()
)
