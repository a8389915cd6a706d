package game

import (
	"github.com/vascocosta/glulands/internal/entity"
	"github.com/vascocosta/glulands/internal/gamedata"
	"github.com/vascocosta/glulands/internal/level"
	"github.com/vascocosta/glulands/internal/patrol"
	"github.com/vascocosta/glulands/internal/world"
)

// cowAnchor is where a cow stands on a cell. It is lifted off the cell's foot
// by half the unused height so the tilted sweep and its one-step overshoot
// stay inside the row.
func cowAnchor(g world.GridCoords, t gamedata.Tuning) world.Vec2 {
	p := world.CellFoot(g, t.GridSize)
	p.Y += (float64(t.GridSize) - t.PatrolPivotOffset) / 2
	return p
}

// populate builds a fresh entity arena for a level.
func populate(d *level.Data, t gamedata.Tuning) *entity.Registry {
	reg := entity.NewRegistry()

	for _, s := range d.Spawns {
		switch s.Kind {
		case entity.KindPlayer:
			reg.SpawnPlayer(world.CellCenter(s.At, t.GridSize), s.At)

		case entity.KindCow:
			start := cowAnchor(s.At, t)
			points := []world.Vec2{start}
			for _, off := range s.Patrol {
				points = append(points, cowAnchor(s.At.Add(off.X, off.Y), t))
			}
			reg.SpawnCow(start, patrol.NewRoute(points, t.PatrolPivotOffset))

		case entity.KindKey, entity.KindCarrot, entity.KindBronze:
			reg.SpawnItem(s.Kind, s.At)

		default:
			reg.SpawnFixture(s.Kind, s.At)
		}
	}
	return reg
}
