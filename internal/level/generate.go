package level

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vascocosta/glulands/internal/entity"
	"github.com/vascocosta/glulands/internal/telemetry"
	"github.com/vascocosta/glulands/internal/world"
)

const (
	generatedCarrots = 2
	generatedBronze  = 3
)

// placer hands out free cells inside the rooms of a layout.
type placer struct {
	layout   *world.Layout
	occupied mapset.Set[world.GridCoords]
	spawns   []Spawn
}

func (p *placer) place(kind entity.Kind, room int) (world.GridCoords, bool) {
	c, ok := p.layout.RandomPointInRoom(room, p.occupied.Has)
	if !ok || p.occupied.Has(c) {
		return world.GridCoords{}, false
	}
	p.occupied.Put(c)
	p.spawns = append(p.spawns, Spawn{Kind: kind, At: c})
	return c, true
}

// placeAnywhere tries every room starting at first.
func (p *placer) placeAnywhere(kind entity.Kind, first int) bool {
	rooms := len(p.layout.Rooms)
	for i := 0; i < rooms; i++ {
		if _, ok := p.place(kind, (first+i)%rooms); ok {
			return true
		}
	}
	return false
}

// Generate builds a level from a seeded room-and-corridor layout. The same
// index and seed always produce the same level.
func Generate(ctx context.Context, index int, seed int64) (*Data, error) {
	ctx, span := telemetry.Tracer("level").Start(ctx, "level.generate")
	defer span.End()

	layout := world.NewLayout(world.DefaultWidth, world.DefaultHeight, rand.New(rand.NewSource(seed+int64(index))))
	layout.Generate(ctx)

	rooms := len(layout.Rooms)
	if rooms < 2 {
		return nil, fmt.Errorf("%w: generated layout %d has %d rooms", ErrMalformedLevel, index, rooms)
	}

	p := &placer{layout: layout, occupied: mapset.New[world.GridCoords]()}
	last := rooms - 1

	if _, ok := p.place(entity.KindPlayer, 0); !ok {
		return nil, fmt.Errorf("%w: no room for the player", ErrMalformedLevel)
	}
	if !p.placeAnywhere(entity.KindGoal, last) {
		return nil, fmt.Errorf("%w: no room for the goal", ErrMalformedLevel)
	}
	for i := 0; i < entity.RequiredKeys(index); i++ {
		if !p.placeAnywhere(entity.KindKey, 1+i%last) {
			return nil, fmt.Errorf("%w: no room for key %d", ErrMalformedLevel, i+1)
		}
	}

	// Cows walk the width of a room, never the player's.
	cows := min(index+1, last)
	for i := 0; i < cows; i++ {
		room := layout.Rooms[1+i]
		c, ok := p.place(entity.KindCow, 1+i)
		if !ok {
			continue
		}
		dx := room.X + room.Width - 1 - c.X
		if dx == 0 {
			dx = room.X - c.X
		}
		if dx != 0 {
			p.spawns[len(p.spawns)-1].Patrol = []world.GridCoords{{X: dx, Y: 0}}
		}
	}

	for i := 0; i < generatedCarrots; i++ {
		p.placeAnywhere(entity.KindCarrot, layout.Intn(rooms))
	}
	for i := 0; i < generatedBronze; i++ {
		p.placeAnywhere(entity.KindBronze, layout.Intn(rooms))
	}
	if rooms >= 3 {
		if _, ok := p.place(entity.KindPortalEntry, 0); ok {
			p.place(entity.KindPortalExit, rooms/2)
		}
	}

	d := &Data{
		Name:       fmt.Sprintf("Wilds %d", index+1),
		Index:      index,
		Width:      layout.Width,
		Height:     layout.Height,
		Tiles:      layout.Tiles,
		Blocked:    layout.Blocked(),
		Spawns:     p.spawns,
		Procedural: true,
	}

	span.SetAttributes(
		attribute.Int("level.index", index),
		attribute.Int("level.rooms", rooms),
		attribute.Int("level.spawns", len(d.Spawns)),
	)

	if err := d.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return d, nil
}
