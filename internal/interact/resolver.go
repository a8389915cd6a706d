// Package interact resolves contact between the player and everything else on
// the level: items, cows, the goal and the portal entry.
package interact

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/vascocosta/glulands/internal/audio"
	"github.com/vascocosta/glulands/internal/entity"
	"github.com/vascocosta/glulands/internal/gamedata"
	"github.com/vascocosta/glulands/internal/telemetry"
	"github.com/vascocosta/glulands/internal/world"
)

// Params are the stat effects of each interaction.
type Params struct {
	TileSize     int
	CarrotHealth float64
	BronzeScore  float64
	CowHealthHit float64
	CowScoreHit  float64
}

// ParamsFromTuning extracts the interaction effects from the tuning data.
func ParamsFromTuning(t gamedata.Tuning) Params {
	return Params{
		TileSize:     t.GridSize,
		CarrotHealth: t.CarrotHealth,
		BronzeScore:  t.BronzeScore,
		CowHealthHit: t.CowHealthHit,
		CowScoreHit:  t.CowScoreHit,
	}
}

// Result is what one frame of interaction checks produced.
type Result struct {
	Picked        []entity.Kind // one entry per collected item
	Hit           bool
	LevelComplete bool
	EnterPortal   bool
}

// Cues returns the sound events the result should fire, in order.
func (r Result) Cues() []audio.Cue {
	var cues []audio.Cue
	for range r.Picked {
		cues = append(cues, audio.CuePickup)
	}
	if r.Hit {
		cues = append(cues, audio.CueHit)
	}
	if r.LevelComplete {
		cues = append(cues, audio.CueLevelComplete)
	}
	return cues
}

// Resolver applies interaction effects to the player's stats.
type Resolver struct {
	params  Params
	pickups metric.Int64Counter
	hits    metric.Int64Counter
}

// NewResolver creates a resolver that records on the global meter provider.
func NewResolver(params Params) *Resolver {
	return NewResolverWithMeter(params, telemetry.Meter("interact"))
}

// NewResolverWithMeter creates a resolver that records on the given meter.
func NewResolverWithMeter(params Params, meter metric.Meter) *Resolver {
	return &Resolver{
		params:  params,
		pickups: telemetry.Counter(meter, "glulands.pickups", "Items collected"),
		hits:    telemetry.Counter(meter, "glulands.enemy_hits", "Enemy hits taken"),
	}
}

// Items collects every item on the player's cell when the cell changed this
// frame. All matching items are collected, then removed.
func (r *Resolver) Items(ctx context.Context, reg *entity.Registry, stats *entity.Stats, grid world.GridCoords, changed bool) []entity.Kind {
	if !changed {
		return nil
	}

	items := reg.ItemsAt(grid)
	picked := make([]entity.Kind, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case entity.KindKey:
			stats.Keys++
		case entity.KindCarrot:
			stats.Heal(r.params.CarrotHealth)
		case entity.KindBronze:
			stats.Score += r.params.BronzeScore
		default:
			continue
		}
		picked = append(picked, it.Kind)
		r.pickups.Add(ctx, 1, metric.WithAttributes(attribute.String("item", it.Kind.String())))
	}
	for _, it := range items {
		reg.Remove(it.Entity)
	}
	return picked
}

// Enemies checks every cow against the player's cell. Contact is checked every
// frame; the shared hit cooldown limits damage to one hit per window.
func (r *Resolver) Enemies(ctx context.Context, reg *entity.Registry, stats *entity.Stats, grid world.GridCoords) bool {
	for _, pos := range reg.CowPositions() {
		if world.ToGrid(pos, r.params.TileSize) != grid {
			continue
		}
		if stats.TryHit(r.params.CowHealthHit, r.params.CowScoreHit) {
			r.hits.Add(ctx, 1)
			return true
		}
	}
	return false
}

// Goal reports whether the player completed the level: the cell changed onto
// the goal and the player holds exactly the keys the level requires. On success
// keys are spent and health is restored; the caller advances the level.
func (r *Resolver) Goal(reg *entity.Registry, stats *entity.Stats, grid world.GridCoords, changed bool, level int) bool {
	if !changed {
		return false
	}
	goal, ok := reg.Goal()
	if !ok || goal != grid {
		return false
	}
	if stats.Keys != entity.RequiredKeys(level) {
		return false
	}
	stats.Restore()
	return true
}

// Portal reports whether the player stands on the portal entry.
func (r *Resolver) Portal(reg *entity.Registry, grid world.GridCoords) bool {
	entry, ok := reg.PortalEntry()
	return ok && entry == grid
}
