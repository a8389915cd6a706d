package entity

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/vascocosta/glulands/internal/movement"
	"github.com/vascocosta/glulands/internal/patrol"
	"github.com/vascocosta/glulands/internal/world"
)

var (
	cowQuery  = donburi.NewQuery(filter.Contains(Route, Position))
	gridQuery = donburi.NewQuery(filter.Contains(Tag, Grid))
)

// Item is a collectible found at a grid coordinate.
type Item struct {
	Entity donburi.Entity
	Kind   Kind
}

// Sprite is what the renderer needs to draw one entity.
type Sprite struct {
	Kind   Kind
	Grid   world.GridCoords
	Facing movement.Facing
}

// Registry is the entity arena for one level. The player, the portal pair and
// the goal live in optional single slots.
type Registry struct {
	w donburi.World

	player      Slot[donburi.Entity]
	portalEntry Slot[donburi.Entity]
	portalExit  Slot[donburi.Entity]
	goal        Slot[donburi.Entity]
}

// NewRegistry creates an empty arena.
func NewRegistry() *Registry {
	return &Registry{w: donburi.NewWorld()}
}

func (r *Registry) spawn(kind Kind, g world.GridCoords, extra ...donburi.IComponentType) *donburi.Entry {
	comps := append([]donburi.IComponentType{Tag, Grid}, extra...)
	entry := r.w.Entry(r.w.Create(comps...))
	*Tag.Get(entry) = kind
	*Grid.Get(entry) = g
	return entry
}

// SpawnPlayer places the player. A second call replaces the first player.
func (r *Registry) SpawnPlayer(pos world.Vec2, g world.GridCoords) donburi.Entity {
	if old, ok := r.player.Get(); ok && r.w.Valid(old) {
		r.w.Remove(old)
	}
	entry := r.spawn(KindPlayer, g, Position, Facing)
	*Position.Get(entry) = pos
	r.player.Set(entry.Entity())
	return entry.Entity()
}

// SpawnCow places an enemy with its patrol route.
func (r *Registry) SpawnCow(pos world.Vec2, route patrol.Route) donburi.Entity {
	entry := r.spawn(KindCow, world.GridCoords{}, Position, Route)
	*Position.Get(entry) = pos
	*Route.Get(entry) = route
	return entry.Entity()
}

// SpawnItem places a key, carrot or bronze.
func (r *Registry) SpawnItem(kind Kind, g world.GridCoords) donburi.Entity {
	return r.spawn(kind, g).Entity()
}

// SpawnFixture places a portal end or the goal and fills its slot.
func (r *Registry) SpawnFixture(kind Kind, g world.GridCoords) donburi.Entity {
	e := r.spawn(kind, g).Entity()
	switch kind {
	case KindPortalEntry:
		r.portalEntry.Set(e)
	case KindPortalExit:
		r.portalExit.Set(e)
	case KindGoal:
		r.goal.Set(e)
	}
	return e
}

func (r *Registry) live(s *Slot[donburi.Entity]) (*donburi.Entry, bool) {
	e, ok := s.Get()
	if !ok || !r.w.Valid(e) {
		return nil, false
	}
	return r.w.Entry(e), true
}

// Player returns the player's entry, if there is one.
func (r *Registry) Player() (*donburi.Entry, bool) {
	return r.live(&r.player)
}

// PlayerState reads the player's movement state.
func (r *Registry) PlayerState() (movement.State, bool) {
	entry, ok := r.Player()
	if !ok {
		return movement.State{}, false
	}
	return movement.State{
		Pos:    *Position.Get(entry),
		Grid:   *Grid.Get(entry),
		Facing: *Facing.Get(entry),
	}, true
}

// SetPlayerState writes the player's movement state back. It is a no-op
// without a player.
func (r *Registry) SetPlayerState(s movement.State) {
	entry, ok := r.Player()
	if !ok {
		return
	}
	*Position.Get(entry) = s.Pos
	*Grid.Get(entry) = s.Grid
	*Facing.Get(entry) = s.Facing
}

func (r *Registry) fixture(s *Slot[donburi.Entity]) (world.GridCoords, bool) {
	entry, ok := r.live(s)
	if !ok {
		return world.GridCoords{}, false
	}
	return *Grid.Get(entry), true
}

// PortalEntry returns the portal entry coordinate.
func (r *Registry) PortalEntry() (world.GridCoords, bool) { return r.fixture(&r.portalEntry) }

// PortalExit returns the portal exit coordinate.
func (r *Registry) PortalExit() (world.GridCoords, bool) { return r.fixture(&r.portalExit) }

// Goal returns the goal coordinate.
func (r *Registry) Goal() (world.GridCoords, bool) { return r.fixture(&r.goal) }

// ItemsAt returns every live item on g.
func (r *Registry) ItemsAt(g world.GridCoords) []Item {
	var items []Item
	gridQuery.Each(r.w, func(entry *donburi.Entry) {
		kind := *Tag.Get(entry)
		if kind.IsItem() && *Grid.Get(entry) == g {
			items = append(items, Item{Entity: entry.Entity(), Kind: kind})
		}
	})
	return items
}

// EachCow calls fn with a pointer to every cow's position and route.
func (r *Registry) EachCow(fn func(pos *world.Vec2, route *patrol.Route)) {
	cowQuery.Each(r.w, func(entry *donburi.Entry) {
		fn(Position.Get(entry), Route.Get(entry))
	})
}

// CowPositions returns the continuous position of every cow.
func (r *Registry) CowPositions() []world.Vec2 {
	var out []world.Vec2
	r.EachCow(func(pos *world.Vec2, _ *patrol.Route) {
		out = append(out, *pos)
	})
	return out
}

// Remove destroys an entity. Removing an entity twice is a no-op.
func (r *Registry) Remove(e donburi.Entity) {
	if r.w.Valid(e) {
		r.w.Remove(e)
	}
}

// Count returns the number of live entities.
func (r *Registry) Count() int {
	return r.w.Len()
}

// CountKind returns the number of live entities of one kind.
func (r *Registry) CountKind(kind Kind) int {
	n := 0
	gridQuery.Each(r.w, func(entry *donburi.Entry) {
		if *Tag.Get(entry) == kind {
			n++
		}
	})
	return n
}

// Sprites returns every entity as the renderer sees it. Cows report the cell
// their position quantizes into.
func (r *Registry) Sprites(tileSize int) []Sprite {
	var out []Sprite
	gridQuery.Each(r.w, func(entry *donburi.Entry) {
		s := Sprite{Kind: *Tag.Get(entry), Grid: *Grid.Get(entry)}
		if entry.HasComponent(Position) && s.Kind == KindCow {
			s.Grid = world.ToGrid(*Position.Get(entry), tileSize)
		}
		if entry.HasComponent(Facing) {
			s.Facing = *Facing.Get(entry)
		}
		out = append(out, s)
	})
	return out
}
