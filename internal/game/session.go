package game

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/vascocosta/glulands/internal/audio"
	"github.com/vascocosta/glulands/internal/entity"
	"github.com/vascocosta/glulands/internal/gamedata"
	"github.com/vascocosta/glulands/internal/input"
	"github.com/vascocosta/glulands/internal/interact"
	"github.com/vascocosta/glulands/internal/level"
	"github.com/vascocosta/glulands/internal/movement"
	"github.com/vascocosta/glulands/internal/patrol"
	"github.com/vascocosta/glulands/internal/telemetry"
	"github.com/vascocosta/glulands/internal/ui"
	"github.com/vascocosta/glulands/internal/world"
)

// Session is one run of the game, from the title screen to game over. Tick
// drives it one frame at a time.
type Session struct {
	id     string
	tuning gamedata.Tuning
	source level.Source
	sink   audio.Sink
	music  audio.Music

	resolver   *interact.Resolver
	moveParams movement.Params
	collisions world.Collisions

	mode     Mode
	loaded   bool
	index    int
	level    *level.Data
	reg      *entity.Registry
	stats    entity.Stats
	teleport Teleport
	lastGrid world.GridCoords

	tracer    trace.Tracer
	levels    metric.Int64Counter
	teleports metric.Int64Counter
	gameOvers metric.Int64Counter
}

// NewSession creates a session on the title screen. The first level is loaded
// when the player starts.
func NewSession(id string, t gamedata.Tuning, source level.Source, sink audio.Sink, music audio.Music) *Session {
	if sink == nil {
		sink = audio.Discard
	}
	if music == nil {
		music = audio.NewSilence(false)
	}
	meter := telemetry.Meter("game")

	return &Session{
		id:       id,
		tuning:   t,
		source:   source,
		sink:     sink,
		music:    music,
		resolver: interact.NewResolver(interact.ParamsFromTuning(t)),
		moveParams: movement.Params{
			Speed:           t.PlayerSpeed,
			DiagonalDamping: t.DiagonalDamping,
			Correction:      t.Correction,
			TileSize:        t.GridSize,
		},
		mode:      ModeMenu,
		reg:       entity.NewRegistry(),
		stats:     entity.NewStats(t.MaxHealth, t.HitCooldown),
		teleport:  NewTeleport(t.TeleportDelay),
		tracer:    telemetry.Tracer("game"),
		levels:    telemetry.Counter(meter, "glulands.levels_completed", "Levels completed"),
		teleports: telemetry.Counter(meter, "glulands.teleports", "Portal teleports"),
		gameOvers: telemetry.Counter(meter, "glulands.game_overs", "Runs lost"),
	}
}

// Mode returns the current game mode.
func (s *Session) Mode() Mode { return s.mode }

// Level returns the zero-based level index.
func (s *Session) Level() int { return s.index }

// Stats returns a copy of the player's stats.
func (s *Session) Stats() entity.Stats { return s.stats }

// Registry returns the current level's entity arena.
func (s *Session) Registry() *entity.Registry { return s.reg }

// Collisions returns the current collision map.
func (s *Session) Collisions() *world.CollisionMap { return s.collisions.Map() }

// Tick advances the session by one frame. Only the systems valid for the
// current mode run. A level that fails to load leaves the previous level in
// place and returns the error.
func (s *Session) Tick(ctx context.Context, f input.Frame, dt time.Duration) error {
	if f.Mute {
		s.music.ToggleMute()
	}

	switch s.mode {
	case ModeMenu:
		return s.tickMenu(ctx, f)
	case ModePauseMenu:
		s.tickPause(f)
		return nil
	case ModeRunning:
		return s.tickRunning(ctx, f, dt)
	case ModeTeleporting:
		s.tickTeleporting(ctx, dt)
		return nil
	case ModeGameOver:
		return nil
	default:
		panic(fmt.Sprintf("game: tick in invalid mode %d", s.mode))
	}
}

func (s *Session) tickMenu(ctx context.Context, f input.Frame) error {
	if !f.Toggle {
		return nil
	}
	if !s.loaded {
		if err := s.load(ctx, s.index); err != nil {
			return err
		}
	}
	s.mode = ModeRunning
	s.music.Resume()
	return nil
}

func (s *Session) tickPause(f input.Frame) {
	if !f.Toggle {
		return
	}
	s.mode = ModeRunning
	if s.music.Paused() {
		s.music.Resume()
	}
}

func (s *Session) tickRunning(ctx context.Context, f input.Frame, dt time.Duration) error {
	if f.Toggle {
		s.mode = ModePauseMenu
		if !s.music.Paused() {
			s.music.Pause()
		}
		return nil
	}

	player, hasPlayer := s.reg.PlayerState()
	if hasPlayer {
		player, _ = movement.Resolve(player, f.Held, dt, s.moveParams, &s.collisions)
		s.reg.SetPlayerState(player)

		changed := player.Grid != s.lastGrid
		s.lastGrid = player.Grid

		var res interact.Result
		res.Picked = s.resolver.Items(ctx, s.reg, &s.stats, player.Grid, changed)
		res.LevelComplete = s.resolver.Goal(s.reg, &s.stats, player.Grid, changed, s.index)
		if res.LevelComplete {
			s.play(res.Cues())
			return s.completeLevel(ctx)
		}
		s.play(res.Cues())

		if s.resolver.Portal(s.reg, player.Grid) {
			if _, ok := s.reg.PortalExit(); ok {
				s.teleport.Trigger()
				s.mode = ModeTeleporting
			}
		}
	}

	s.reg.EachCow(func(pos *world.Vec2, route *patrol.Route) {
		*pos = route.Step(*pos, s.tuning.CowSpeed, dt)
	})

	s.stats.Hit.Tick(dt)
	if hasPlayer && s.resolver.Enemies(ctx, s.reg, &s.stats, player.Grid) {
		s.sink.Play(audio.CueHit)
	}

	s.stats.Decay(dt, s.index)
	s.stats.Accrue(s.tuning.PassiveScoreRate, dt)

	if s.stats.Dead() {
		s.gameOver(ctx)
		return nil
	}

	if f.Cheat && s.mode == ModeRunning {
		return s.skipLevel(ctx)
	}
	return nil
}

func (s *Session) tickTeleporting(ctx context.Context, dt time.Duration) {
	if player, ok := s.reg.PlayerState(); ok && s.resolver.Portal(s.reg, player.Grid) {
		s.teleport.Trigger()
	}
	if !s.teleport.Advance(dt) {
		return
	}

	_, span := s.tracer.Start(ctx, "game.teleport")
	defer span.End()

	if exit, ok := s.reg.PortalExit(); ok {
		if player, ok := s.reg.PlayerState(); ok {
			player.Grid = exit
			player.Pos = world.CellCenter(exit, s.tuning.GridSize)
			s.reg.SetPlayerState(player)
			span.SetAttributes(attribute.String("portal.exit", exit.String()))
		}
	}
	s.sink.Play(audio.CueTeleport)
	s.teleports.Add(ctx, 1)
	s.mode = ModeRunning
}

func (s *Session) gameOver(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "game.over")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("level.index", s.index),
		attribute.Int("player.score", int(s.stats.Score)),
	)
	span.End()

	s.mode = ModeGameOver
	s.music.Pause()
	s.sink.Play(audio.CueLost)
	s.gameOvers.Add(ctx, 1)
}

func (s *Session) completeLevel(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "level.complete")
	defer span.End()
	span.SetAttributes(
		attribute.Int("level.index", s.index),
		attribute.Int("player.score", int(s.stats.Score)),
	)

	if err := s.load(ctx, s.index+1); err != nil {
		span.RecordError(err)
		return err
	}
	s.levels.Add(ctx, 1)
	return nil
}

func (s *Session) skipLevel(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "level.skip")
	defer span.End()
	span.SetAttributes(attribute.Int("level.index", s.index))
	return s.load(ctx, s.index+1)
}

// load builds every per-level structure aside and swaps them in together.
func (s *Session) load(ctx context.Context, index int) error {
	d, err := s.source.Load(ctx, index)
	if err != nil {
		return err
	}

	reg := populate(d, s.tuning)
	collisions := world.NewCollisionMap(d.Blocked, d.Width, d.Height)

	s.collisions.Install(collisions)
	s.reg = reg
	s.level = d
	s.index = index
	s.loaded = true
	s.teleport.Reset()
	if player, ok := reg.PlayerState(); ok {
		s.lastGrid = player.Grid
	}
	return nil
}

// Status returns the status bar content.
func (s *Session) Status() ui.Status {
	st := ui.Status{
		Score:    int(s.stats.Score),
		Health:   s.stats.DisplayHealth(),
		Keys:     s.stats.Keys,
		Required: entity.RequiredKeys(s.index),
		Level:    s.index + 1,
		Muted:    s.music.Muted(),
	}
	if s.level != nil {
		st.LevelName = s.level.Name
	}
	return st
}

// View returns everything the renderer needs for the current frame.
func (s *Session) View() ui.View {
	v := ui.View{
		Status:      s.Status(),
		Teleporting: s.mode == ModeTeleporting,
	}
	if s.level != nil {
		v.Tiles = s.level.Tiles
		v.Sprites = s.reg.Sprites(s.tuning.GridSize)
	}

	switch s.mode {
	case ModeMenu:
		v.Overlay = ui.OverlayMenu
	case ModePauseMenu:
		v.Overlay = ui.OverlayPause
	case ModeGameOver:
		v.Overlay = ui.OverlayGameOver
	}
	return v
}

func (s *Session) play(cues []audio.Cue) {
	for _, c := range cues {
		s.sink.Play(c)
	}
}
