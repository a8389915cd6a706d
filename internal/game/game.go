package game

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vascocosta/glulands/internal/audio"
	"github.com/vascocosta/glulands/internal/gamedata"
	"github.com/vascocosta/glulands/internal/input"
	"github.com/vascocosta/glulands/internal/level"
	"github.com/vascocosta/glulands/internal/telemetry"
	"github.com/vascocosta/glulands/internal/ui"
)

// maxFrame caps the simulated time of a single tick after a stall.
const maxFrame = 100 * time.Millisecond

// Game runs sessions in the terminal.
type Game struct {
	cfg       Config
	tuning    gamedata.Tuning
	source    level.Source
	sink      audio.Sink
	music     audio.Music
	sessionID string

	screen   *ui.Screen
	renderer *ui.Renderer
	tracker  *input.Tracker
	session  *Session
	runs     int

	tickErrors int
}

// New creates a new game instance on the terminal.
func New(cfg Config, t gamedata.Tuning, source level.Source, sink audio.Sink, music audio.Music, sessionID string) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(cfg, t, source, sink, music, sessionID, screen), nil
}

func newGame(cfg Config, t gamedata.Tuning, source level.Source, sink audio.Sink, music audio.Music, sessionID string, screen *ui.Screen) *Game {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultConfig().FPS
	}

	g := &Game{
		cfg:       cfg,
		tuning:    t,
		source:    source,
		sink:      sink,
		music:     music,
		sessionID: sessionID,
		screen:    screen,
		renderer:  ui.NewRenderer(screen, t.Palette),
		tracker:   input.NewTracker(0, 0),
	}
	g.newSession()
	return g
}

func (g *Game) newSession() {
	g.runs++
	g.session = NewSession(g.sessionID, g.tuning, g.source, g.sink, g.music)
	g.tracker.Release()
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("game.fps", g.cfg.FPS),
		attribute.Int64("game.seed", g.cfg.Seed),
	)
	initSpan.End()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FPS))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok || g.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last), maxFrame)
			last = now

			g.step(ctx, now, dt)
		}
	}
}

// step advances the session one tick and redraws. A failed tick keeps the
// current level, so the error is logged and play goes on.
func (g *Game) step(ctx context.Context, now time.Time, dt time.Duration) {
	if err := g.session.Tick(ctx, g.tracker.Frame(now), dt); err != nil {
		g.tickErrors++
		log.Printf("session %s: tick: %v", g.sessionID, err)
	}
	g.renderer.Render(g.session.View())
}

// pollEvents forwards terminal events until the screen closes or Run returns.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a terminal event and reports whether to quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch action := input.Map(ev); action {
		case input.ActionQuit:
			return true
		case input.ActionRestart:
			if g.session.Mode() == ModeGameOver {
				log.Printf("session %s: starting run %d", g.sessionID, g.runs+1)
				g.newSession()
			}
		default:
			g.tracker.Press(action, time.Now())
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return false
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
