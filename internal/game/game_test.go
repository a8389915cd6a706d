package game

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vascocosta/glulands/internal/audio"
	"github.com/vascocosta/glulands/internal/gamedata"
	"github.com/vascocosta/glulands/internal/input"
	"github.com/vascocosta/glulands/internal/level"
	"github.com/vascocosta/glulands/internal/ui"
)

func newTestGame(t *testing.T, levels map[int]*level.Data) *Game {
	t.Helper()
	screen, err := ui.Wrap(tcell.NewSimulationScreen("UTF-8"))
	if err != nil {
		t.Fatalf("Wrap() error: %v", err)
	}
	g := newGame(DefaultConfig(), gamedata.DefaultTuning(), &fakeSource{levels: levels},
		audio.Discard, audio.NewSilence(false), "test", screen)
	t.Cleanup(g.Close)
	return g
}

func TestGameStepSurvivesFailedLoad(t *testing.T) {
	g := newTestGame(t, map[int]*level.Data{0: mustParse(t, 0, "####\n#P.#\n####\n")})
	ctx := context.Background()
	now := time.Now()

	g.tracker.Press(input.ActionToggle, now)
	g.step(ctx, now, frame)
	if g.session.Mode() != ModeRunning {
		t.Fatalf("mode after start = %v, want running", g.session.Mode())
	}

	// There is no level 1, so the skip fails.
	now = now.Add(frame)
	g.tracker.Press(input.ActionCheat, now)
	g.step(ctx, now, frame)
	if g.tickErrors != 1 {
		t.Errorf("tickErrors = %d, want 1", g.tickErrors)
	}
	if g.session.Mode() != ModeRunning || g.session.Level() != 0 {
		t.Errorf("after failed skip mode=%v level=%d, want running on level 0", g.session.Mode(), g.session.Level())
	}

	now = now.Add(frame)
	g.step(ctx, now, frame)
	if g.tickErrors != 1 {
		t.Errorf("tickErrors after a clean tick = %d, want 1", g.tickErrors)
	}
	if g.session.Stats().Health >= 100 {
		t.Error("the session stopped advancing after a failed load")
	}
}

func TestGameStepMenuLoadFailure(t *testing.T) {
	g := newTestGame(t, nil)
	ctx := context.Background()
	now := time.Now()

	g.tracker.Press(input.ActionToggle, now)
	g.step(ctx, now, frame)
	if g.tickErrors != 1 {
		t.Errorf("tickErrors = %d, want 1", g.tickErrors)
	}
	if g.session.Mode() != ModeMenu {
		t.Errorf("mode = %v, want menu when the first level is missing", g.session.Mode())
	}
}

func TestGameHandleEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"move", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), false},
		{"restart outside game over", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			if got := g.handleEvent(tt.ev); got != tt.quit {
				t.Errorf("handleEvent(%s) = %v, want %v", tt.name, got, tt.quit)
			}
			if g.runs != 1 {
				t.Errorf("runs = %d, want 1", g.runs)
			}
		})
	}
}
