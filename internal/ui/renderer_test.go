package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vascocosta/glulands/internal/entity"
	"github.com/vascocosta/glulands/internal/gamedata"
	"github.com/vascocosta/glulands/internal/movement"
	"github.com/vascocosta/glulands/internal/world"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	screen, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap() error: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(40, 12)
	return NewRenderer(screen, gamedata.DefaultTuning().Palette), sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func rowText(sim tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(sim, x, y))
	}
	return b.String()
}

func testTiles() [][]world.Tile {
	// Bottom row is a wall, the rest floor.
	tiles := make([][]world.Tile, 3)
	for y := range tiles {
		tiles[y] = make([]world.Tile, 4)
		for x := range tiles[y] {
			tiles[y][x] = world.TileFloor
			if y == 0 {
				tiles[y][x] = world.TileWall
			}
		}
	}
	return tiles
}

func TestRenderFlipsRows(t *testing.T) {
	r, sim := newTestRenderer(t)

	r.Render(View{
		Tiles: testTiles(),
		Sprites: []entity.Sprite{
			{Kind: entity.KindKey, Grid: world.GridCoords{X: 1, Y: 2}},
			{Kind: entity.KindPlayer, Grid: world.GridCoords{X: 1, Y: 2}, Facing: movement.FacingLeft},
			{Kind: entity.KindGoal, Grid: world.GridCoords{X: 3, Y: 1}},
		},
	})

	// Map rows start under the status bar; level row 0 is the last map row.
	if got := runeAt(sim, 0, 3); got != '#' {
		t.Errorf("bottom map row = %q, want wall", got)
	}
	if got := runeAt(sim, 1, 1); got != '<' {
		t.Errorf("player cell = %q, want '<' drawn over the key", got)
	}
	if got := runeAt(sim, 3, 2); got != 'G' {
		t.Errorf("goal cell = %q, want 'G'", got)
	}
}

func TestRenderStatusAndOverlay(t *testing.T) {
	r, sim := newTestRenderer(t)

	r.Render(View{
		Tiles:   testTiles(),
		Status:  Status{Score: 50, Health: 97, Keys: 1, Required: 2, Level: 2},
		Overlay: OverlayPause,
	})

	status := rowText(sim, 0, 40)
	if !strings.Contains(status, "Score 00050") || !strings.Contains(status, "Keys 01/02") {
		t.Errorf("status row = %q", status)
	}

	found := false
	for y := 1; y < 12; y++ {
		if strings.Contains(rowText(sim, y, 40), "PAUSED") {
			found = true
		}
	}
	if !found {
		t.Error("pause overlay not drawn")
	}
}

func TestStatusLine(t *testing.T) {
	got := StatusLine(Status{Score: 7, Health: 0, Keys: 0, Required: 1, Level: 1, LevelName: "Meadow", Muted: true})
	for _, want := range []string{"Score 00007", "Health 000", "Keys 00/01", "Level 1", "Meadow", "[muted]"} {
		if !strings.Contains(got, want) {
			t.Errorf("StatusLine() = %q, missing %q", got, want)
		}
	}
}

func TestPlayerSymbol(t *testing.T) {
	tests := []struct {
		facing movement.Facing
		want   rune
	}{
		{movement.FacingUp, '^'},
		{movement.FacingDown, 'v'},
		{movement.FacingLeft, '<'},
		{movement.FacingRight, '>'},
	}

	for _, tt := range tests {
		if got := PlayerSymbol(tt.facing); got != tt.want {
			t.Errorf("PlayerSymbol(%v) = %q, want %q", tt.facing, got, tt.want)
		}
	}
}
