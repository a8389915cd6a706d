package ui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/vascocosta/glulands/internal/entity"
	"github.com/vascocosta/glulands/internal/gamedata"
	"github.com/vascocosta/glulands/internal/movement"
	"github.com/vascocosta/glulands/internal/world"
)

// statusRows is the height of the status bar above the map.
const statusRows = 1

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	styles map[entity.Kind]tcell.Style
	tiles  map[world.Tile]tcell.Style
	text   tcell.Style
	bar    tcell.Style
	alert  tcell.Style
}

// NewRenderer creates a renderer that colors everything from the palette.
func NewRenderer(screen *Screen, p gamedata.Palette) *Renderer {
	fg := func(hex string, fallback tcell.Color) tcell.Style {
		return tcell.StyleDefault.Foreground(gamedata.ColorOr(hex, fallback))
	}
	player := fg(p.Player, tcell.ColorYellow).Bold(true)
	portal := fg(p.Portal, tcell.ColorPurple)

	return &Renderer{
		screen: screen,
		styles: map[entity.Kind]tcell.Style{
			entity.KindPlayer:      player,
			entity.KindCow:         fg(p.Cow, tcell.ColorWhite).Bold(true),
			entity.KindKey:         fg(p.Key, tcell.ColorGold),
			entity.KindCarrot:      fg(p.Carrot, tcell.ColorOrange),
			entity.KindBronze:      fg(p.Bronze, tcell.ColorBrown),
			entity.KindPortalEntry: portal,
			entity.KindPortalExit:  portal,
			entity.KindGoal:        fg(p.Goal, tcell.ColorAqua).Bold(true),
		},
		tiles: map[world.Tile]tcell.Style{
			world.TileWall:  fg(p.Wall, tcell.ColorDarkGray),
			world.TileWater: fg(p.Water, tcell.ColorBlue),
			world.TileFloor: fg(p.Grass, tcell.ColorGreen),
		},
		text:  fg(p.Text, tcell.ColorWhite),
		bar:   tcell.StyleDefault.Background(gamedata.ColorOr(p.Bar, tcell.ColorDarkGray)).Foreground(gamedata.ColorOr(p.Text, tcell.ColorWhite)),
		alert: fg(p.GameOver, tcell.ColorRed).Bold(true),
	}
}

// drawOrder puts fixtures under items, items under cows and the player on top.
func drawOrder(k entity.Kind) int {
	switch k {
	case entity.KindPlayer:
		return 3
	case entity.KindCow:
		return 2
	case entity.KindKey, entity.KindCarrot, entity.KindBronze:
		return 1
	default:
		return 0
	}
}

// PlayerSymbol returns the player's glyph for a facing.
func PlayerSymbol(f movement.Facing) rune {
	switch f {
	case movement.FacingUp:
		return '^'
	case movement.FacingLeft:
		return '<'
	case movement.FacingRight:
		return '>'
	default:
		return 'v'
	}
}

// StatusLine formats the status bar text.
func StatusLine(s Status) string {
	line := fmt.Sprintf(" Score %05d   Health %03d   Keys %02d/%02d   Level %d  %s",
		s.Score, s.Health, s.Keys, s.Required, s.Level, s.LevelName)
	if s.Muted {
		line += "   [muted]"
	}
	return line
}

// Render draws one frame. Row 0 of the level is drawn at the bottom.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	width, _ := r.screen.Size()

	line := StatusLine(v.Status)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', r.bar)
	}
	r.screen.DrawText(0, 0, line, r.bar)

	height := len(v.Tiles)
	toScreen := func(g world.GridCoords) (int, int) {
		return g.X, statusRows + height - 1 - g.Y
	}

	for y, row := range v.Tiles {
		for x, tile := range row {
			sx, sy := toScreen(world.GridCoords{X: x, Y: y})
			r.screen.SetContent(sx, sy, tile.Rune(), r.tiles[tile])
		}
	}

	sprites := append([]entity.Sprite(nil), v.Sprites...)
	sort.SliceStable(sprites, func(i, j int) bool {
		return drawOrder(sprites[i].Kind) < drawOrder(sprites[j].Kind)
	})
	for _, s := range sprites {
		if s.Grid.Y < 0 || s.Grid.Y >= height {
			continue
		}
		symbol := s.Kind.Symbol()
		if s.Kind == entity.KindPlayer {
			symbol = PlayerSymbol(s.Facing)
		}
		sx, sy := toScreen(s.Grid)
		r.screen.SetContent(sx, sy, symbol, r.styles[s.Kind])
	}

	if v.Teleporting {
		r.screen.DrawText(1, statusRows+height, "~ teleporting ~", r.styles[entity.KindPortalEntry])
	}

	switch v.Overlay {
	case OverlayMenu:
		r.box(height, "GLULANDS", "Collect the keys, reach the goal.", "Press P or Space to start")
	case OverlayPause:
		r.box(height, "PAUSED", "Press P or Space to resume")
	case OverlayGameOver:
		r.box(height, "GAME OVER", fmt.Sprintf("Final score %d", v.Status.Score), "Press R to play again or Q to quit")
	}

	r.screen.Show()
}

// box draws centered lines over the map area.
func (r *Renderer) box(mapHeight int, lines ...string) {
	width, _ := r.screen.Size()
	top := statusRows + max(0, (mapHeight-len(lines))/2)

	for i, l := range lines {
		style := r.text
		if i == 0 {
			style = r.alert
		}
		x := max(0, (width-len(l))/2)
		r.screen.DrawText(x, top+i, l, style)
	}
}
