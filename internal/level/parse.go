package level

import (
	"fmt"

	"github.com/vascocosta/glulands/internal/entity"
	"github.com/vascocosta/glulands/internal/gamedata"
	"github.com/vascocosta/glulands/internal/world"
)

var glyphKinds = map[rune]entity.Kind{
	gamedata.GlyphPlayer:      entity.KindPlayer,
	gamedata.GlyphKey:         entity.KindKey,
	gamedata.GlyphCarrot:      entity.KindCarrot,
	gamedata.GlyphBronze:      entity.KindBronze,
	gamedata.GlyphPortalEntry: entity.KindPortalEntry,
	gamedata.GlyphPortalExit:  entity.KindPortalExit,
	gamedata.GlyphGoal:        entity.KindGoal,
	gamedata.GlyphCow:         entity.KindCow,
}

// FromDef parses an authored level. Map text runs top to bottom; the result is
// flipped so that row 0 is the bottom of the level.
func FromDef(def *gamedata.LevelDef, index int) (*Data, error) {
	rows := def.Rows()
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q has an empty map", ErrMalformedLevel, def.Name)
	}

	height := len(rows)
	width := len([]rune(rows[0]))
	d := &Data{
		Name:   def.Name,
		Index:  index,
		Width:  width,
		Height: height,
		Tiles:  make([][]world.Tile, height),
	}

	for r, line := range rows {
		glyphs := []rune(line)
		if len(glyphs) != width {
			return nil, fmt.Errorf("%w: %q map row %d has width %d, want %d", ErrMalformedLevel, def.Name, r, len(glyphs), width)
		}

		y := height - 1 - r
		d.Tiles[y] = make([]world.Tile, width)
		for col, glyph := range glyphs {
			at := world.GridCoords{X: col, Y: y}

			switch tile := world.Tile(glyph); tile {
			case world.TileWall, world.TileWater, world.TileFloor:
				d.Tiles[y][col] = tile
				continue
			}

			kind, ok := glyphKinds[glyph]
			if !ok {
				return nil, fmt.Errorf("%w: %q has unknown glyph %q at [%d, %d]", ErrMalformedLevel, def.Name, glyph, col, r)
			}
			d.Tiles[y][col] = world.TileFloor

			spawn := Spawn{Kind: kind, At: at}
			if kind == entity.KindCow {
				if p := def.PatrolAt(col, r); p != nil {
					for _, off := range p.Offsets {
						spawn.Patrol = append(spawn.Patrol, world.GridCoords{X: off[0], Y: -off[1]})
					}
				}
			}
			d.Spawns = append(d.Spawns, spawn)
		}
	}

	for _, p := range def.Patrols {
		col, r := p.At[0], p.At[1]
		if r < 0 || r >= height || col < 0 || col >= width || []rune(rows[r])[col] != gamedata.GlyphCow {
			return nil, fmt.Errorf("%w: %q declares a patrol at %v without a cow", ErrMalformedLevel, def.Name, p.At)
		}
	}

	d.Blocked = blockedCells(d.Tiles)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
