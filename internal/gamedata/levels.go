package gamedata

import "strings"

// =============================================================================
// LEVEL FILE FORMAT
// =============================================================================
//
// Levels are authored as ASCII maps in levels.yaml. Each map row is one line of
// text, top row first; every row must have the same width. Glyphs:
//
//   #  wall              ~  water             .  grass (walkable)
//   P  player spawn      K  key               C  carrot
//   B  bronze coin       O  portal entry      X  portal exit
//   G  goal              M  cow
//
// Entity glyphs stand on walkable ground. Cow patrol routes are listed
// separately, keyed by the cow's [column, row] in the map text, with offsets in
// tiles (+x right, +y down). A cow without a patrol entry stands still.

// Glyphs used in level maps.
const (
	GlyphPlayer      = 'P'
	GlyphKey         = 'K'
	GlyphCarrot      = 'C'
	GlyphBronze      = 'B'
	GlyphPortalEntry = 'O'
	GlyphPortalExit  = 'X'
	GlyphGoal        = 'G'
	GlyphCow         = 'M'
)

// LevelDef defines an authored level loaded from YAML.
type LevelDef struct {
	Name    string      `yaml:"name"`
	Map     string      `yaml:"map"`
	Patrols []PatrolDef `yaml:"patrols"`
}

// PatrolDef is a cow's patrol route in map-text coordinates.
type PatrolDef struct {
	At      [2]int   `yaml:"at"`      // [column, row] of the cow
	Offsets [][2]int `yaml:"offsets"` // waypoints relative to the cow
}

// Rows returns the map lines, top row first, without the trailing newline.
func (l *LevelDef) Rows() []string {
	trimmed := strings.TrimRight(l.Map, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// PatrolAt returns the patrol declared for the cow at [column, row], or nil.
func (l *LevelDef) PatrolAt(col, row int) *PatrolDef {
	for i := range l.Patrols {
		if l.Patrols[i].At == [2]int{col, row} {
			return &l.Patrols[i]
		}
	}
	return nil
}

// LevelsFile represents the structure of levels.yaml.
type LevelsFile struct {
	Levels []LevelDef `yaml:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.yaml file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.yaml")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}
