package gamedata

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("Failed to load levels: %v", err)
	}

	if len(levels) != 3 {
		t.Fatalf("Expected 3 levels, got %d", len(levels))
	}

	for i, level := range levels {
		rows := level.Rows()
		if len(rows) == 0 {
			t.Errorf("level %d (%s) has no rows", i, level.Name)
			continue
		}

		width := len(rows[0])
		keys := 0
		for r, row := range rows {
			if len(row) != width {
				t.Errorf("level %d row %d width = %d, want %d", i, r, len(row), width)
			}
			keys += strings.Count(row, string(GlyphKey))
		}

		// Each authored level carries exactly the keys it requires.
		if keys != i+1 {
			t.Errorf("level %d (%s) has %d keys, want %d", i, level.Name, keys, i+1)
		}

		for _, p := range level.Patrols {
			col, row := p.At[0], p.At[1]
			if row < 0 || row >= len(rows) || col < 0 || col >= width {
				t.Errorf("level %d patrol at %v is outside the map", i, p.At)
				continue
			}
			if rows[row][col] != GlyphCow {
				t.Errorf("level %d patrol at %v does not point at a cow, found %q", i, p.At, rows[row][col])
			}
		}
	}
}

func TestLevelRegistry(t *testing.T) {
	registry, err := LoadLevelRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 levels, got %d", registry.Count())
	}

	first := registry.GetByIndex(0)
	if first == nil {
		t.Fatal("GetByIndex(0) returned nil")
	}
	if first.Name != "Meadow" {
		t.Errorf("GetByIndex(0).Name = %q, want %q", first.Name, "Meadow")
	}

	if registry.GetByIndex(-1) != nil || registry.GetByIndex(registry.Count()) != nil {
		t.Error("GetByIndex out of range should return nil")
	}

	if got := registry.GetByName("Orchard"); got == nil || got != registry.GetByIndex(1) {
		t.Error("GetByName(Orchard) should return the second level")
	}
	if registry.GetByName("Nowhere") != nil {
		t.Error("GetByName(Nowhere) should return nil")
	}
}

func TestPatrolAt(t *testing.T) {
	def := LevelDef{
		Map: "#M#\n",
		Patrols: []PatrolDef{
			{At: [2]int{1, 0}, Offsets: [][2]int{{3, 0}}},
		},
	}

	if p := def.PatrolAt(1, 0); p == nil || len(p.Offsets) != 1 {
		t.Errorf("PatrolAt(1, 0) = %v, want the declared patrol", p)
	}
	if p := def.PatrolAt(0, 0); p != nil {
		t.Errorf("PatrolAt(0, 0) = %v, want nil", p)
	}
	if rows := def.Rows(); len(rows) != 1 || rows[0] != "#M#" {
		t.Errorf("Rows() = %q, want [\"#M#\"]", rows)
	}
}

func TestLoadTuningMatchesDefaults(t *testing.T) {
	tuning, err := LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning() error: %v", err)
	}

	if tuning != DefaultTuning() {
		t.Errorf("tuning.yaml = %+v\nwant DefaultTuning() = %+v", tuning, DefaultTuning())
	}
	if tuning.HitCooldown != 250*time.Millisecond {
		t.Errorf("HitCooldown = %v, want 250ms", tuning.HitCooldown)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		valid  bool
	}{
		{"defaults", func(*Tuning) {}, true},
		{"zero grid", func(tu *Tuning) { tu.GridSize = 0 }, false},
		{"negative speed", func(tu *Tuning) { tu.CowSpeed = -1 }, false},
		{"zero damping", func(tu *Tuning) { tu.DiagonalDamping = 0 }, false},
		{"damping above one", func(tu *Tuning) { tu.DiagonalDamping = 1.5 }, false},
		{"damping 0.75 outruns straight moves", func(tu *Tuning) { tu.DiagonalDamping = 0.75 }, false},
		{"damping at the limit", func(tu *Tuning) { tu.DiagonalDamping = math.Sqrt2 / 2 }, true},
		{"negative cooldown", func(tu *Tuning) { tu.HitCooldown = -time.Second }, false},
		{"loud music", func(tu *Tuning) { tu.MusicVolume = 2 }, false},
	}

	for _, tt := range tests {
		tu := DefaultTuning()
		tt.mutate(&tu)
		err := tu.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: Validate() = %v, want nil", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	var tu Tuning
	if err := Decode([]byte("grid_size: 16\nbogus: 1\n"), &tu); err == nil {
		t.Error("Decode() with unknown field should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	if got := ColorOr("nope", tcell.ColorWhite); got != tcell.ColorWhite {
		t.Errorf("ColorOr(invalid) = %v, want fallback", got)
	}
	if got := ColorOr("#FF0000", tcell.ColorWhite); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("ColorOr(#FF0000) = %v, want red", got)
	}
}
