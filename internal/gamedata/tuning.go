package gamedata

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// maxDiagonalDamping keeps a damped diagonal step no longer than a straight one.
const maxDiagonalDamping = math.Sqrt2 / 2

// Tuning holds gameplay constants loaded from tuning.yaml.
type Tuning struct {
	GridSize          int           `yaml:"grid_size"`           // tile size in world pixels
	PlayerSpeed       float64       `yaml:"player_speed"`        // pixels per second
	CowSpeed          float64       `yaml:"cow_speed"`           // pixels per second
	MaxHealth         float64       `yaml:"max_health"`
	CarrotHealth      float64       `yaml:"carrot_health"`       // heal per carrot
	CowHealthHit      float64       `yaml:"cow_health_hit"`      // damage per cow contact
	CowScoreHit       float64       `yaml:"cow_score_hit"`       // score penalty per cow contact
	BronzeScore       float64       `yaml:"bronze_score"`        // score per bronze coin
	Correction        float64       `yaml:"correction"`          // quantization bias toward travel direction
	HitCooldown       time.Duration `yaml:"hit_cooldown"`        // shared enemy contact cooldown
	TeleportDelay     time.Duration `yaml:"teleport_delay"`      // portal freeze before relocation
	DiagonalDamping   float64       `yaml:"diagonal_damping"`    // per-axis factor when moving diagonally
	PassiveScoreRate  float64       `yaml:"passive_score_rate"`  // score per second while running, 0 disables
	PatrolPivotOffset float64       `yaml:"patrol_pivot_offset"` // vertical offset added to the patrol end point
	MusicVolume       float64       `yaml:"music_volume"`        // 0..1
	Palette           Palette       `yaml:"palette"`
}

// Palette holds hex colors for rendering.
type Palette struct {
	Wall     string `yaml:"wall"`
	Water    string `yaml:"water"`
	Grass    string `yaml:"grass"`
	Player   string `yaml:"player"`
	Cow      string `yaml:"cow"`
	Key      string `yaml:"key"`
	Carrot   string `yaml:"carrot"`
	Bronze   string `yaml:"bronze"`
	Portal   string `yaml:"portal"`
	Goal     string `yaml:"goal"`
	Text     string `yaml:"text"`
	Bar      string `yaml:"bar"`
	GameOver string `yaml:"game_over"`
}

// DefaultTuning returns the built-in constants, identical to the shipped tuning.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		GridSize:          16,
		PlayerSpeed:       80,
		CowSpeed:          70,
		MaxHealth:         100,
		CarrotHealth:      25,
		CowHealthHit:      20,
		CowScoreHit:       10,
		BronzeScore:       50,
		Correction:        10,
		HitCooldown:       250 * time.Millisecond,
		TeleportDelay:     time.Second,
		DiagonalDamping:   0.5,
		PassiveScoreRate:  0,
		PatrolPivotOffset: 8,
		MusicVolume:       0.3,
		Palette: Palette{
			Wall:     "#5A5A5A",
			Water:    "#2E6FBF",
			Grass:    "#3B7A3B",
			Player:   "#F2D15C",
			Cow:      "#E8E8E8",
			Key:      "#FFC400",
			Carrot:   "#FF8C1A",
			Bronze:   "#CD7F32",
			Portal:   "#B45CFF",
			Goal:     "#1AFFB3",
			Text:     "#1AFFB3",
			Bar:      "#404040",
			GameOver: "#B3334D",
		},
	}
}

// Validate checks the constants the simulation depends on.
func (t *Tuning) Validate() error {
	var errs []error
	if t.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("grid_size must be positive, got %d", t.GridSize))
	}
	if t.PlayerSpeed < 0 || t.CowSpeed < 0 {
		errs = append(errs, errors.New("speeds must not be negative"))
	}
	if t.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("max_health must be positive, got %v", t.MaxHealth))
	}
	if t.DiagonalDamping <= 0 || t.DiagonalDamping > maxDiagonalDamping {
		errs = append(errs, fmt.Errorf("diagonal_damping must be in (0,%.4f], got %v", maxDiagonalDamping, t.DiagonalDamping))
	}
	if t.HitCooldown < 0 || t.TeleportDelay < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}
	if t.MusicVolume < 0 || t.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("music_volume must be in [0,1], got %v", t.MusicVolume))
	}
	return errors.Join(errs...)
}

// LoadTuning loads and validates the embedded tuning.yaml.
func LoadTuning() (Tuning, error) {
	t, err := Load[Tuning]("tuning.yaml")
	if err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning.yaml: %w", err)
	}
	return t, nil
}
