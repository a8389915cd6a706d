package game

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds game configuration options.
type Config struct {
	// Seed for procedurally generated levels. A seed of 0 means a random seed
	// will be generated.
	Seed int64
	// Muted starts the run with the music silenced.
	Muted bool
	// LogFile receives log output while the terminal is in use. "-" keeps stderr.
	LogFile string
	// FPS is the simulation and render rate.
	FPS int
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		LogFile: "glulands.log",
		FPS:     60,
	}
}

// ConfigFromEnv reads GLULANDS_* variables over the defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("GLULANDS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("GLULANDS_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("GLULANDS_MUTE"); v != "" {
		muted, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("GLULANDS_MUTE: %w", err)
		}
		cfg.Muted = muted
	}
	if v := os.Getenv("GLULANDS_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("GLULANDS_FPS"); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("GLULANDS_FPS: %w", err)
		}
		if fps < 1 || fps > 240 {
			return cfg, fmt.Errorf("GLULANDS_FPS must be in [1,240], got %d", fps)
		}
		cfg.FPS = fps
	}
	return cfg, nil
}
