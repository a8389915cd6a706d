// Package main is the entry point for Glulands.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/vascocosta/glulands/internal/audio"
	"github.com/vascocosta/glulands/internal/game"
	"github.com/vascocosta/glulands/internal/gamedata"
	"github.com/vascocosta/glulands/internal/level"
	"github.com/vascocosta/glulands/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_GLULANDS_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// tcell owns the terminal, so logs go to a file while the game runs
	if cfg.LogFile != "-" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	sessionID := uuid.NewString()
	log.SetPrefix(fmt.Sprintf("[%s] ", sessionID[:8]))

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, sessionID)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	tuning, err := gamedata.LoadTuning()
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	levels, err := gamedata.LoadLevelRegistry()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Starting session with seed %d, %d authored levels", seed, levels.Count())

	var (
		sink  audio.Sink  = audio.Discard
		music audio.Music = audio.NewSilence(cfg.Muted)
	)
	if device, err := audio.Open(tuning.MusicVolume, cfg.Muted); err != nil {
		log.Printf("Warning: audio unavailable: %v", err)
	} else {
		defer device.Close()
		sink, music = device, device
	}

	// Create and run game
	g, err := game.New(cfg, tuning, level.NewLoader(levels, seed), sink, music, sessionID)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_GLULANDS_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GLULANDS_DATASET")
	if dataset == "" {
		dataset = "glulands"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
