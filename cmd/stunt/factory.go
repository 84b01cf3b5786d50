package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/stunt-arcade/internal/config"
	"github.com/vovakirdan/stunt-arcade/internal/core"
	"github.com/vovakirdan/stunt-arcade/internal/games/survival"
	"github.com/vovakirdan/stunt-arcade/internal/platform/tui"
)

// gameFactory loads the survival config once and builds a fresh game per run.
func gameFactory() (tui.GameFactory, error) {
	base, err := config.LoadSurvival(flagConfig)
	if err != nil {
		return nil, err
	}

	return func(preset config.DifficultyPreset) tui.Game {
		cfg := base
		config.ApplySurvivalPreset(&cfg, preset)
		return survival.New(cfg)
	}, nil
}

// flagPreset returns the --difficulty preset, defaulting to normal.
func flagPreset() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return config.DifficultyNormal, nil
	}
	p := config.ParsePreset(flagDifficulty)
	if p == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	return p, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
