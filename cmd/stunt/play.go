package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stunt-arcade/internal/platform/tui"
	"github.com/vovakirdan/stunt-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a survival run",
	Long: `Start a survival run directly, skipping the menu.

Controls:
  WASD/Arrows/HJKL  - Move
  Space             - Fire
  P                 - Pause
  R                 - Restart (after game over)
  B/Esc             - Quit (when paused or after game over)
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot to ~/.stunt/screenshots

Difficulty options:
  easy   - 5 lives, longer invulnerability, slower enemies
  normal - Config values as-is
  hard   - 2 lives, short invulnerability, faster enemies

Examples:
  stunt play
  stunt play --difficulty hard
  stunt play --seed 42 --fps 30
  stunt play --config ./my-survival.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := flagPreset()
	if err != nil {
		return err
	}
	newGame, err := gameFactory()
	if err != nil {
		return err
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(newGame(preset), store, runtimeConfig(), playerName())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
