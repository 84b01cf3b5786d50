package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stunt-arcade/internal/platform/tui"
	"github.com/vovakirdan/stunt-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the difficulty picker and leaderboard",
	Long: `Start in interactive menu mode.

Pick a difficulty to start a run, or open the leaderboard.
After a run ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Leaderboard
  Q            - Quit

Examples:
  stunt menu
  stunt menu --fps 30
  stunt menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	newGame, err := gameFactory()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, runtimeConfig(), playerName(), newGame)
}
