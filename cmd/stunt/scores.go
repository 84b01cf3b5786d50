package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stunt-arcade/internal/games/survival"
	"github.com/vovakirdan/stunt-arcade/internal/platform/tui"
	"github.com/vovakirdan/stunt-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best recorded runs.

Examples:
  stunt scores
  stunt scores --limit 25
  stunt scores --tui
  stunt scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive leaderboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(survival.GameID); err != nil {
			return err
		}
		fmt.Println("Leaderboard cleared.")
		return nil
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, survival.GameID, survival.GameTitle, cfg.ScreenW, cfg.ScreenH)
	}

	runs, err := store.TopRuns(survival.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Leaderboard - %s\n", survival.GameTitle)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'stunt play' to set the first record!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-4s  %-5s  %-12s  %s\n", "Rank", "Score", "Wave", "Combo", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-5s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-4d  %-5d  %-12s  %s\n",
			i+1, r.Score, r.Wave, r.MaxCombo, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestWave(survival.GameID); err == nil {
		fmt.Printf("Furthest wave: %d\n", best)
	}
	return nil
}
