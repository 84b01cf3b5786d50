// stunt is a terminal survival shooter driven by a wave difficulty engine.
//
// Usage:
//
//	stunt play               - Play a run directly
//	stunt menu               - Start the menu (difficulty picker and leaderboard)
//	stunt serve              - Start SSH server for remote play
//	stunt serve-ws           - Serve the engine to browser clients over WebSocket
//	stunt scores             - Show the leaderboard
//	stunt waves              - Print the wave table for a seed
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.stunt/runs.db)
//	--config <path>       - Custom survival.yaml
//	--difficulty <name>   - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stunt",
	Short: "Stunt Survival - Survive endless enemy waves in your terminal",
	Long: `Stunt Survival is a wave survival shooter for the terminal.
Every wave is harder than the last: more enemies, faster enemies and
shorter gaps between spawns. Chain kills for combo bonuses and grab
power-ups to stay alive.

Available commands:
  play      - Start a run directly
  menu      - Interactive menu with difficulty picker and leaderboard
  serve     - Start SSH server for remote play
  serve-ws  - Serve the difficulty engine over WebSocket
  scores    - View the leaderboard
  waves     - Print the wave table for a seed

Examples:
  stunt play
  stunt play --difficulty hard
  stunt menu
  stunt serve --ssh :2222
  stunt waves --count 30 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stunt/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom survival config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(serveWSCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wavesCmd)
}
