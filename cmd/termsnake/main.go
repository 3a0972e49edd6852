// termsnake is the classic snake game played in the terminal.
//
// Usage:
//
//	termsnake            - Play the game
//	termsnake play       - Same thing, spelled out
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--tick-ms <ms>    - Game-logic tick interval (default from config: 160)
//	--fps <rate>      - Render frame rate (default from config: 60)
//	--config <path>   - Path to a config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagTickMS int
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Classic snake in your terminal",
	Long: `termsnake is the classic snake game: steer the snake across a 10x10
field, eat fruit to grow, and avoid the walls and your own tail.

Running termsnake without a subcommand starts a game.

Examples:
  termsnake
  termsnake play --tick-ms 120
  termsnake play --seed 42`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick-ms", 0, "Tick interval in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render frame rate (0 = from config)")

	rootCmd.AddCommand(playCmd)
}
