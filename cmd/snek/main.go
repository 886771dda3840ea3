// snek is a snake game for the terminal.
//
// Usage:
//
//	snek                 - Play a game
//	snek themes          - List available themes
//	snek scores          - Show high scores
//	snek completion      - Generate shell completion scripts
//
// Common flags:
//
//	--width, --height    - Board size in cells
//	-w, --walls          - Solid walls instead of wrapping edges
//	-s, --speed          - Initial speed in steps per second
//	--config <path>      - Custom config YAML
//	--db <path>          - Scores database (default: ~/.snek/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "Snake in your terminal",
	Long: `snek is the classic snake game, played in the terminal.

Eat food to grow and score. Every few pieces of food the snake speeds up.
Running into yourself, or into a wall when walls are enabled, ends the game.
Fill the whole board to win.

Controls:
  W/A/S/D, arrows, h/j/k/l - Turn
  Q/Ctrl+C                 - Quit

Examples:
  snek
  snek --walls --speed 8
  snek --fullscreen --snake-theme line --food-theme ascii
  snek --difficulty hard
  snek scores`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.snek/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log game events at debug level")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(scoresCmd)
}
