// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play             - Play in the current terminal
//	blockfall scores           - Browse high scores
//	blockfall serve            - Start SSH server for remote play
//	blockfall config           - Print the default rule config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game: stack the seven
classic pieces, clear full rows, chase the high score.

Available commands:
  play     - Play in the current terminal
  scores   - Browse high scores
  serve    - Start SSH server for remote play
  config   - Print the default rule config

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall scores
  blockfall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
