// winterhouse is a cozy animated diorama that lives in the terminal.
//
// Usage:
//
//	winterhouse list              - List available scenes
//	winterhouse play [scene]      - Walk around a scene
//	winterhouse journal [scene]   - Show the interaction journal
//	winterhouse serve             - Start SSH server for remote visits
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible flicker
//	--db <path>     - Set database path (default: ~/.winterhouse/journal.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "winterhouse/internal/props"
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
	Use:   "winterhouse",
	Short: "Winter House - a cozy diorama in your terminal",
	Long: `Winter House is a terminal diorama: a snowed-in house you can walk
through, with a fireplace to light, a tree to plug in, a stereo to
turn up, and a visitor due past midnight.

Available commands:
  list     - Show all available scenes
  play     - Walk around a scene
  journal  - View the interaction journal
  serve    - Start SSH server for remote visits

Examples:
  winterhouse play
  winterhouse play house --seed 42
  winterhouse journal --interactive
  winterhouse serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.winterhouse/journal.db", "Path to journal database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(serveCmd)
}
