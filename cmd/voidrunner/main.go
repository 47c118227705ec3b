// voidrunner is a terminal vertical-scrolling space shooter.
//
// Usage:
//
//	voidrunner play            - Start a run directly
//	voidrunner menu            - Start with the title menu
//	voidrunner serve           - Start SSH server for remote play
//	voidrunner scores          - Show the leaderboard
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.voidrunner/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/voidrunner/internal/game"
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
	Use:   "voidrunner",
	Short: "Void Runner - a space shooter in your terminal",
	Long: `Void Runner is a terminal-based vertical space shooter.
Dodge enemy fire, clear waves, take down bosses and climb the leaderboard.

Available commands:
  play     - Start a run directly
  menu     - Title menu with leaderboard access
  serve    - Start SSH server for remote play
  scores   - View the leaderboard

Examples:
  voidrunner play
  voidrunner play --difficulty hard
  voidrunner menu
  voidrunner serve --ssh :2222
  voidrunner scores --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.voidrunner/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
