package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voidrunner/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagScoresStats      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top runs recorded on this machine.

Examples:
  voidrunner scores
  voidrunner scores --limit 25
  voidrunner scores --difficulty hard
  voidrunner scores --stats`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show runs for this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregate statistics instead of the run list")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresStats {
		printStats(store)
		return
	}

	var runs []storage.RunEntry
	if flagScoresDifficulty != "" {
		runs, err = store.RunsByDifficulty(flagScoresDifficulty, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Void Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'voidrunner play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %-10s  %s\n", "Rank", "Score", "Wave", "Kills", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %-10s  %s\n", "----", "-----", "----", "-----", "----------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-6d  %-10s  %s\n",
			i+1, entry.Score, entry.Wave, entry.Kills, entry.Difficulty, dateStr)
	}

	fmt.Println()
	if highScore, hsErr := store.HighScore(); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Void Runner - Statistics")
	fmt.Println()
	fmt.Printf("  Runs played:  %d\n", stats.RunsCount)
	fmt.Printf("  High score:   %d\n", stats.HighScore)
	fmt.Printf("  Best wave:    %d\n", stats.BestWave)
	fmt.Printf("  Total kills:  %d\n", stats.TotalKills)
	fmt.Printf("  Avg score:    %.1f\n", stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
