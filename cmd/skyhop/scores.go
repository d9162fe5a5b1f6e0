package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyhop-dev/skyhop/internal/platform/tui"
	"github.com/skyhop-dev/skyhop/internal/storage"
)

var (
	flagBoard bool
	flagLimit int
	flagReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top recorded runs.

Examples:
  skyhop scores
  skyhop scores --limit 25
  skyhop scores --board
  skyhop scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if resetErr := store.ClearRuns(); resetErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", resetErr)
			os.Exit(1)
		}
		fmt.Println("All recorded runs deleted.")
		return
	}

	if flagBoard {
		if boardErr := tui.RunScoreboard(store, flagLimit); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Sky Hopper")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyhop play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.Stats(); statsErr == nil && stats.RunCount > 0 {
		fmt.Printf("Best: %d   Runs: %d   Average: %.1f   Last played: %s\n",
			stats.BestScore, stats.RunCount, stats.AvgScore,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
