package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoronkov/runlane/internal/core"
	"github.com/avoronkov/runlane/internal/platform/tui"
	"github.com/avoronkov/runlane/internal/scores"
	"github.com/avoronkov/runlane/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 runs.

In a terminal this opens the interactive scoreboard screen; piped
output falls back to a plain listing.

Examples:
  runlane scores
  runlane scores --plain
  runlane scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain listing instead of the interactive screen")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	board := scores.Load(store, log.New(os.Stderr))

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		def := core.DefaultConfig()
		width, height := def.ScreenW, def.ScreenH
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(board, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries := board.Entries()

	fmt.Println("RunLane - High Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runlane play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-18s  %-10s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-18s  %-10s  %s\n", "----", "----", "-----", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-18s  %-10d  %s\n", i+1, entry.Name, entry.Score, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", board.HighScore())
}
