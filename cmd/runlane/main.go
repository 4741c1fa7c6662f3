// runlane is a terminal side-scrolling runner: dodge hazards, grab
// pickups, spend them on upgrades mid-run, chase the leaderboard.
//
// Usage:
//
//	runlane play             - Play in the current terminal
//	runlane scores           - Show the leaderboard
//	runlane serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runlane/scores.db)
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
	Use:   "runlane",
	Short: "RunLane - Side-scrolling runner for your terminal",
	Long: `RunLane is a terminal runner: your avatar races right while ground
and floating hazards scroll in. Jump and weave, collect pickups, and
spend them on upgrades without leaving the run.

Available commands:
  play     - Play in the current terminal
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  runlane play
  runlane play --seed 42
  runlane scores
  runlane serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runlane/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
