package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoronkov/runlane/internal/audio"
	"github.com/avoronkov/runlane/internal/config"
	"github.com/avoronkov/runlane/internal/core"
	"github.com/avoronkov/runlane/internal/platform/tui"
	"github.com/avoronkov/runlane/internal/scores"
	"github.com/avoronkov/runlane/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Left/Right, A/D  - Move
  Space/Up         - Jump
  1 / 2 / 3        - Buy mobility / jump / shield upgrade
  P/Esc            - Pause
  M                - Toggle sound
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  runlane play
  runlane play --seed 42
  runlane play --mute
  runlane play --config ./my-runlane.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.New(os.Stderr)

	runnerCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var slots scores.Slots
	if store != nil {
		slots = store
	}
	board := scores.Load(slots, logger)

	sound := audio.NewEngine(logger)
	if flagMute {
		sound.SetMuted(true)
	}
	sound.Init()

	runErr := tui.Run(runnerCfg, rt, board, sound)

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
