package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/audio"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

var (
	flagSound     bool
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Space Shooter in the terminal.

Controls:
  Arrows/WASD  - Steer
  Space        - Fire
  Enter        - Start
  P            - Pause
  R            - Restart (after game over)
  Tab          - High scores (when not playing)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Terminals only report key presses, so a key counts as held for a few ticks
after each press or auto-repeat. Tune it with --hold-ticks.

Examples:
  arcade play
  arcade play --seed 7 --fps 30
  arcade play --config ./shooter.toml --sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a key stays held after each press")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, logCloser := openLogger()
	defer logCloser.Close()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(shooter.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Logger:    logger,
		Player:    flagPlayer,
		HoldTicks: flagHoldTicks,
	}

	store := openStore()
	if store != nil {
		opts.Store = store
	}

	var cues *audio.Cues
	if flagSound {
		cues = audio.New(0, logger)
		if !cues.Enabled() {
			fmt.Fprintln(os.Stderr, "Warning: no audio device, playing without sound")
		}
		opts.Listeners = append(opts.Listeners, cues)
	}

	runErr := tui.Run(game, cfg, opts)

	if cues != nil {
		cues.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
