package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/audio"
	"github.com/vovakirdan/space-shooter/internal/platform/window"
)

var (
	flagScale       float64
	flagWindowSound bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Space Shooter in a desktop window. The window reads real key
state, so steering and fire respond exactly while a key is down.

Controls:
  Arrows/WASD  - Steer
  Space        - Fire (hold for auto-fire)
  Enter        - Start
  P            - Pause
  R            - Restart (after game over)
  Esc/Q        - Quit

Examples:
  arcade window
  arcade window --scale 2 --sound`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 400x540 arena")
	windowCmd.Flags().BoolVar(&flagWindowSound, "sound", false, "Play sound effects")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, logCloser := openLogger()
	defer logCloser.Close()

	opts := window.Options{
		Logger:   logger,
		Player:   flagPlayer,
		TickRate: flagFPS,
		Scale:    flagScale,
		Seed:     flagSeed,
	}

	store := openStore()
	if store != nil {
		opts.Store = store
	}

	var cues *audio.Cues
	if flagWindowSound {
		cues = audio.New(0, logger)
		if !cues.Enabled() {
			fmt.Fprintln(os.Stderr, "Warning: no audio device, playing without sound")
		}
		opts.Listeners = append(opts.Listeners, cues)
	}

	runErr := window.Run(opts)

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
