package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in config as YAML. Save it, edit the values you want
to change and pass the file with --config. Keys left out keep their defaults.

If --config is given, the file is loaded and validated instead.

Examples:
  arcade config > ~/.arcade/configs/shooter.yaml
  arcade config --config ./shooter.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfig == "" {
		os.Stdout.Write(config.GetDefaultYAML(shooter.GameID))
		return
	}

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (arena %.0fx%.0f, fire cooldown %d, level every %d)\n",
		flagConfig, cfg.Arena.Width, cfg.Arena.Height, cfg.Player.FireCooldown, cfg.Scoring.LevelEvery)
}
