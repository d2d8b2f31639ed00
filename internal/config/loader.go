package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadShooter loads the Space Shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.{yaml,toml} ->
// ./configs/shooter.{yaml,toml} -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. An explicit customPath that cannot be read, parsed or validated is
// an error; the implicit locations are skipped when broken.
func LoadShooter(customPath string) (ShooterConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultShooterConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths("shooter") {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes one config file, picking the format by extension.
func loadFile(path string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config: unsupported config format %q", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths returns the implicit config locations for a game, user dir first.
func searchPaths(gameID string) []string {
	var paths []string
	for _, ext := range []string{".yaml", ".toml"} {
		if p := userConfigPath(gameID + ext); p != "" {
			paths = append(paths, p)
		}
	}
	for _, ext := range []string{".yaml", ".toml"} {
		paths = append(paths, filepath.Join("configs", gameID+ext))
	}
	return paths
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
