package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in Space Shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena: ArenaConfig{
			Width:  400,
			Height: 540,
		},
		Player: PlayerConfig{
			Width:        36,
			Height:       32,
			Speed:        5,
			SpawnOffsetX: 18,
			SpawnOffsetY: 60,
			FireCooldown: 12,
		},
		Projectile: ProjectileConfig{
			Width:   6,
			Height:  14,
			Speed:   9,
			OffsetX: 3,
			OffsetY: 12,
		},
		Hostile: HostileConfig{
			Width:            32,
			Height:           28,
			HP:               1,
			SpawnY:           -30,
			SpawnMarginLeft:  10,
			SpawnMarginRight: 42,
			CullMargin:       32,
			BaseVY:           1.6,
			VYPerLevel:       0.13,
			VYJitter:         0.5,
			VXPerLevel:       0.1,
		},
		Spawn: SpawnConfig{
			Base:        35,
			Jitter:      40,
			LevelFactor: 0.8,
		},
		Scoring: ScoringConfig{
			PointsPerHit: 1,
			LevelEvery:   12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}
