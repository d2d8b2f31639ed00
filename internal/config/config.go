// Package config provides YAML/TOML game configuration loading and
// difficulty scaling for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// ShooterConfig contains all tunable constants of the Space Shooter game.
type ShooterConfig struct {
	Arena      ArenaConfig      `yaml:"arena" toml:"arena"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Hostile    HostileConfig    `yaml:"hostile" toml:"hostile"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
}

// ArenaConfig defines the play area in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	SpawnOffsetX float64 `yaml:"spawn_offset_x" toml:"spawn_offset_x"` // left of center
	SpawnOffsetY float64 `yaml:"spawn_offset_y" toml:"spawn_offset_y"` // above bottom
	FireCooldown int     `yaml:"fire_cooldown" toml:"fire_cooldown"`   // ticks
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	Speed   float64 `yaml:"speed" toml:"speed"`       // upward, per tick
	OffsetX float64 `yaml:"offset_x" toml:"offset_x"` // left of ship center
	OffsetY float64 `yaml:"offset_y" toml:"offset_y"` // above ship top
}

// HostileConfig defines hostile size and motion.
type HostileConfig struct {
	Width            float64 `yaml:"width" toml:"width"`
	Height           float64 `yaml:"height" toml:"height"`
	HP               int     `yaml:"hp" toml:"hp"`
	SpawnY           float64 `yaml:"spawn_y" toml:"spawn_y"`
	SpawnMarginLeft  int     `yaml:"spawn_margin_left" toml:"spawn_margin_left"`
	SpawnMarginRight int     `yaml:"spawn_margin_right" toml:"spawn_margin_right"`
	CullMargin       float64 `yaml:"cull_margin" toml:"cull_margin"`
	BaseVY           float64 `yaml:"base_vy" toml:"base_vy"`
	VYPerLevel       float64 `yaml:"vy_per_level" toml:"vy_per_level"`
	VYJitter         float64 `yaml:"vy_jitter" toml:"vy_jitter"`
	VXPerLevel       float64 `yaml:"vx_per_level" toml:"vx_per_level"`
}

// SpawnConfig defines the spawn countdown formula:
// base + RandInt(0, jitter) - floor(level*level_factor).
type SpawnConfig struct {
	Base        int     `yaml:"base" toml:"base"`
	Jitter      int     `yaml:"jitter" toml:"jitter"`
	LevelFactor float64 `yaml:"level_factor" toml:"level_factor"`
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	PointsPerHit int `yaml:"points_per_hit" toml:"points_per_hit"`
	LevelEvery   int `yaml:"level_every" toml:"level_every"`
}

// Validate reports configurations the simulation cannot run with.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %vx%v", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Width > c.Arena.Width || c.Player.Height > c.Arena.Height:
		return fmt.Errorf("%w: player does not fit the arena", ErrInvalidConfig)
	case c.Player.Speed < 0:
		return fmt.Errorf("%w: player speed must not be negative", ErrInvalidConfig)
	case c.Player.FireCooldown < 0:
		return fmt.Errorf("%w: fire cooldown must not be negative", ErrInvalidConfig)
	case c.Projectile.Width <= 0 || c.Projectile.Height <= 0:
		return fmt.Errorf("%w: projectile size must be positive", ErrInvalidConfig)
	case c.Projectile.Speed <= 0:
		return fmt.Errorf("%w: projectile speed must be positive", ErrInvalidConfig)
	case c.Hostile.Width <= 0 || c.Hostile.Height <= 0:
		return fmt.Errorf("%w: hostile size must be positive", ErrInvalidConfig)
	case c.Hostile.HP <= 0:
		return fmt.Errorf("%w: hostile hp must be positive", ErrInvalidConfig)
	case float64(c.Hostile.SpawnMarginLeft) > c.Arena.Width-float64(c.Hostile.SpawnMarginRight):
		return fmt.Errorf("%w: hostile spawn margins leave no room in a %v-wide arena", ErrInvalidConfig, c.Arena.Width)
	case c.Spawn.Jitter < 0:
		return fmt.Errorf("%w: spawn jitter must not be negative", ErrInvalidConfig)
	case c.Scoring.PointsPerHit <= 0:
		return fmt.Errorf("%w: points per hit must be positive", ErrInvalidConfig)
	case c.Scoring.LevelEvery <= 0:
		return fmt.Errorf("%w: level_every must be positive", ErrInvalidConfig)
	}
	return nil
}
