package config

import "math"

// Difficulty derives level-dependent game parameters from a ShooterConfig.
type Difficulty struct {
	spawn   SpawnConfig
	hostile HostileConfig
	scoring ScoringConfig
}

// NewDifficulty creates a difficulty calculator for the given config.
func NewDifficulty(cfg ShooterConfig) Difficulty {
	return Difficulty{
		spawn:   cfg.Spawn,
		hostile: cfg.Hostile,
		scoring: cfg.Scoring,
	}
}

// LevelAt returns the level after the score reached score.
// The level is recomputed only when score is a positive exact multiple of
// LevelEvery; otherwise current is kept. A score that jumps over a multiple
// therefore skips that level-up.
func (d Difficulty) LevelAt(score, current int) int {
	every := d.scoring.LevelEvery
	if every <= 0 || score <= 0 || score%every != 0 {
		return current
	}
	return 1 + score/every
}

// SpawnDelay returns the ticks until the next spawn for the given level and
// jitter roll in [0, Jitter]. The result is not floored and may be zero or
// negative at high levels.
func (d Difficulty) SpawnDelay(level, roll int) int {
	return d.spawn.Base + roll - int(math.Floor(float64(level)*d.spawn.LevelFactor))
}

// HostileVX returns a horizontal velocity for a uniform roll r in [0, 1).
func (d Difficulty) HostileVX(level int, r float64) float64 {
	return (r - 0.5) * (1 + float64(level)*d.hostile.VXPerLevel)
}

// HostileVY returns a downward velocity for a uniform roll r in [0, 1).
func (d Difficulty) HostileVY(level int, r float64) float64 {
	return d.hostile.BaseVY + float64(level)*d.hostile.VYPerLevel + r*d.hostile.VYJitter
}

// SpawnJitter returns the upper bound of the spawn jitter roll.
func (d Difficulty) SpawnJitter() int {
	return d.spawn.Jitter
}

// PointsPerHit returns the score awarded for one destroyed hostile.
func (d Difficulty) PointsPerHit() int {
	return d.scoring.PointsPerHit
}
