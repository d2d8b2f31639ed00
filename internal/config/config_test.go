package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg := ShooterConfig{}
	if err := yaml.Unmarshal(GetDefaultYAML("shooter"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultShooterConfig() {
		t.Errorf("embedded YAML drifted from DefaultShooterConfig:\n got %+v\nwant %+v", cfg, DefaultShooterConfig())
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("tetris") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero arena", func(c *ShooterConfig) { c.Arena.Width = 0 }},
		{"player larger than arena", func(c *ShooterConfig) { c.Player.Height = 1000 }},
		{"negative cooldown", func(c *ShooterConfig) { c.Player.FireCooldown = -1 }},
		{"still projectile", func(c *ShooterConfig) { c.Projectile.Speed = 0 }},
		{"dead hostiles", func(c *ShooterConfig) { c.Hostile.HP = 0 }},
		{"spawn margins overlap", func(c *ShooterConfig) { c.Hostile.SpawnMarginRight = 395 }},
		{"negative jitter", func(c *ShooterConfig) { c.Spawn.Jitter = -1 }},
		{"no level progression", func(c *ShooterConfig) { c.Scoring.LevelEvery = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadShooterYAMLOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  speed: 8\nspawn:\n  base: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if cfg.Player.Speed != 8 || cfg.Spawn.Base != 20 {
		t.Errorf("overrides not applied: speed=%v base=%v", cfg.Player.Speed, cfg.Spawn.Base)
	}
	if cfg.Player.FireCooldown != 12 || cfg.Arena.Width != 400 {
		t.Errorf("untouched keys should keep defaults, got cooldown=%d width=%v", cfg.Player.FireCooldown, cfg.Arena.Width)
	}
}

func TestLoadShooterTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[arena]\nwidth = 480.0\nheight = 640.0\n\n[scoring]\nlevel_every = 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if cfg.Arena.Width != 480 || cfg.Arena.Height != 640 || cfg.Scoring.LevelEvery != 10 {
		t.Errorf("TOML values not applied: %+v", cfg)
	}
}

func TestLoadShooterErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadShooter(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShooter(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("arena:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShooter(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values should wrap ErrInvalidConfig, got %v", err)
	}

	ini := filepath.Join(dir, "shooter.ini")
	if err := os.WriteFile(ini, []byte("x=1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShooter(ini); err == nil {
		t.Error("unsupported extension should be an error")
	}
}

func TestDifficultyLevelAt(t *testing.T) {
	d := NewDifficulty(DefaultShooterConfig())

	tests := []struct {
		score, current, expected int
	}{
		{0, 1, 1},
		{11, 1, 1},
		{12, 1, 2},
		{13, 2, 2},
		{24, 2, 3},
		{25, 3, 3},
		{120, 10, 11},
	}
	for _, tc := range tests {
		if got := d.LevelAt(tc.score, tc.current); got != tc.expected {
			t.Errorf("LevelAt(%d, %d) = %d, expected %d", tc.score, tc.current, got, tc.expected)
		}
	}
}

func TestDifficultyLevelAtSkipsJumpedMultiple(t *testing.T) {
	// Level-ups only trigger on exact multiples, so a score that jumps from
	// 11 to 13 never visits 12 and keeps the old level.
	d := NewDifficulty(DefaultShooterConfig())
	if got := d.LevelAt(13, 1); got != 1 {
		t.Errorf("LevelAt(13, 1) = %d, expected the level to stay 1", got)
	}
}

func TestDifficultySpawnDelay(t *testing.T) {
	d := NewDifficulty(DefaultShooterConfig())

	tests := []struct {
		level, roll, expected int
	}{
		{1, 0, 35},  // floor(0.8) = 0
		{1, 40, 75}, // slowest at level 1
		{2, 0, 34},  // floor(1.6) = 1
		{5, 10, 41}, // floor(4.0) = 4
		{44, 0, 0},  // floor(35.2) = 35
		{60, 0, -13},
	}
	for _, tc := range tests {
		if got := d.SpawnDelay(tc.level, tc.roll); got != tc.expected {
			t.Errorf("SpawnDelay(%d, %d) = %d, expected %d", tc.level, tc.roll, got, tc.expected)
		}
	}
}

func TestDifficultyHostileVelocity(t *testing.T) {
	d := NewDifficulty(DefaultShooterConfig())

	if got := d.HostileVX(1, 0.5); got != 0 {
		t.Errorf("HostileVX(1, 0.5) = %v, expected 0", got)
	}
	if got := d.HostileVX(10, 0); got != -1 {
		t.Errorf("HostileVX(10, 0) = %v, expected -1", got)
	}

	low := d.HostileVY(1, 0)
	if low < 1.72 || low > 1.74 {
		t.Errorf("HostileVY(1, 0) = %v, expected 1.73", low)
	}
	if d.HostileVY(5, 0) <= low {
		t.Error("vertical speed should increase with level")
	}
	if d.HostileVY(1, 0.999) >= low+0.5 {
		t.Error("vertical jitter must stay below VYJitter")
	}
}
