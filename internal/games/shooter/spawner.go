package shooter

import (
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// HostileManager handles spawning, movement, and removal of hostiles.
type HostileManager struct {
	bounds     Bounds
	cfg        config.HostileConfig
	difficulty config.Difficulty
	rng        *rand.Rand
	timer      int // ticks until the next spawn; <= 0 means spawn now
	hostiles   []Hostile
}

// NewHostileManager creates an empty manager. The spawn timer starts at zero,
// so the first tick spawns.
func NewHostileManager(b Bounds, cfg config.ShooterConfig, rng *rand.Rand) *HostileManager {
	return &HostileManager{
		bounds:     b,
		cfg:        cfg.Hostile,
		difficulty: config.NewDifficulty(cfg),
		rng:        rng,
		hostiles:   make([]Hostile, 0, 16),
	}
}

// Tick runs spawn timing for the given level, advances every hostile and
// drops those that fell off the bottom or were destroyed.
// It reports whether a hostile spawned this tick.
func (m *HostileManager) Tick(level int) bool {
	spawned := false
	m.timer--
	if m.timer <= 0 {
		m.spawn(level)
		m.timer = m.difficulty.SpawnDelay(level, core.RandInt(m.rng, 0, m.difficulty.SpawnJitter()))
		spawned = true
	}

	for i := range m.hostiles {
		m.hostiles[i].Tick(m.bounds)
	}

	floor := m.bounds.H + m.cfg.CullMargin
	kept := m.hostiles[:0]
	for _, h := range m.hostiles {
		if h.Y < floor && h.Alive() {
			kept = append(kept, h)
		}
	}
	m.hostiles = kept

	return spawned
}

// spawn places one hostile just above the top edge.
func (m *HostileManager) spawn(level int) {
	x := core.RandInt(m.rng, m.cfg.SpawnMarginLeft, int(m.bounds.W)-m.cfg.SpawnMarginRight)
	vx := m.difficulty.HostileVX(level, m.rng.Float64())
	vy := m.difficulty.HostileVY(level, m.rng.Float64())

	m.hostiles = append(m.hostiles, Hostile{
		X:  float64(x),
		Y:  m.cfg.SpawnY,
		W:  m.cfg.Width,
		H:  m.cfg.Height,
		VX: vx,
		VY: vy,
		HP: m.cfg.HP,
	})
}

// Hostiles returns the current hostiles. Callers must not retain the slice.
func (m *HostileManager) Hostiles() []Hostile {
	return m.hostiles
}

// Timer returns the ticks remaining until the next spawn.
func (m *HostileManager) Timer() int {
	return m.timer
}
