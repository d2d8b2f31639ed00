// Package shooter implements a vertical space shooter.
// The player steers a ship along the bottom of a fixed arena and shoots down
// UFOs that drift in from the top. One collision with a UFO ends the match.
package shooter

import (
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Match is the per-tick state machine of one play session.
// It is driven by a single goroutine and never touches any display.
type Match struct {
	cfg        config.ShooterConfig
	bounds     Bounds
	difficulty config.Difficulty
	rng        *rand.Rand

	phase    core.Phase
	score    int
	level    int
	tick     int
	player   *Player
	hostiles *HostileManager

	listeners []core.Listener
}

// NewMatch creates a match in the menu phase. The seed drives every random
// roll, so equal seeds and inputs replay identically.
func NewMatch(cfg config.ShooterConfig, seed int64) *Match {
	m := &Match{
		cfg:        cfg,
		bounds:     Bounds{W: cfg.Arena.Width, H: cfg.Arena.Height},
		difficulty: config.NewDifficulty(cfg),
		rng:        rand.New(rand.NewSource(seed)),
		phase:      core.PhaseMenu,
		level:      1,
	}
	m.player = m.spawnPlayer()
	m.hostiles = NewHostileManager(m.bounds, cfg, m.rng)
	return m
}

// Subscribe registers a listener for match events.
func (m *Match) Subscribe(l core.Listener) {
	m.listeners = append(m.listeners, l)
}

// Start begins a fresh match from any phase. The random stream carries over
// from the previous match.
func (m *Match) Start() {
	m.score = 0
	m.level = 1
	m.tick = 0
	m.player = m.spawnPlayer()
	m.hostiles = NewHostileManager(m.bounds, m.cfg, m.rng)
	m.phase = core.PhaseRunning
	m.emit(core.EventMatchStarted)
}

func (m *Match) spawnPlayer() *Player {
	x := m.bounds.W/2 - m.cfg.Player.SpawnOffsetX
	y := m.bounds.H - m.cfg.Player.SpawnOffsetY
	return NewPlayer(x, y, m.cfg)
}

// Tick advances a running match by one fixed step. It reports whether the
// match is still running afterwards; outside the running phase it does nothing.
func (m *Match) Tick(in InputState) bool {
	if m.phase != core.PhaseRunning {
		return false
	}
	m.tick++

	dx, dy := in.Axis()
	m.player.Move(dx, dy, m.bounds)
	if in.Fire && m.player.Fire() {
		m.emit(core.EventShotFired)
	}
	m.player.Tick()

	m.level = m.difficulty.LevelAt(m.score, m.level)
	m.hostiles.Tick(m.level)

	m.resolveHits()

	if m.playerHit() {
		m.phase = core.PhaseGameOver
		m.emit(core.EventMatchEnded)
		return false
	}
	return true
}

// resolveHits destroys every live hostile overlapping a projectile. A projectile
// scores each hostile it overlaps this tick and is consumed afterwards.
func (m *Match) resolveHits() {
	hostiles := m.hostiles.hostiles
	projectiles := m.player.projectiles

	for i := range projectiles {
		r := projectiles[i].Rect()
		hit := false
		for j := range hostiles {
			if !hostiles[j].Alive() || !r.Intersects(hostiles[j].Rect()) {
				continue
			}
			hostiles[j].Destroy()
			m.score += m.difficulty.PointsPerHit()
			hit = true
			m.emit(core.EventHostileDestroyed)
		}
		if hit {
			projectiles[i].Consume()
		}
	}
}

// playerHit reports whether any live hostile overlaps the ship.
func (m *Match) playerHit() bool {
	ship := m.player.Rect()
	for _, h := range m.hostiles.hostiles {
		if h.Alive() && ship.Intersects(h.Rect()) {
			return true
		}
	}
	return false
}

func (m *Match) emit(kind core.EventKind) {
	e := core.Event{Kind: kind, Tick: m.tick, Score: m.score, Level: m.level}
	for _, l := range m.listeners {
		l.OnEvent(e)
	}
}

// Phase returns the current lifecycle phase.
func (m *Match) Phase() core.Phase { return m.phase }

// Score returns the current score.
func (m *Match) Score() int { return m.score }

// Level returns the current level (1-based).
func (m *Match) Level() int { return m.level }

// Bounds returns the arena size.
func (m *Match) Bounds() Bounds { return m.bounds }
