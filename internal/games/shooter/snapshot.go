package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// Snapshot is a read-only copy of everything a frontend needs to draw a frame.
type Snapshot struct {
	Phase       core.Phase
	Tick        int
	Score       int
	Level       int
	Bounds      Bounds
	Player      core.Rect
	Projectiles []core.Rect
	Hostiles    []core.Rect // live hostiles only
}

// Snapshot copies the current match state. Mutating the result never affects
// the match.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Phase:       m.phase,
		Tick:        m.tick,
		Score:       m.score,
		Level:       m.level,
		Bounds:      m.bounds,
		Player:      m.player.Rect(),
		Projectiles: make([]core.Rect, 0, len(m.player.projectiles)),
		Hostiles:    make([]core.Rect, 0, len(m.hostiles.hostiles)),
	}
	for _, p := range m.player.projectiles {
		s.Projectiles = append(s.Projectiles, p.Rect())
	}
	for _, h := range m.hostiles.hostiles {
		if h.Alive() {
			s.Hostiles = append(s.Hostiles, h.Rect())
		}
	}
	return s
}
