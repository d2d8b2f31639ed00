package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// Hostile is a descending UFO. It is alive while HP > 0.
type Hostile struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	HP     int
}

// Tick moves the hostile, then bounces it off a side wall.
// The check runs after the move, so the hostile may sit past a wall for one
// tick before the reversed velocity carries it back.
func (h *Hostile) Tick(b Bounds) {
	h.X += h.VX
	h.Y += h.VY
	if h.X < 0 || h.X+h.W > b.W {
		h.VX = -h.VX
	}
}

// Alive reports whether the hostile can still collide.
func (h Hostile) Alive() bool {
	return h.HP > 0
}

// Destroy marks the hostile as hit.
func (h *Hostile) Destroy() {
	h.HP = 0
}

// Rect returns the collision rectangle.
func (h Hostile) Rect() core.Rect {
	return core.NewRect(h.X, h.Y, h.W, h.H)
}
