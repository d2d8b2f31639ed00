package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// consumedY is where a projectile is parked after a hit. It is far enough
// above the arena that the next cull removes it.
const consumedY = -1000

// Projectile is a shot fired by the player. Its vertical velocity never
// changes after creation.
type Projectile struct {
	X, Y float64
	W, H float64
	VY   float64 // negative = upward
}

// Advance moves the projectile by one tick. Bounds are the owner's concern.
func (p *Projectile) Advance() {
	p.Y += p.VY
}

// Expired reports whether the projectile's bottom edge has left the top of the arena.
func (p Projectile) Expired() bool {
	return p.Y+p.H <= 0
}

// Consume parks the projectile off-screen after a hit.
func (p *Projectile) Consume() {
	p.Y = consumedY
}

// Rect returns the collision rectangle.
func (p Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}
