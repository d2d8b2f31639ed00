package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Bounds is the fixed play area of one match.
type Bounds struct {
	W, H float64
}

// Player is the ship. It owns every projectile it fires.
type Player struct {
	X, Y     float64
	W, H     float64
	Speed    float64
	Cooldown int // ticks until the weapon can fire again

	reload      int
	shot        config.ProjectileConfig
	projectiles []Projectile
}

// NewPlayer creates a ship at (x, y) using the player and projectile config.
func NewPlayer(x, y float64, cfg config.ShooterConfig) *Player {
	return &Player{
		X:           x,
		Y:           y,
		W:           cfg.Player.Width,
		H:           cfg.Player.Height,
		Speed:       cfg.Player.Speed,
		reload:      cfg.Player.FireCooldown,
		shot:        cfg.Projectile,
		projectiles: make([]Projectile, 0, 16),
	}
}

// Move applies one tick of directional intent. dx and dy are -1, 0 or 1.
// Each axis is clamped on its own and diagonal speed is not normalized.
func (p *Player) Move(dx, dy int, b Bounds) {
	p.X = core.Clamp(p.X+float64(dx)*p.Speed, 0, b.W-p.W)
	p.Y = core.Clamp(p.Y+float64(dy)*p.Speed, 0, b.H-p.H)
}

// Fire launches a projectile if the weapon is ready and restarts the cooldown.
// It reports whether a shot was fired.
func (p *Player) Fire() bool {
	if p.Cooldown > 0 {
		return false
	}
	p.projectiles = append(p.projectiles, Projectile{
		X:  p.X + p.W/2 - p.shot.OffsetX,
		Y:  p.Y - p.shot.OffsetY,
		W:  p.shot.Width,
		H:  p.shot.Height,
		VY: -p.shot.Speed,
	})
	p.Cooldown = p.reload
	return true
}

// Tick counts the cooldown down, advances every projectile and drops the
// ones that left the top of the arena. It runs every tick regardless of input.
func (p *Player) Tick() {
	if p.Cooldown > 0 {
		p.Cooldown--
	}

	kept := p.projectiles[:0]
	for i := range p.projectiles {
		p.projectiles[i].Advance()
		if !p.projectiles[i].Expired() {
			kept = append(kept, p.projectiles[i])
		}
	}
	p.projectiles = kept
}

// Projectiles returns the live projectiles. Callers must not retain the slice.
func (p *Player) Projectiles() []Projectile {
	return p.projectiles
}

// Rect returns the ship's collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}
