package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Visual characters for rendering
const (
	ShipChar       = '▲'
	HullChar       = '█'
	HostileChar    = '●'
	DomeChar       = '◠'
	ProjectileChar = '│'
	StarChar       = '·'
)

// Minimum playfield size in cells.
const (
	minFieldW = 12
	minFieldH = 8
)

// viewport maps arena coordinates onto a block of terminal cells.
// Terminal cells are roughly twice as tall as wide, so the field keeps the
// arena's aspect ratio with columns doubled.
type viewport struct {
	x, y   int // top-left cell of the field
	w, h   int // field size in cells
	sx, sy float64
}

// newViewport fits the arena under a one-line HUD and inside a border.
func newViewport(b Bounds, screenW, screenH int) viewport {
	h := screenH - 3 // HUD row plus top and bottom border
	w := int(math.Round(float64(h) * b.W / b.H * 2))
	if w > screenW-2 {
		w = screenW - 2
		h = int(math.Round(float64(w) / 2 * b.H / b.W))
	}
	return viewport{
		x:  (screenW - w) / 2,
		y:  2,
		w:  w,
		h:  h,
		sx: float64(w) / b.W,
		sy: float64(h) / b.H,
	}
}

func (v viewport) tooSmall() bool {
	return v.w < minFieldW || v.h < minFieldH
}

// cells returns the clipped cell span covered by r. ok is false when r is
// entirely outside the field.
func (v viewport) cells(r core.Rect) (c0, r0, c1, r1 int, ok bool) {
	c0 = int(math.Floor(r.X * v.sx))
	r0 = int(math.Floor(r.Y * v.sy))
	c1 = max(int(math.Ceil(r.Right()*v.sx))-1, c0)
	r1 = max(int(math.Ceil(r.Bottom()*v.sy))-1, r0)

	if c1 < 0 || r1 < 0 || c0 >= v.w || r0 >= v.h {
		return 0, 0, 0, 0, false
	}
	c0 = core.ClampInt(c0, 0, v.w-1)
	c1 = core.ClampInt(c1, 0, v.w-1)
	r0 = core.ClampInt(r0, 0, v.h-1)
	r1 = core.ClampInt(r1, 0, v.h-1)
	return c0, r0, c1, r1, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.frames++

	snap := g.match.Snapshot()
	vp := newViewport(snap.Bounds, dst.Width(), dst.Height())
	if vp.tooSmall() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorAlert)
		return
	}

	dst.DrawBox(vp.x-1, vp.y-1, vp.w+2, vp.h+2, core.ColorGray)
	g.drawStars(dst, vp, snap.Bounds)

	if snap.Phase == core.PhaseMenu {
		drawCenteredMessage(dst, core.ColorTitle,
			"SPACE SHOOTER",
			"",
			"Arrow keys or WASD to move",
			"Space to shoot",
			"Destroy UFOs. Good luck!",
			"",
			"Press Enter to start",
		)
		return
	}

	for _, h := range snap.Hostiles {
		drawHostile(dst, vp, h)
	}
	for _, p := range snap.Projectiles {
		drawRect(dst, vp, p, ProjectileChar, core.ColorProjectile)
	}
	drawShip(dst, vp, snap.Player)

	dst.DrawText(vp.x, 0, fmt.Sprintf("Score: %d   Level: %d", snap.Score, snap.Level), core.ColorHUD)

	if g.paused {
		drawCenteredMessage(dst, core.ColorTitle, "PAUSED", "Press P to resume")
	}
	if snap.Phase == core.PhaseGameOver {
		drawCenteredMessage(dst, core.ColorAlert,
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			"",
			"R: play again   Q: quit",
		)
	}
}

func (g *Game) drawStars(dst *core.Screen, vp viewport, b Bounds) {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	ms := float64(g.frames) * 1000 / float64(rate)
	for _, s := range Starfield(ms, b) {
		if s.Alpha < 0.3 {
			continue
		}
		c0, r0, _, _, ok := vp.cells(core.NewRect(s.X, s.Y, 0, 0))
		if ok {
			dst.SetColor(vp.x+c0, vp.y+r0, StarChar, core.ColorStar)
		}
	}
}

// drawShip draws the nose on the top row and hull below it.
func drawShip(dst *core.Screen, vp viewport, r core.Rect) {
	c0, r0, c1, r1, ok := vp.cells(r)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			ch := HullChar
			if row == r0 {
				ch = ShipChar
			}
			dst.SetColor(vp.x+col, vp.y+row, ch, core.ColorShip)
		}
	}
}

// drawHostile draws the saucer body with a dome on the top row when the
// hostile spans more than one row.
func drawHostile(dst *core.Screen, vp viewport, r core.Rect) {
	c0, r0, c1, r1, ok := vp.cells(r)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if row == r0 && r1 > r0 {
				dst.SetColor(vp.x+col, vp.y+row, DomeChar, core.ColorDome)
				continue
			}
			dst.SetColor(vp.x+col, vp.y+row, HostileChar, core.ColorHostile)
		}
	}
}

func drawRect(dst *core.Screen, vp viewport, r core.Rect, ch rune, c core.Color) {
	c0, r0, c1, r1, ok := vp.cells(r)
	if !ok {
		return
	}
	dst.FillRect(vp.x+c0, vp.y+r0, c1-c0+1, r1-r0+1, ch, c)
}

// drawCenteredMessage draws a message box in the center of the screen.
// The first line is the title.
func drawCenteredMessage(dst *core.Screen, c core.Color, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	for i, l := range lines {
		color := core.ColorHUD
		if i == 0 {
			color = c
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+1+i, l, color)
	}
}
