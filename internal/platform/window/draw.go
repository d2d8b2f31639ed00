package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

var (
	colorSpace      = color.RGBA{R: 5, G: 7, B: 18, A: 255}
	colorShip       = color.RGBA{R: 100, G: 220, B: 255, A: 255}
	colorHostile    = color.RGBA{R: 255, G: 120, B: 70, A: 255}
	colorDome       = color.RGBA{R: 255, G: 210, B: 120, A: 255}
	colorProjectile = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	colorOverlay    = color.RGBA{A: 170}
)

// whitePixel is the source image for DrawTriangles.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

func drawStars(dst *ebiten.Image, stars []shooter.Star) {
	for _, s := range stars {
		a := uint8(s.Alpha * 255)
		vector.DrawFilledCircle(dst, float32(s.X), float32(s.Y), float32(s.R), color.RGBA{R: a, G: a, B: a, A: a}, true)
	}
}

// drawShip draws the player as an upward triangle filling its box.
func drawShip(dst *ebiten.Image, r core.Rect) {
	var path vector.Path
	path.MoveTo(float32(r.X+r.W/2), float32(r.Y))
	path.LineTo(float32(r.X+r.W), float32(r.Y+r.H))
	path.LineTo(float32(r.X), float32(r.Y+r.H))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := colorShip.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawHostile draws a saucer: a disc with a dome on top.
func drawHostile(dst *ebiten.Image, r core.Rect) {
	x, y := r.Center()
	cx, cy := float32(x), float32(y)
	radius := float32(min(r.W, r.H) / 2)
	vector.DrawFilledCircle(dst, cx, cy, radius, colorHostile, true)
	vector.DrawFilledCircle(dst, cx, cy-radius/2, radius/2, colorDome, true)
}

func drawProjectile(dst *ebiten.Image, r core.Rect) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorProjectile, false)
}

// drawOverlay dims the arena and prints lines near its center.
func drawOverlay(dst *ebiten.Image, b shooter.Bounds, lines ...string) {
	vector.DrawFilledRect(dst, 0, 0, float32(b.W), float32(b.H), colorOverlay, false)
	// DebugPrint glyphs are 6x16.
	y := int(b.H)/2 - len(lines)*8
	for _, line := range lines {
		x := (int(b.W) - len(line)*6) / 2
		ebitenutil.DebugPrintAt(dst, line, x, y)
		y += 16
	}
}

// drawSnapshot renders one frame of the match.
func drawSnapshot(dst *ebiten.Image, snap shooter.Snapshot, stars []shooter.Star, paused bool, best int) {
	dst.Fill(colorSpace)
	drawStars(dst, stars)

	if snap.Phase == core.PhaseMenu {
		lines := []string{"SPACE SHOOTER", "", "Arrows/WASD move   Space fire", "", "Press Enter to start"}
		if best > 0 {
			lines = append(lines, "", fmt.Sprintf("Best: %d", best))
		}
		drawOverlay(dst, snap.Bounds, lines...)
		return
	}

	for _, p := range snap.Projectiles {
		drawProjectile(dst, p)
	}
	for _, h := range snap.Hostiles {
		drawHostile(dst, h)
	}
	drawShip(dst, snap.Player)

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d   Level: %d", snap.Score, snap.Level), 8, 6)

	switch {
	case snap.Phase == core.PhaseGameOver:
		drawOverlay(dst, snap.Bounds, "GAME OVER", "", fmt.Sprintf("Score: %d", snap.Score), "", "R: play again   Esc: quit")
	case paused:
		drawOverlay(dst, snap.Bounds, "PAUSED", "", "P: resume")
	}
}
