package shooter

import "math"

const starCount = 36

// Star is one background dot in arena coordinates.
type Star struct {
	X, Y  float64
	R     float64 // radius
	Alpha float64
}

// Starfield returns the background stars at time ms (milliseconds since the
// frontend started). Stars scroll down and sway sideways; the field is a pure
// function of time and arena size and never affects gameplay.
func Starfield(ms float64, b Bounds) []Star {
	if b.W <= 0 || b.H <= 0 {
		return nil
	}
	stars := make([]Star, starCount)
	for i := range stars {
		fi := float64(i)
		x := math.Mod(fi*67, b.W) + math.Sin(ms/400+fi)*20
		y := math.Mod(fi*122, b.H) + math.Mod(ms/18+fi*9, b.H)
		stars[i] = Star{
			X:     x,
			Y:     math.Mod(y, b.H),
			R:     1.2 + float64((i*31)%8)*0.13,
			Alpha: 0.2 + float64(i%3)*0.15,
		}
	}
	return stars
}
