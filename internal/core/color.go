package core

// Color represents a foreground color hint for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorCyan
	ColorBrightCyan
	ColorOrange
	ColorYellow
	ColorRed
	ColorWhite
	ColorGray
)

// Semantic aliases used by the shooter renderer.
const (
	ColorShip       = ColorBrightCyan
	ColorProjectile = ColorCyan
	ColorHostile    = ColorOrange
	ColorDome       = ColorWhite
	ColorStar       = ColorGray
	ColorHUD        = ColorWhite
	ColorAlert      = ColorRed
	ColorTitle      = ColorYellow
)
