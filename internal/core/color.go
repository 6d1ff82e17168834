package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the maze views.
const (
	ColorDefault Color = iota
	ColorWallNear
	ColorWallMid
	ColorWallFar
	ColorWallEdge
	ColorFloor
	ColorCeiling
	ColorSprite
	ColorTitle
	ColorCaption
	ColorHUD
	ColorAccent
)

// WallShade returns the wall color for a hit at the given distance.
func WallShade(distance float64) Color {
	switch {
	case distance < 2:
		return ColorWallNear
	case distance < 5:
		return ColorWallMid
	default:
		return ColorWallFar
	}
}
