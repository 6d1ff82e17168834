// Package view draws the maze scenes into a core.Screen: the first-person
// raycast view of the maze and the animated menu scene. Views only read
// state; they never drive the simulation.
package view

import (
	"math"

	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/maze"
	"github.com/vovakirdan/mazewalk/internal/world"
)

// Wall glyphs from nearest to farthest.
var (
	wallGlyphsX = []rune{'█', '▓', '▒', '░'}
	wallGlyphsZ = []rune{'▓', '▒', '░', '·'}
)

const (
	floorGlyph = '.'

	// wallScale is the on-screen wall height, in rows per screen height,
	// of a wall one world unit away.
	wallScale = 1.0
)

// FirstPerson renders the maze as seen from a pose.
type FirstPerson struct {
	Grid *world.Grid
}

// Column describes what one screen column shows.
type Column struct {
	Hit    world.RayHit
	OK     bool
	Top    int // First wall row
	Height int // Wall rows
}

// Columns casts one ray per screen column across the field of view.
// Column 0 is the left edge. Distances are corrected for fisheye so
// flat walls stay flat.
func (v FirstPerson) Columns(pose maze.Pose, fov float64, width, height int) []Column {
	cols := make([]Column, width)
	if v.Grid == nil || width <= 0 || height <= 0 {
		return cols
	}

	for x := range cols {
		// Positive yaw turns left, so the left edge sits at yaw + fov/2.
		offset := fov/2 - (float64(x)+0.5)/float64(width)*fov
		hit, ok := v.Grid.Ray(pose.Position, core.YawForward(pose.Yaw+offset))
		if !ok {
			continue
		}

		perp := hit.Distance * math.Cos(offset*math.Pi/180)
		wall := height
		if perp > 0 {
			wall = int(math.Round(float64(height) * wallScale / perp))
		}
		wall = core.Clamp(wall, 0, height)

		cols[x] = Column{
			Hit:    hit,
			OK:     true,
			Top:    (height - wall) / 2,
			Height: wall,
		}
	}
	return cols
}

// Render draws the view into dst, filling it completely.
func (v FirstPerson) Render(dst *core.Screen, pose maze.Pose, fov float64) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	horizon := h / 2

	for y := horizon; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetColored(x, y, floorGlyph, core.ColorFloor)
		}
	}

	cols := v.Columns(pose, fov, w, h)
	for x, col := range cols {
		if !col.OK || col.Height == 0 {
			continue
		}

		glyph := wallGlyph(col.Hit)
		color := core.WallShade(col.Hit.Distance)
		if x > 0 && cols[x-1].OK && edgeBetween(cols[x-1].Hit, col.Hit) {
			glyph = '│'
			color = core.ColorWallEdge
		}
		dst.DrawVLine(x, col.Top, col.Height, glyph, color)
	}
}

// wallGlyph picks a glyph by distance, darker for z-facing walls.
func wallGlyph(hit world.RayHit) rune {
	glyphs := wallGlyphsX
	if hit.Side == world.SideZ {
		glyphs = wallGlyphsZ
	}

	i := int(hit.Distance / 3)
	return glyphs[core.Clamp(i, 0, len(glyphs)-1)]
}

// edgeBetween reports whether two neighbouring columns see different wall faces.
func edgeBetween(a, b world.RayHit) bool {
	return a.Side != b.Side || a.Cell != b.Cell
}

// Heading returns the compass letter for a yaw. Row 0 of a layout is north.
func Heading(yaw float64) string {
	switch int(math.Round(core.NormalizeDeg(yaw)/90)) % 4 {
	case 0:
		return "N"
	case 1:
		return "W"
	case 2:
		return "S"
	default:
		return "E"
	}
}
