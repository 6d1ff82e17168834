package world

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/maze"
)

// CellSize is the width of one grid cell in world units.
const CellSize = 2.0

// Side tells which kind of cell boundary a ray crossed last.
type Side int

const (
	SideX Side = iota // Crossed a boundary of constant x
	SideZ             // Crossed a boundary of constant z
)

// RayHit describes the first solid cell a ray enters.
type RayHit struct {
	Distance float64 // World units from the origin
	Cell     Cell
	Side     Side
}

// Grid is the solid geometry of a layout. Everything outside the layout
// counts as wall, so every horizontal ray eventually hits something.
type Grid struct {
	width    int
	height   int
	walls    mapset.Set[Cell]
	start    Cell
	startYaw float64
}

// NewGrid builds the grid for a layout.
func NewGrid(l Layout) *Grid {
	g := &Grid{
		width:    l.Width,
		height:   l.Height,
		walls:    mapset.New[Cell](),
		start:    l.Start,
		startYaw: l.StartYaw,
	}
	for r, row := range l.Rows {
		for c, ch := range []rune(row) {
			if ch != CharFloor {
				g.walls.Put(Cell{Col: c, Row: r})
			}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the cell is inside the layout.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// Solid reports whether the cell blocks movement and sight.
func (g *Grid) Solid(c Cell) bool {
	return !g.InBounds(c) || g.walls.Has(c)
}

// CellAt returns the cell containing a world position.
func (g *Grid) CellAt(p core.Vec3) Cell {
	return Cell{
		Col: int(math.Floor(p.X / CellSize)),
		Row: int(math.Floor(p.Z / CellSize)),
	}
}

// Center returns the world position of a cell's center at the given height.
func (g *Grid) Center(c Cell, height float64) core.Vec3 {
	return core.V3(
		float64(c.Col)*CellSize+CellSize/2,
		height,
		float64(c.Row)*CellSize+CellSize/2,
	)
}

// Start returns the spawn pose for a player whose eyes are at eyeHeight.
func (g *Grid) Start(eyeHeight float64) maze.Pose {
	return maze.Pose{
		Position: g.Center(g.start, eyeHeight),
		Yaw:      g.startYaw,
	}
}

// Cast implements maze.Prober. It returns the nearest wall along the
// horizontal projection of dir, or nothing if dir has no horizontal part.
func (g *Grid) Cast(origin, dir core.Vec3) []maze.Hit {
	hit, ok := g.Ray(origin, dir)
	if !ok {
		return nil
	}
	return []maze.Hit{{Distance: hit.Distance}}
}

// Ray walks the grid from origin along dir with a DDA traversal and
// returns the first solid cell it enters. An origin inside a solid cell
// hits at distance zero.
func (g *Grid) Ray(origin, dir core.Vec3) (RayHit, bool) {
	dx, dz := dir.X, dir.Z
	length := math.Hypot(dx, dz)
	if length == 0 {
		return RayHit{}, false
	}
	dx /= length
	dz /= length

	// Work in cell units.
	ox, oz := origin.X/CellSize, origin.Z/CellSize
	cell := Cell{Col: int(math.Floor(ox)), Row: int(math.Floor(oz))}
	if g.Solid(cell) {
		return RayHit{Distance: 0, Cell: cell, Side: SideX}, true
	}

	deltaX, deltaZ := math.Inf(1), math.Inf(1)
	if dx != 0 {
		deltaX = math.Abs(1 / dx)
	}
	if dz != 0 {
		deltaZ = math.Abs(1 / dz)
	}

	stepX, sideX := 1, math.Inf(1)
	switch {
	case dx < 0:
		stepX = -1
		sideX = (ox - float64(cell.Col)) * deltaX
	case dx > 0:
		sideX = (float64(cell.Col) + 1 - ox) * deltaX
	}

	stepZ, sideZ := 1, math.Inf(1)
	switch {
	case dz < 0:
		stepZ = -1
		sideZ = (oz - float64(cell.Row)) * deltaZ
	case dz > 0:
		sideZ = (float64(cell.Row) + 1 - oz) * deltaZ
	}

	// Leaving the layout always ends the walk, so this bound is never reached
	// by a ray that starts inside it.
	limit := g.width + g.height + 2
	for i := 0; i <= limit; i++ {
		var dist float64
		var side Side
		if sideX < sideZ {
			dist = sideX
			sideX += deltaX
			cell.Col += stepX
			side = SideX
		} else {
			dist = sideZ
			sideZ += deltaZ
			cell.Row += stepZ
			side = SideZ
		}

		if g.Solid(cell) {
			return RayHit{Distance: dist * CellSize, Cell: cell, Side: side}, true
		}
	}
	return RayHit{}, false
}
