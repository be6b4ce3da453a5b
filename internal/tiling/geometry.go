package tiling

import (
	"fmt"
	"math"
)

var sqrt3 = math.Sqrt(3)

// Geometry is the capability table of one tessellation. Pick it once with
// For and pass it around instead of switching on Type at every call site.
type Geometry interface {
	Type() Type

	// Directions returns the master direction list in cyclic order.
	// Rotating a direction by one step moves one slot along this list.
	Directions() []Direction

	// NeighborDirections returns the directions leading out of p.
	NeighborDirections(p Position) []Direction

	// Neighbor returns the tile reached from p by stepping in d.
	// It panics if d is not part of the master list.
	Neighbor(p Position, d Direction) Position

	// Center returns the geometric centre of p in the plane.
	Center(p Position) Point

	// Corners returns the outline of p, clockwise on a y-down canvas.
	Corners(p Position) []Point

	// RotationOrder is the number of distinct discrete rotations.
	RotationOrder() int

	// DirectionName is a human-readable label for d.
	DirectionName(d Direction) string
}

var geometries = map[Type]Geometry{
	Square:   squareGeometry{},
	Hexagon:  hexagonGeometry{},
	Triangle: triangleGeometry{},
}

// For returns the Geometry for t. Validate t with ParseType or Type.Valid
// first: an unknown type is a programming error and panics.
func For(t Type) Geometry {
	g, ok := geometries[t]
	if !ok {
		panic(fmt.Sprintf("tiling: no geometry for %v", t))
	}
	return g
}

// Rotate turns d by r steps along g's master direction list.
func Rotate(g Geometry, d Direction, r int) Direction {
	n := len(g.Directions())
	idx := (int(d) + r) % n
	if idx < 0 {
		idx += n
	}
	return Direction(idx)
}

// Neighbors returns every tile adjacent to p, in NeighborDirections order.
func Neighbors(g Geometry, p Position) []Position {
	dirs := g.NeighborDirections(p)
	out := make([]Position, len(dirs))
	for i, d := range dirs {
		out[i] = g.Neighbor(p, d)
	}
	return out
}

// Adjacent reports whether a and b share an edge.
func Adjacent(g Geometry, a, b Position) bool {
	for _, d := range g.NeighborDirections(a) {
		if g.Neighbor(a, d) == b {
			return true
		}
	}
	return false
}

// Bounds returns the tile-local bounding box of p.
func Bounds(g Geometry, p Position) Borders {
	corners := g.Corners(p)
	b := Borders{
		Left:   corners[0].X,
		Right:  corners[0].X,
		Top:    corners[0].Y,
		Bottom: corners[0].Y,
	}
	for _, c := range corners[1:] {
		b.Left = math.Min(b.Left, c.X)
		b.Right = math.Max(b.Right, c.X)
		b.Top = math.Min(b.Top, c.Y)
		b.Bottom = math.Max(b.Bottom, c.Y)
	}
	return b
}

// step is a translation-invariant neighbour offset with a label.
type step struct {
	name   string
	dx, dy int
}

// lookup panics on directions outside the table rather than guessing.
func lookup(steps []step, kind string, d Direction) step {
	if d < 0 || int(d) >= len(steps) {
		panic(fmt.Sprintf("tiling: direction %d is not defined for %s tiles", int(d), kind))
	}
	return steps[d]
}

func indices(n int) []Direction {
	out := make([]Direction, n)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}
