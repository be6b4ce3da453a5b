package tiling

import "math"

// Borders is an axis-aligned box in the continuous plane.
type Borders struct {
	Left, Right, Top, Bottom float64
}

// NewBorders starts a box from the extent of a single tile.
func NewBorders(g Geometry, origin Position) Borders {
	return Bounds(g, origin)
}

// Update returns the union of b and the extent of the tile at p.
// Insertion order never affects the result.
func (b Borders) Update(g Geometry, p Position) Borders {
	return b.Union(Bounds(g, p))
}

// Union returns the smallest box covering both b and o.
func (b Borders) Union(o Borders) Borders {
	return Borders{
		Left:   math.Min(b.Left, o.Left),
		Right:  math.Max(b.Right, o.Right),
		Top:    math.Min(b.Top, o.Top),
		Bottom: math.Max(b.Bottom, o.Bottom),
	}
}

func (b Borders) Width() float64  { return b.Right - b.Left }
func (b Borders) Height() float64 { return b.Bottom - b.Top }

// Contains reports whether pt lies inside b, allowing eps of slack.
func (b Borders) Contains(pt Point, eps float64) bool {
	return pt.X >= b.Left-eps && pt.X <= b.Right+eps &&
		pt.Y >= b.Top-eps && pt.Y <= b.Bottom+eps
}
