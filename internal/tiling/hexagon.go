package tiling

// Flat-topped hexagons in axial coordinates. y grows "down" a column and
// x steps half a row down as it moves right.
var hexagonSteps = []step{
	{"up", 0, -1},
	{"up-left", -1, 0},
	{"down-left", -1, 1},
	{"down", 0, 1},
	{"down-right", 1, 0},
	{"up-right", 1, -1},
}

var hexagonDirections = indices(len(hexagonSteps))

type hexagonGeometry struct{}

func (hexagonGeometry) Type() Type                              { return Hexagon }
func (hexagonGeometry) Directions() []Direction                 { return hexagonDirections }
func (hexagonGeometry) NeighborDirections(Position) []Direction { return hexagonDirections }
func (hexagonGeometry) RotationOrder() int                      { return len(hexagonSteps) }

func (hexagonGeometry) Neighbor(p Position, d Direction) Position {
	s := lookup(hexagonSteps, "hexagon", d)
	return Position{X: p.X + s.dx, Y: p.Y + s.dy}
}

func (hexagonGeometry) Center(p Position) Point {
	return Point{
		X: 1.5 * float64(p.X),
		Y: sqrt3 * float64(2*p.Y+p.X) / 2,
	}
}

// Corners walks the six vertices of a hexagon with circumradius 1.
func (g hexagonGeometry) Corners(p Position) []Point {
	c := g.Center(p)
	half := sqrt3 / 2
	return []Point{
		{c.X + 1, c.Y},
		{c.X + 0.5, c.Y + half},
		{c.X - 0.5, c.Y + half},
		{c.X - 1, c.Y},
		{c.X - 0.5, c.Y - half},
		{c.X + 0.5, c.Y - half},
	}
}

func (hexagonGeometry) DirectionName(d Direction) string {
	return lookup(hexagonSteps, "hexagon", d).name
}
