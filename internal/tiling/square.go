package tiling

var squareSteps = []step{
	{"right", 1, 0},
	{"up", 0, -1},
	{"left", -1, 0},
	{"down", 0, 1},
}

var squareDirections = indices(len(squareSteps))

// squareGeometry is the unit grid. Every tile exposes all four directions.
type squareGeometry struct{}

func (squareGeometry) Type() Type                              { return Square }
func (squareGeometry) Directions() []Direction                 { return squareDirections }
func (squareGeometry) NeighborDirections(Position) []Direction { return squareDirections }
func (squareGeometry) RotationOrder() int                      { return len(squareSteps) }

func (squareGeometry) Neighbor(p Position, d Direction) Position {
	s := lookup(squareSteps, "square", d)
	return Position{X: p.X + s.dx, Y: p.Y + s.dy}
}

func (squareGeometry) Center(p Position) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

func (g squareGeometry) Corners(p Position) []Point {
	c := g.Center(p)
	return []Point{
		{c.X - 0.5, c.Y - 0.5},
		{c.X + 0.5, c.Y - 0.5},
		{c.X + 0.5, c.Y + 0.5},
		{c.X - 0.5, c.Y + 0.5},
	}
}

func (squareGeometry) DirectionName(d Direction) string {
	return lookup(squareSteps, "square", d).name
}
