package tiling

// Triangles alternate orientation along a row. Upward tiles ((x+y) even)
// use the even slots of the master list, downward tiles the odd ones, so
// rotating by one step always flips orientation.
var triangleSteps = []step{
	{"up-right", 1, 0},
	{"up", 0, -1},
	{"up-left", -1, 0},
	{"down-left", -1, 0},
	{"down", 0, 1},
	{"down-right", 1, 0},
}

var (
	triangleDirections = indices(len(triangleSteps))
	upwardDirections   = []Direction{0, 2, 4}
	downwardDirections = []Direction{1, 3, 5}
)

// triangleHeight is the height of an equilateral triangle with unit sides.
var triangleHeight = sqrt3 / 2

type triangleGeometry struct{}

func (triangleGeometry) Type() Type              { return Triangle }
func (triangleGeometry) Directions() []Direction { return triangleDirections }
func (triangleGeometry) RotationOrder() int      { return len(triangleSteps) }

func (triangleGeometry) NeighborDirections(p Position) []Direction {
	if p.Upward() {
		return upwardDirections
	}
	return downwardDirections
}

func (triangleGeometry) Neighbor(p Position, d Direction) Position {
	s := lookup(triangleSteps, "triangle", d)
	return Position{X: p.X + s.dx, Y: p.Y + s.dy}
}

// Center returns the centroid, which sits a sixth of the height below the
// row midline for upward triangles and above it for downward ones.
func (triangleGeometry) Center(p Position) Point {
	offset := triangleHeight / 6
	if !p.Upward() {
		offset = -offset
	}
	return Point{
		X: 0.5 * float64(p.X),
		Y: triangleHeight*float64(p.Y) + offset,
	}
}

func (g triangleGeometry) Corners(p Position) []Point {
	c := g.Center(p)
	long, short := 2*triangleHeight/3, triangleHeight/3
	if p.Upward() {
		return []Point{
			{c.X, c.Y - long},
			{c.X + 0.5, c.Y + short},
			{c.X - 0.5, c.Y + short},
		}
	}
	return []Point{
		{c.X - 0.5, c.Y - short},
		{c.X + 0.5, c.Y - short},
		{c.X, c.Y + long},
	}
}

func (triangleGeometry) DirectionName(d Direction) string {
	return lookup(triangleSteps, "triangle", d).name
}
