package tiling

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for _, tt := range Types() {
		got, err := ParseType(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, got)
	}

	got, err := ParseType(" Hexagon ")
	require.NoError(t, err)
	assert.Equal(t, Hexagon, got)

	_, err = ParseType("pentagon")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestTypeJSON(t *testing.T) {
	data, err := json.Marshal(Triangle)
	require.NoError(t, err)
	assert.JSONEq(t, `"triangle"`, string(data))

	var tt Type
	require.NoError(t, json.Unmarshal([]byte(`"square"`), &tt))
	assert.Equal(t, Square, tt)
	assert.Error(t, json.Unmarshal([]byte(`"circle"`), &tt))
}

func TestPositionJSON(t *testing.T) {
	data, err := json.Marshal([]Position{Pos(0, 0), Pos(-2, 3)})
	require.NoError(t, err)
	assert.JSONEq(t, `[[0,0],[-2,3]]`, string(data))

	var back []Position
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []Position{Pos(0, 0), Pos(-2, 3)}, back)
}

func TestNeighborDirectionCounts(t *testing.T) {
	assert.Len(t, For(Square).NeighborDirections(Pos(3, 1)), 4)
	assert.Len(t, For(Hexagon).NeighborDirections(Pos(3, 1)), 6)
	assert.Len(t, For(Triangle).NeighborDirections(Pos(3, 1)), 3)
	assert.Len(t, For(Triangle).NeighborDirections(Pos(-1, 0)), 3)
}

func TestRotationOrder(t *testing.T) {
	assert.Equal(t, 4, For(Square).RotationOrder())
	assert.Equal(t, 6, For(Hexagon).RotationOrder())
	assert.Equal(t, 6, For(Triangle).RotationOrder())
}

// Every edge must be walkable in both directions: if b is a neighbour of a,
// a must be a neighbour of b.
func TestAdjacencyIsSymmetric(t *testing.T) {
	for _, tt := range Types() {
		g := For(tt)
		for x := -3; x <= 3; x++ {
			for y := -3; y <= 3; y++ {
				p := Pos(x, y)
				for _, n := range Neighbors(g, p) {
					assert.True(t, Adjacent(g, n, p), "%v: %v -> %v has no way back", tt, p, n)
				}
			}
		}
	}
}

func TestTriangleParity(t *testing.T) {
	g := For(Triangle)
	assert.True(t, Pos(0, 0).Upward())
	assert.False(t, Pos(1, 0).Upward())
	assert.False(t, Pos(-1, 0).Upward())
	assert.True(t, Pos(-1, -1).Upward())

	// Every step across an edge flips orientation.
	for _, n := range Neighbors(g, Pos(0, 0)) {
		assert.False(t, n.Upward(), "neighbour %v", n)
	}
	// Rotating any direction by one slot moves it to the other parity set.
	for _, d := range g.NeighborDirections(Pos(0, 0)) {
		assert.Contains(t, g.NeighborDirections(Pos(1, 0)), Rotate(g, d, 1))
	}
}

func TestRotateWraps(t *testing.T) {
	sq := For(Square)
	assert.Equal(t, Direction(0), Rotate(sq, 3, 1))
	assert.Equal(t, Direction(3), Rotate(sq, 0, -1))
	assert.Equal(t, Direction(2), Rotate(For(Hexagon), 5, 3))
}

func TestNeighborPanicsOnUnknownDirection(t *testing.T) {
	assert.Panics(t, func() { For(Square).Neighbor(Pos(0, 0), 4) })
	assert.Panics(t, func() { For(Hexagon).Neighbor(Pos(0, 0), -1) })
	assert.Panics(t, func() { For(Type(9)) })
}

func TestHexagonCenter(t *testing.T) {
	c := For(Hexagon).Center(Pos(2, -1))
	assert.InDelta(t, 3.0, c.X, 1e-9)
	assert.InDelta(t, 0.0, c.Y, 1e-9)

	c = For(Hexagon).Center(Pos(1, 0))
	assert.InDelta(t, 1.5, c.X, 1e-9)
	assert.InDelta(t, math.Sqrt(3)/2, c.Y, 1e-9)
}

// Neighbouring tiles sit exactly one edge apart, so their centres are a
// fixed distance from each other.
func TestNeighborCenterDistance(t *testing.T) {
	want := map[Type]float64{
		Square:   1,
		Hexagon:  math.Sqrt(3),
		Triangle: math.Sqrt(3) / 3,
	}
	for _, tt := range Types() {
		g := For(tt)
		for _, p := range []Position{Pos(0, 0), Pos(1, 0), Pos(-2, 5)} {
			c := g.Center(p)
			for _, n := range Neighbors(g, p) {
				nc := g.Center(n)
				assert.InDelta(t, want[tt], math.Hypot(nc.X-c.X, nc.Y-c.Y), 1e-9, "%v %v->%v", tt, p, n)
			}
		}
	}
}

func TestDirectionName(t *testing.T) {
	assert.Equal(t, "right", For(Square).DirectionName(0))
	assert.Equal(t, "up-right", For(Hexagon).DirectionName(5))
	assert.Equal(t, "down", For(Triangle).DirectionName(4))
}
