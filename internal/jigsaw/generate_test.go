package jigsaw

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/tilepuzzle/internal/rng"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

// rect returns a w×h block of positions anchored at the origin.
func rect(w, h int) []tiling.Position {
	out := make([]tiling.Position, 0, w*h)
	for y := range h {
		for x := range w {
			out = append(out, tiling.Pos(x, y))
		}
	}
	return out
}

// assertCover checks that forest partitions base and that every edge joins
// lattice neighbours of the same piece.
func assertCover(t *testing.T, g tiling.Geometry, base []tiling.Position, f *Forest) {
	t.Helper()

	require.Len(t, f.Nodes, len(base))
	seen := make(map[tiling.Position]bool, len(base))
	for _, n := range f.Nodes {
		assert.False(t, seen[n.Pos], "tile %v assigned twice", n.Pos)
		seen[n.Pos] = true
		for _, e := range n.Children {
			child := f.Nodes[e.Child]
			assert.Equal(t, n.Piece, child.Piece)
			assert.Equal(t, g.Neighbor(n.Pos, e.Dir), child.Pos)
		}
	}
	for _, p := range base {
		assert.True(t, seen[p], "tile %v not covered", p)
	}

	total := 0
	for piece, size := range f.Sizes() {
		assert.Len(t, f.Positions(piece), size)
		total += size
	}
	assert.Equal(t, len(base), total)
}

func TestPartitionCoversBase(t *testing.T) {
	g := tiling.For(tiling.Square)
	base := rect(6, 5)

	for seed := range int64(50) {
		f, report := Partition(g, base, 4, rng.New(seed), Options{})
		assertCover(t, g, base, f)
		assert.Len(t, f.Roots, 4)
		assert.GreaterOrEqual(t, report.Attempts, 1)
		assert.True(t, report.Feasible)
	}
}

func TestPartitionBalancesPieces(t *testing.T) {
	g := tiling.For(tiling.Hexagon)
	base := rect(5, 5)
	limit := float64(len(base)) / (3 * balanceDivisor)

	for seed := range int64(30) {
		f, report := Partition(g, base, 3, rng.New(seed), Options{})
		if !report.Balanced {
			continue
		}
		for _, s := range f.Sizes() {
			assert.Greater(t, s, 1)
			assert.LessOrEqual(t, float64(s), limit)
		}
	}
}

func TestPartitionIsDeterministic(t *testing.T) {
	g := tiling.For(tiling.Triangle)
	base := rect(6, 4)

	a, ra := Partition(g, base, 3, rng.New(99), Options{})
	b, rb := Partition(g, base, 3, rng.New(99), Options{})
	assert.Equal(t, a, b)
	assert.Equal(t, ra, rb)
}

func TestPartitionSingleTile(t *testing.T) {
	g := tiling.For(tiling.Triangle)
	f, report := Partition(g, []tiling.Position{tiling.Pos(0, 0)}, 1, rng.New(1), Options{})

	require.Len(t, f.Nodes, 1)
	assert.Equal(t, tiling.Pos(0, 0), f.Root(0).Pos)
	assert.Equal(t, 1, report.Attempts)
	assert.False(t, report.Feasible)
	assert.False(t, report.Degraded)
}

func TestPartitionEveryTileIsAPiece(t *testing.T) {
	g := tiling.For(tiling.Square)
	base := rect(3, 2)

	f, report := Partition(g, base, len(base), rng.New(5), Options{})
	assertCover(t, g, base, f)
	for _, s := range f.Sizes() {
		assert.Equal(t, 1, s)
	}
	assert.Equal(t, 1, report.Attempts)
}

func TestPartitionStopsAtRetryCap(t *testing.T) {
	g := tiling.For(tiling.Square)
	// A 1×7 strip cut in 3 must produce sizes ≤ 3 each, which random growth
	// misses often; a cap of 1 forces the fallback quickly.
	base := rect(7, 1)

	degraded := false
	for seed := range int64(40) {
		f, report := Partition(g, base, 3, rng.New(seed), Options{MaxRetries: 1})
		assertCover(t, g, base, f)
		assert.LessOrEqual(t, report.Attempts, 2)
		if report.Degraded {
			degraded = true
			assert.False(t, report.Balanced)
			assert.Equal(t, 2, report.Attempts)
		}
	}
	assert.True(t, degraded, "expected at least one seed to exhaust a single retry")
}

func TestPartitionPastDeadlineStillCovers(t *testing.T) {
	g := tiling.For(tiling.Hexagon)
	base := rect(4, 4)

	f, report := Partition(g, base, 5, rng.New(11), Options{Deadline: time.Now().Add(-time.Second)})
	assertCover(t, g, base, f)
	assert.True(t, report.Balanced || report.Degraded)
	assert.Equal(t, 1, report.Attempts)
}

func TestPartitionPanicsOnTooManyPieces(t *testing.T) {
	g := tiling.For(tiling.Square)
	assert.Panics(t, func() {
		Partition(g, rect(2, 1), 3, rng.New(1), Options{})
	})
}

func TestChooseRootsAreDistinct(t *testing.T) {
	g := tiling.For(tiling.Square)
	base := rect(4, 4)

	for seed := range int64(20) {
		roots := chooseRoots(g, base, 16, rng.New(seed), Options{MaxRootDraws: 50})
		assert.Len(t, roots, 16)
		assert.ElementsMatch(t, base, roots)
	}
}

func TestBalanceFeasible(t *testing.T) {
	limit := func(n, p int) float64 { return float64(n) / (float64(p) * balanceDivisor) }

	assert.True(t, balanceFeasible(5, 2, limit(5, 2)))
	assert.True(t, balanceFeasible(20, 10, limit(20, 10)))
	assert.False(t, balanceFeasible(1, 1, limit(1, 1)))
	assert.False(t, balanceFeasible(5, 3, limit(5, 3)))
	// 41 tiles in 20 pieces needs one piece of three, above the limit.
	assert.False(t, balanceFeasible(41, 20, limit(41, 20)))
}

func TestIsBalanced(t *testing.T) {
	assert.True(t, isBalanced([]int{2, 3}, 3.57))
	assert.False(t, isBalanced([]int{1, 4}, 3.57))
	assert.False(t, isBalanced([]int{4, 1}, 5))
	assert.False(t, isBalanced([]int{2, 4}, 3.57))
}
