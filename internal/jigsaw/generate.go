// Package jigsaw cuts a base region into interlocking pieces. Each piece is
// grown as a tree from a random root so that it is connected by
// construction, and the forest as a whole covers the region exactly.
package jigsaw

import (
	"fmt"
	"math"
	"time"

	"github.com/rybkr/tilepuzzle/internal/rng"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

const (
	// DefaultMaxRetries bounds how many forests are discarded for being
	// unbalanced before the last one is accepted as is.
	DefaultMaxRetries = 1000

	// adjacentRootRejection is the chance a root candidate touching an
	// existing root is thrown back.
	adjacentRootRejection = 0.95

	// balanceDivisor scales the mean piece size into the upper size limit:
	// limit = figureSize / (pieces * balanceDivisor).
	balanceDivisor = 0.7

	// rootDrawsPerTile sets the default ceiling on root draws before the
	// adjacency rejection is switched off.
	rootDrawsPerTile = 100
)

// Options tunes the partition search.
type Options struct {
	MaxRetries   int       // Forests discarded before accepting one regardless (0 = DefaultMaxRetries)
	MaxRootDraws int       // Root draws before adjacent roots are accepted freely (0 = 100 per tile)
	Deadline     time.Time // Past this instant heuristics are relaxed (zero = none)
}

// Report describes how a partition was reached.
type Report struct {
	Attempts int  // forests grown, including the accepted one
	Balanced bool // accepted forest passed the balance check
	Degraded bool // retry cap or deadline forced acceptance
	Feasible bool // a balanced forest can exist for these sizes at all
}

// Partition splits base into pieces trees. base must be connected and hold
// at least pieces tiles.
//
// A forest is rejected and regrown while any piece has a single tile or
// more than figureSize/(pieces*0.7) tiles. Once the retry budget or the
// deadline is spent the latest forest is returned, so Partition always
// terminates with a complete cover.
func Partition(g tiling.Geometry, base []tiling.Position, pieces int, src rng.Source, opts Options) (*Forest, Report) {
	if pieces < 1 || pieces > len(base) {
		panic(fmt.Sprintf("jigsaw: cannot cut %d tiles into %d pieces", len(base), pieces))
	}

	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	inBase := make(map[tiling.Position]struct{}, len(base))
	for _, p := range base {
		inBase[p] = struct{}{}
	}

	limit := float64(len(base)) / (float64(pieces) * balanceDivisor)
	report := Report{Feasible: balanceFeasible(len(base), pieces, limit)}

	for {
		report.Attempts++
		roots := chooseRoots(g, base, pieces, src, opts)
		forest := growForest(g, inBase, roots, src)

		if isBalanced(forest.Sizes(), limit) {
			report.Balanced = true
			return forest, report
		}
		if !report.Feasible {
			// No size assignment can pass; retrying cannot help.
			return forest, report
		}
		if report.Attempts > maxRetries || pastDeadline(opts.Deadline) {
			report.Degraded = true
			return forest, report
		}
	}
}

// chooseRoots draws distinct root tiles, mostly avoiding roots that touch.
func chooseRoots(g tiling.Geometry, base []tiling.Position, pieces int, src rng.Source, opts Options) []tiling.Position {
	maxDraws := opts.MaxRootDraws
	if maxDraws <= 0 {
		maxDraws = rootDrawsPerTile * len(base)
	}

	roots := make([]tiling.Position, 0, pieces)
	taken := make(map[tiling.Position]struct{}, pieces)
	strict := true

	for draws := 0; len(roots) < pieces; draws++ {
		if strict && draws >= maxDraws {
			strict = false
		}
		if strict && draws%64 == 63 && pastDeadline(opts.Deadline) {
			strict = false
		}

		candidate := rng.Pick(src, base)
		if _, dup := taken[candidate]; dup {
			continue
		}
		if strict && touchesAny(g, candidate, taken) && src.Float64() < adjacentRootRejection {
			continue
		}

		roots = append(roots, candidate)
		taken[candidate] = struct{}{}
	}
	return roots
}

func touchesAny(g tiling.Geometry, p tiling.Position, set map[tiling.Position]struct{}) bool {
	for _, n := range tiling.Neighbors(g, p) {
		if _, ok := set[n]; ok {
			return true
		}
	}
	return false
}

// growForest extends every root at once, one random frontier node per
// step, until all of inBase is assigned.
func growForest(g tiling.Geometry, inBase map[tiling.Position]struct{}, roots []tiling.Position, src rng.Source) *Forest {
	forest := newForest(roots, len(inBase))

	assigned := make(map[tiling.Position]struct{}, len(inBase))
	frontier := make([]int, 0, len(inBase))
	for _, id := range forest.Roots {
		assigned[forest.Nodes[id].Pos] = struct{}{}
		frontier = append(frontier, id)
	}

	type option struct {
		dir tiling.Direction
		pos tiling.Position
	}
	options := make([]option, 0, 6)

	for len(assigned) < len(inBase) {
		if len(frontier) == 0 {
			panic("jigsaw: frontier exhausted before the region was covered; base is not connected")
		}

		i := src.Intn(len(frontier))
		id := frontier[i]
		pos := forest.Nodes[id].Pos

		options = options[:0]
		for _, d := range g.NeighborDirections(pos) {
			n := g.Neighbor(pos, d)
			if _, ok := inBase[n]; !ok {
				continue
			}
			if _, ok := assigned[n]; ok {
				continue
			}
			options = append(options, option{dir: d, pos: n})
		}

		if len(options) == 0 {
			frontier = removeAt(frontier, i)
			continue
		}

		pick := options[src.Intn(len(options))]
		child := forest.attach(id, pick.dir, pick.pos)
		assigned[pick.pos] = struct{}{}
		frontier = append(frontier, child)
	}
	return forest
}

// isBalanced reports whether no piece is a singleton or above limit.
func isBalanced(sizes []int, limit float64) bool {
	for _, s := range sizes {
		if s == 1 || float64(s) > limit {
			return false
		}
	}
	return true
}

// balanceFeasible reports whether sizes exist that pass isBalanced: at least
// two tiles per piece and no more than limit, summing to figureSize.
func balanceFeasible(figureSize, pieces int, limit float64) bool {
	maxSize := int(math.Floor(limit))
	return figureSize >= 2*pieces && pieces*maxSize >= figureSize
}

func pastDeadline(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}

// removeAt deletes index i and keeps the remaining order.
func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}
