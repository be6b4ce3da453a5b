package board

import (
	"errors"
	"fmt"

	"github.com/rybkr/tilepuzzle/internal/tiling"
)

var (
	ErrEmptyPiece     = errors.New("piece has no tiles")
	ErrOutsideBase    = errors.New("piece covers a tile outside the base")
	ErrOverlap        = errors.New("pieces overlap")
	ErrUncovered      = errors.New("base tile not covered by any piece")
	ErrNotContiguous  = errors.New("tiles are not contiguous")
	ErrDuplicateTile  = errors.New("base lists a tile twice")
	ErrMissingOrigin  = errors.New("base does not contain the origin")
	ErrRotationSize   = errors.New("rotation changes piece size")
	ErrRotationCount  = errors.New("wrong number of rotations")
	ErrRotationOrigin = errors.New("rotation does not contain the root")
	ErrOrientation    = errors.New("rootIsUpward does not match tile type")
	ErrDuplicateColor = errors.New("colour used by more than one piece")
	ErrOffCanvas      = errors.New("tile falls outside the normalised canvas")
)

// Validate checks every structural guarantee a generated Result makes.
func (r *Result) Validate() error {
	if err := r.validateBase(); err != nil {
		return err
	}
	if err := r.validatePieces(); err != nil {
		return err
	}
	_, err := NewLayout(r)
	return err
}

// validateBase checks the silhouette: distinct tiles, origin present,
// connected, and every tile inside the unit canvas after normalisation.
func (r *Result) validateBase() error {
	t := r.Base.TileType
	if !t.Valid() {
		return fmt.Errorf("%w: %v", tiling.ErrUnknownType, t)
	}
	g := tiling.For(t)

	inBase := make(map[tiling.Position]struct{}, len(r.Base.PosData))
	for _, p := range r.Base.PosData {
		if _, dup := inBase[p]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicateTile, p)
		}
		inBase[p] = struct{}{}
	}
	if _, ok := inBase[tiling.Pos(0, 0)]; !ok {
		return ErrMissingOrigin
	}

	reached := connectedCount(g, r.Base.PosData, func(p tiling.Position) bool {
		_, ok := inBase[p]
		return ok
	})
	if reached != len(r.Base.PosData) {
		return fmt.Errorf("%w: base (%d of %d tiles reachable)", ErrNotContiguous, reached, len(r.Base.PosData))
	}

	const eps = 1e-9
	for _, p := range r.Base.PosData {
		for _, c := range g.Corners(p) {
			x, y := r.Base.Project(c)
			if x < -eps || x > 1+eps || y < -eps || y > 1+eps {
				return fmt.Errorf("%w: %v at (%.4f, %.4f)", ErrOffCanvas, p, x, y)
			}
		}
	}
	return nil
}

func (r *Result) validatePieces() error {
	t := r.Base.TileType
	order := tiling.For(t).RotationOrder()
	colors := make(map[string]int, len(r.Pieces))

	for i := range r.Pieces {
		p := &r.Pieces[i]
		if len(p.PosDataArray) != order {
			return fmt.Errorf("%w: piece %d has %d, want %d", ErrRotationCount, i, len(p.PosDataArray), order)
		}
		size := p.Size()
		for rot, tiles := range p.PosDataArray {
			if len(tiles) != size {
				return fmt.Errorf("%w: piece %d rotation %d has %d tiles, want %d", ErrRotationSize, i, rot, len(tiles), size)
			}
			if !containsOrigin(tiles) {
				return fmt.Errorf("%w: piece %d rotation %d", ErrRotationOrigin, i, rot)
			}
		}
		if (p.RootIsUpward != nil) != (t == tiling.Triangle) {
			return fmt.Errorf("%w: piece %d", ErrOrientation, i)
		}
		if p.RootIsUpward != nil && *p.RootIsUpward != p.RootPosOnBase.Upward() {
			return fmt.Errorf("%w: piece %d root %v", ErrOrientation, i, p.RootPosOnBase)
		}
		if other, dup := colors[p.Color]; dup {
			return fmt.Errorf("%w: %s on pieces %d and %d", ErrDuplicateColor, p.Color, other, i)
		}
		colors[p.Color] = i
	}
	return nil
}

func containsOrigin(tiles []tiling.Position) bool {
	for _, p := range tiles {
		if p == (tiling.Position{}) {
			return true
		}
	}
	return false
}
