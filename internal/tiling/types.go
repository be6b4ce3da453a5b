// Package tiling describes the three regular tessellations a puzzle can be
// built on: how tiles are addressed, which tiles touch, and where each tile
// sits in the continuous plane.
package tiling

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownType = errors.New("unknown tile type")

// Type identifies a tessellation.
type Type int

const (
	Square Type = iota
	Hexagon
	Triangle
)

var typeNames = [...]string{
	Square:   "square",
	Hexagon:  "hexagon",
	Triangle: "triangle",
}

// Types lists every supported tessellation.
func Types() []Type {
	return []Type{Square, Hexagon, Triangle}
}

// ParseType maps a name such as "hexagon" to its Type.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want square, hexagon or triangle)", ErrUnknownType, s)
}

// Valid reports whether t is one of the supported tessellations.
func (t Type) Valid() bool {
	return t >= Square && t <= Triangle
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return json.Marshal(typeNames[t])
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Position addresses a tile in the tiling's own integer coordinates.
// It is not a pixel location; see Geometry.Center for that.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{x, y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add offsets p by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset that takes q to p.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Upward reports the orientation a triangle at p has.
// It is meaningless for the other tilings.
func (p Position) Upward() bool {
	return (p.X+p.Y)%2 == 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// MarshalJSON encodes a position as a two-element array, which is what the
// renderer consumes.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// Direction indexes a tiling's master direction list.
type Direction int

// Point is a location in the continuous plane, in units of tile pitch.
type Point struct {
	X, Y float64
}
