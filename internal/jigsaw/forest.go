package jigsaw

import "github.com/rybkr/tilepuzzle/internal/tiling"

// Edge links a node to one of its children.
type Edge struct {
	Dir   tiling.Direction
	Child int
}

// Node is one tile of a piece. Nodes live in a Forest arena and refer to
// each other by index.
type Node struct {
	Pos      tiling.Position
	Piece    int
	Parent   int // -1 for roots
	Children []Edge
}

// Forest holds one tree per piece. Roots[i] is the arena index of piece i's
// root node.
type Forest struct {
	Nodes []Node
	Roots []int
}

func newForest(roots []tiling.Position, capacity int) *Forest {
	f := &Forest{
		Nodes: make([]Node, 0, capacity),
		Roots: make([]int, len(roots)),
	}
	for i, pos := range roots {
		f.Roots[i] = len(f.Nodes)
		f.Nodes = append(f.Nodes, Node{Pos: pos, Piece: i, Parent: -1})
	}
	return f
}

// attach adds a child of parent reached by stepping in dir and returns its
// arena index.
func (f *Forest) attach(parent int, dir tiling.Direction, pos tiling.Position) int {
	id := len(f.Nodes)
	f.Nodes = append(f.Nodes, Node{
		Pos:    pos,
		Piece:  f.Nodes[parent].Piece,
		Parent: parent,
	})
	f.Nodes[parent].Children = append(f.Nodes[parent].Children, Edge{Dir: dir, Child: id})
	return id
}

// Root returns piece's root node.
func (f *Forest) Root(piece int) *Node {
	return &f.Nodes[f.Roots[piece]]
}

// Sizes returns the tile count of every piece.
func (f *Forest) Sizes() []int {
	sizes := make([]int, len(f.Roots))
	for _, n := range f.Nodes {
		sizes[n.Piece]++
	}
	return sizes
}

// Positions returns the base positions of piece's tiles in pre-order.
func (f *Forest) Positions(piece int) []tiling.Position {
	var out []tiling.Position
	f.Walk(f.Roots[piece], func(n *Node) {
		out = append(out, n.Pos)
	})
	return out
}

// Walk visits the subtree rooted at id in pre-order, children in the order
// they were attached.
func (f *Forest) Walk(id int, visit func(*Node)) {
	n := &f.Nodes[id]
	visit(n)
	for _, e := range n.Children {
		f.Walk(e.Child, visit)
	}
}
