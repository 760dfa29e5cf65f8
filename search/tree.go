package search

import (
	"github.com/hecarrillo/ai-maze/grid"
)

// ClosedPath is the annotation of the node where the goal was reached.
const ClosedPath = "Closed Path"

// Node is one entry of the decision tree.
type Node struct {
	// Pos is the cell this node stands on.
	Pos grid.Point

	// Dir is the move from the parent; grid.Initial for the root.
	Dir grid.Direction

	// G is the sum of entered-cell costs from the root.
	G int

	// F is the priority: G for DFS and BFS, G + heuristic for AStar.
	F int

	// Actions lists the candidate moves at expansion time, in search order.
	Actions []grid.Direction

	// Executed lists the moves actually turned into children.
	Executed []grid.Direction

	// Children holds arena indices of the child nodes, in creation order.
	Children []int

	// Parent is the arena index of the parent node; -1 for the root.
	Parent int

	// Expanded reports whether the node's candidates were computed.
	Expanded bool

	// Closed marks the node where the goal was reached.
	Closed bool
}

// Annotation returns ClosedPath for the goal node, "Initial Point" for the
// root and "" otherwise.
func (n *Node) Annotation() string {
	switch {
	case n.Closed:
		return ClosedPath
	case n.Parent < 0:
		return "Initial Point"
	}
	return ""
}

// Step is one cell of a found path with the cost accumulated on arrival.
type Step struct {
	Point grid.Point
	Dir   grid.Direction
	Cost  int
}

// Edge is a labelled parent→child link of the tree.
type Edge struct {
	Parent, Child int
	Dir           grid.Direction
}

// Tree is an arena of nodes addressed by index. Index 0 is the root.
type Tree struct {
	nodes []Node
	goal  int
}

func newTree(capHint int) *Tree {
	return &Tree{nodes: make([]Node, 0, capHint), goal: -1}
}

// add appends a node and links it under parent (-1 for the root).
// It returns the new node's index.
func (t *Tree) add(parent int, pos grid.Point, dir grid.Direction, g, f int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{Pos: pos, Dir: dir, G: g, F: f, Parent: parent})
	if parent >= 0 {
		p := &t.nodes[parent]
		p.Children = append(p.Children, idx)
		p.Executed = append(p.Executed, dir)
	}
	return idx
}

// close marks node i as the goal node.
func (t *Tree) close(i int) {
	t.nodes[i].Closed = true
	t.goal = i
}

// Root returns the index of the root node.
func (t *Tree) Root() int { return 0 }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a pointer to node i. The pointer is valid until the tree grows,
// which never happens once Search has returned.
func (t *Tree) Node(i int) *Node { return &t.nodes[i] }

// Goal returns the index of the closed node, or -1.
func (t *Tree) Goal() int { return t.goal }

// branch returns the indices from the root to the goal.
func (t *Tree) branch() []int {
	if t.goal < 0 {
		return nil
	}
	var rev []int
	for i := t.goal; i >= 0; i = t.nodes[i].Parent {
		rev = append(rev, i)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// Path returns the cells from the root to the goal, or nil.
func (t *Tree) Path() []grid.Point {
	br := t.branch()
	if br == nil {
		return nil
	}
	out := make([]grid.Point, len(br))
	for k, i := range br {
		out[k] = t.nodes[i].Pos
	}
	return out
}

// Steps returns the root-to-goal branch with moves and accumulated costs.
func (t *Tree) Steps() []Step {
	br := t.branch()
	if br == nil {
		return nil
	}
	out := make([]Step, len(br))
	for k, i := range br {
		n := &t.nodes[i]
		out[k] = Step{Point: n.Pos, Dir: n.Dir, Cost: n.G}
	}
	return out
}

// Walk visits nodes in pre-order, children in creation order, calling fn with
// each index and its depth. Returning false from fn skips that node's subtree.
// The traversal keeps its own stack so deep trees do not grow the call stack.
func (t *Tree) Walk(fn func(i, depth int) bool) {
	if len(t.nodes) == 0 {
		return
	}
	type item struct{ i, depth int }
	stack := []item{{0, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(it.i, it.depth) {
			continue
		}
		ch := t.nodes[it.i].Children
		for k := len(ch) - 1; k >= 0; k-- {
			stack = append(stack, item{ch[k], it.depth + 1})
		}
	}
}

// Edges lists every parent→child link in pre-order. The label is derived
// from the coordinate delta, so it always agrees with the child's Dir.
func (t *Tree) Edges() []Edge {
	out := make([]Edge, 0, len(t.nodes))
	t.Walk(func(i, _ int) bool {
		for _, c := range t.nodes[i].Children {
			d, _ := grid.DirectionBetween(t.nodes[i].Pos, t.nodes[c].Pos)
			out = append(out, Edge{Parent: i, Child: c, Dir: d})
		}
		return true
	})
	return out
}

// Depth returns the number of edges on the longest root-to-leaf branch.
func (t *Tree) Depth() int {
	deepest := 0
	t.Walk(func(_, d int) bool {
		if d > deepest {
			deepest = d
		}
		return true
	})
	return deepest
}
