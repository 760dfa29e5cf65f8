package search

import (
	"github.com/hecarrillo/ai-maze/grid"
)

// dfs runs recursive depth-first search from c.start.
// It returns the index of the closed node, or -1.
func (c *searchContext) dfs() int {
	root := c.tree.add(-1, c.start, grid.Initial, 0, 0)
	c.markVisited(c.start)

	return c.dfsVisit(root)
}

// dfsVisit tests node i against the goal, then explores each candidate in
// order, recursing into a child before its later siblings are considered.
// A candidate reached meanwhile by an earlier sibling's subtree is skipped.
func (c *searchContext) dfsVisit(i int) int {
	pos := c.tree.nodes[i].Pos
	if c.reached(pos) {
		c.tree.close(i)
		return i
	}

	cands := c.candidates(pos)
	c.expand(i, cands)
	for _, nb := range cands {
		if c.isVisited(nb.Point) {
			continue
		}
		child := c.child(i, nb, 0)
		c.markVisited(nb.Point)
		if goal := c.dfsVisit(child); goal >= 0 {
			return goal
		}
	}

	return -1
}

// dfsFrame is one level of the explicit stack: a node and the cursor into
// its candidate list.
type dfsFrame struct {
	node  int
	cands []grid.Neighbor
	next  int
}

// dfsIterative runs depth-first search with an explicit stack. Frames are
// processed exactly as dfsVisit's activation records would be, so both
// produce identical trees.
func (c *searchContext) dfsIterative() int {
	root := c.tree.add(-1, c.start, grid.Initial, 0, 0)
	c.markVisited(c.start)
	if c.reached(c.start) {
		c.tree.close(root)
		return root
	}

	stack := []dfsFrame{c.openFrame(root)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.cands) {
			stack = stack[:len(stack)-1]
			continue
		}
		nb := top.cands[top.next]
		top.next++
		if c.isVisited(nb.Point) {
			continue
		}

		child := c.child(top.node, nb, 0)
		c.markVisited(nb.Point)
		if c.reached(nb.Point) {
			c.tree.close(child)
			return child
		}
		stack = append(stack, c.openFrame(child))
	}

	return -1
}

// openFrame expands node i and returns its stack frame.
func (c *searchContext) openFrame(i int) dfsFrame {
	cands := c.candidates(c.tree.nodes[i].Pos)
	c.expand(i, cands)
	return dfsFrame{node: i, cands: cands}
}
