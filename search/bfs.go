package search

import (
	"github.com/hecarrillo/ai-maze/grid"
)

// bfs runs breadth-first search from c.start with a FIFO queue of node
// indices. Cells are marked visited when enqueued, so no cell is queued twice.
// It returns the index of the closed node, or -1.
func (c *searchContext) bfs() int {
	root := c.tree.add(-1, c.start, grid.Initial, 0, 0)
	c.markVisited(c.start)

	queue := make([]int, 0, 64)
	queue = append(queue, root)
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		pos := c.tree.nodes[i].Pos
		if c.reached(pos) {
			c.tree.close(i)
			return i
		}

		cands := c.candidates(pos)
		for _, nb := range cands {
			child := c.child(i, nb, 0)
			c.markVisited(nb.Point)
			queue = append(queue, child)
		}
		c.expand(i, cands)
	}

	return -1
}
