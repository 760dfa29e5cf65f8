package search

import (
	"container/heap"

	"github.com/hecarrillo/ai-maze/grid"
)

// astar runs A* from c.start towards c.goal with h = Manhattan distance.
// Duplicate heap entries for one cell are allowed; entries whose cell is
// already visited are discarded when popped (lazy deletion).
// It returns the index of the closed node, or -1.
func (c *searchContext) astar() int {
	h := grid.Manhattan(c.start, c.goal)
	root := c.tree.add(-1, c.start, grid.Initial, 0, h)

	pq := make(openList, 0, 64)
	heap.Init(&pq)
	seq := 0
	heap.Push(&pq, openItem{node: root, f: h, seq: seq})
	seq++

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(openItem)
		pos := c.tree.nodes[it.node].Pos

		// stale entry: a cheaper or earlier entry for this cell was expanded
		if c.isVisited(pos) {
			continue
		}
		c.markVisited(pos)

		if c.reached(pos) {
			c.tree.close(it.node)
			return it.node
		}

		cands := c.candidates(pos)
		for _, nb := range cands {
			child := c.child(it.node, nb, grid.Manhattan(nb.Point, c.goal))
			heap.Push(&pq, openItem{node: child, f: c.tree.nodes[child].F, seq: seq})
			seq++
		}
		c.expand(it.node, cands)
	}

	return -1
}

// openItem is a heap entry: a node index, its priority and its insertion
// sequence number, which breaks ties between equal priorities.
type openItem struct {
	node int
	f    int
	seq  int
}

// openList is a min-heap of openItem ordered by f, then seq.
type openList []openItem

// Len returns the number of items in the heap.
func (pq openList) Len() int { return len(pq) }

// Less orders by ascending f; equal f pops in insertion order.
func (pq openList) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq openList) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *openList) Push(x interface{}) { *pq = append(*pq, x.(openItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *openList) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
