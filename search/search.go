package search

import (
	"fmt"

	"github.com/hecarrillo/ai-maze/grid"
	"github.com/hecarrillo/ai-maze/terrain"
)

// searchContext holds the mutable state of exactly one Search call.
// Nothing in it outlives the call or is shared between calls.
type searchContext struct {
	grid     *grid.Grid
	costs    *terrain.Costs
	agent    terrain.Agent
	order    []grid.Direction
	start    grid.Point
	goal     grid.Point
	reached  func(grid.Point) bool
	annotate bool
	onExpand func(*Node)

	visited  []bool
	tree     *Tree
	expanded int
}

// Search explores g from start with the given algorithm until the goal
// predicate fires or the frontier is exhausted.
// By default the goal predicate is p == goal; WithGoalTest replaces it.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. options must be valid (grid.ErrBadOrder, ErrNilCosts, terrain.ErrBadCost).
//  3. agent must be in the roster (terrain.ErrUnknownAgent).
//  4. start and goal must lie in g (grid.ErrOutOfBounds).
//  5. alg must be declared (ErrUnknownAlgorithm).
//
// An unreachable goal is reported as Found=false, Cost=-1 with a nil error.
func Search(alg Algorithm, g *grid.Grid, agent terrain.Agent, start, goal grid.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("search: %w", o.err)
	}
	if err := o.Costs.Validate(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if !agent.Valid() {
		return nil, fmt.Errorf("search: %w: %v", terrain.ErrUnknownAgent, agent)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("search: start %w: %v", grid.ErrOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("search: goal %w: %v", grid.ErrOutOfBounds, goal)
	}
	if int(alg) >= algorithmCount {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	c := &searchContext{
		grid:     g,
		costs:    o.Costs,
		agent:    agent,
		order:    o.Order,
		start:    start,
		goal:     goal,
		reached:  o.GoalTest,
		annotate: o.Annotate,
		onExpand: o.OnExpand,
		visited:  make([]bool, g.Size()),
		tree:     newTree(64),
	}
	if c.reached == nil {
		c.reached = func(p grid.Point) bool { return p == goal }
	}

	var found int
	switch alg {
	case DFS:
		found = c.dfs()
	case IterativeDFS:
		found = c.dfsIterative()
	case BFS:
		found = c.bfs()
	case AStar:
		found = c.astar()
	}

	res := &Result{
		Algorithm: alg,
		Found:     found >= 0,
		Cost:      -1,
		Tree:      c.tree,
		Expanded:  c.expanded,
	}
	if res.Found {
		res.Cost = c.tree.nodes[found].G
	}

	return res, nil
}

// isVisited reports whether p already entered the visited set.
func (c *searchContext) isVisited(p grid.Point) bool {
	return c.visited[c.grid.Index(p)]
}

// markVisited adds p to the visited set; the set only grows.
func (c *searchContext) markVisited(p grid.Point) {
	c.visited[c.grid.Index(p)] = true
}

// cost returns what the agent pays to enter p.
func (c *searchContext) cost(p grid.Point) int {
	return c.costs.Cost(c.agent, c.grid.Terrain(p))
}

// candidates returns the in-bounds, unvisited, passable neighbors of p
// in the caller's direction order.
func (c *searchContext) candidates(p grid.Point) []grid.Neighbor {
	nbs := c.grid.Neighbors(p, c.order)
	out := nbs[:0]
	for _, n := range nbs {
		if c.isVisited(n.Point) {
			continue
		}
		if c.cost(n.Point) >= terrain.Impassable {
			continue
		}
		out = append(out, n)
	}
	return out
}

// expand records the candidate moves of node i, marks it expanded,
// annotates its cell and runs the OnExpand hook.
func (c *searchContext) expand(i int, cands []grid.Neighbor) {
	n := &c.tree.nodes[i]
	n.Actions = make([]grid.Direction, len(cands))
	for k, nb := range cands {
		n.Actions[k] = nb.Dir
	}
	n.Expanded = true
	c.expanded++

	if c.annotate {
		if m := c.grid.Marker(n.Pos); m == grid.None || m.IsAnnotation() {
			mark := grid.Visited
			if len(cands) > 1 {
				mark = grid.DecisionPoint
			}
			_ = c.grid.SetMarker(n.Pos, mark)
		}
	}
	if c.onExpand != nil {
		c.onExpand(n)
	}
}

// child creates the node reached from parent by neighbor nb, with G
// accumulated from the parent and F = G + h.
func (c *searchContext) child(parent int, nb grid.Neighbor, h int) int {
	g := c.tree.nodes[parent].G + c.cost(nb.Point)
	return c.tree.add(parent, nb.Point, nb.Dir, g, g+h)
}
