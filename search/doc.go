// Package search explores a grid.Grid from a start cell towards a goal with
// one of four strategies, recording every expansion in a decision tree.
//
// What
//
//   - Search(alg, g, agent, start, goal, opts...) runs DFS, IterativeDFS, BFS
//     or AStar and returns a Result: whether the goal was reached, the cost of
//     the path found (-1 when not found) and the full search Tree.
//   - The Tree is an arena: nodes live in one slice and reference their
//     children by index. Each node records its position, the move that reached
//     it, the accumulated cost G, the priority F, the candidate moves seen at
//     expansion time (Actions) and the subset turned into children (Executed).
//     The node where the goal was reached is marked Closed ("Closed Path").
//
// Expansion rule (all strategies)
//
//	From a node at p, for each direction of the caller's order, the neighbor is
//	a candidate iff it is in bounds, not yet visited and passable for the
//	agent (cost < terrain.Impassable). Entering a cell adds its cost to G.
//
//	  - DFS / IterativeDFS: a child is created and explored before its later
//	    siblings are considered; a cell is visited when its node is created.
//	    Both variants build the same tree; IterativeDFS keeps its own stack.
//	  - BFS: FIFO queue; every candidate becomes a child and is marked visited
//	    when enqueued.
//	  - AStar: min-heap on F = G + Manhattan(p, goal), ties broken by
//	    insertion order. A cell is visited when popped; stale duplicates are
//	    discarded (lazy deletion). With every cost ≥ 1 the heuristic is
//	    consistent, so the first goal pop is optimal.
//
// Determinism
//
//	The same grid, agent and direction order always produce the same tree.
//
// Options
//
//   - WithOrder(dirs...)   expansion order; default grid.DefaultOrder().
//   - WithCosts(c)         cost table; default terrain.DefaultCosts().
//   - WithGoalTest(fn)     stop predicate replacing "p == goal".
//   - WithAnnotate()       mark expanded cells Visited or DecisionPoint.
//   - WithOnExpand(fn)     hook run once per expanded node.
//
// Errors
//
//   - ErrNilGrid              if g is nil.
//   - ErrUnknownAlgorithm     for an undeclared Algorithm.
//   - grid.ErrOutOfBounds     if start or goal lie outside g.
//   - grid.ErrBadOrder        if the order is not a permutation of U, R, D, L.
//   - terrain.ErrUnknownAgent if the agent is outside the roster.
//   - terrain.ErrBadCost      if the cost table is invalid.
//
// Not reaching the goal is not an error: Result.Found is false and Cost is -1.
//
// Complexity (N = Rows×Cols)
//
//   - DFS, IterativeDFS, BFS: O(N) time, O(N) memory.
//   - AStar: O(N log N) time, O(N) memory (at most 4 heap entries per cell).
package search
