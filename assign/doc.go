// Package assign splits the waypoints of a grid between two agents.
//
// What
//
//   - RouteCost(table, shape) sums the pairwise costs along a shape such as
//     "IKDP"; one unreachable segment makes the whole shape -1.
//   - ShapeCosts(table, shapes) evaluates every shape for one agent.
//   - Best(first, second) picks one shape per agent, minimising the combined
//     cost among combinations whose waypoints together cover I, D, K and P.
//   - Plan(grid, agents) runs the whole pipeline: two route tables, two shape
//     cost lists, the best assignment and a Trace of its legs.
//
// Coverage
//
//	A combination covers the requirement when every required waypoint letter
//	appears in at least one of the two shapes. Pairing "IP" with "IP" never
//	covers D or K and is rejected however cheap it is.
//
// Ties
//
//	Shapes of the first agent form the outer loop. A later combination must
//	be strictly cheaper to replace the current best, so the first enumerated
//	of several equal totals wins.
//
// Errors
//
//   - ErrNoAssignment when no reachable combination covers the requirement.
//     Plan reports this as a nil Report.Assignment rather than an error.
//   - ErrSegmentUnreachable from Trace when a leg can no longer be walked.
//   - route.ErrPairMissing when a table lacks a segment a shape needs.
//
// Complexity
//
//   - Plan: 2·n(n-1) searches for n waypoints, then O(S²) for S shapes.
package assign
