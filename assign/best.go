package assign

import (
	"fmt"

	"github.com/hecarrillo/ai-maze/route"
)

// Best picks one shape per agent minimising the combined cost, among the
// combinations whose waypoints together cover the required set.
//
// Combinations are enumerated with first's shapes in the outer loop and
// second's in the inner loop. A combination is skipped when either side
// costs -1. Only a strictly cheaper covering combination replaces the
// current best, so among equal totals the first enumerated wins.
//
// Errors:
//   - ErrNoAssignment if no combination is both reachable and covering.
//   - route.ErrUnknownWaypoint from WithRequired.
//
// Complexity: O(|first|·|second|·|shape|).
func Best(first, second Candidates, opts ...Option) (*Assignment, error) {
	o, err := collect(opts)
	if err != nil {
		return nil, err
	}

	var best *Assignment
	for _, a := range first.Shapes {
		if a.Cost < 0 {
			continue
		}
		for _, b := range second.Shapes {
			if b.Cost < 0 {
				continue
			}
			total := a.Cost + b.Cost
			if best != nil && total >= best.Total {
				continue
			}
			if !covers(a.Shape, b.Shape, o.Required) {
				continue
			}
			best = &Assignment{
				Legs: [2]Leg{
					{Agent: first.Agent, Shape: a.Shape, Cost: a.Cost},
					{Agent: second.Agent, Shape: b.Shape, Cost: b.Cost},
				},
				Total: total,
			}
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: %v and %v over %d×%d shapes",
			ErrNoAssignment, first.Agent, second.Agent, len(first.Shapes), len(second.Shapes))
	}
	return best, nil
}

// covers reports whether every required waypoint appears in a or b.
func covers(a, b route.Shape, required []route.Waypoint) bool {
	for _, w := range required {
		if !a.Contains(w) && !b.Contains(w) {
			return false
		}
	}
	return true
}
