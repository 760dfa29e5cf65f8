package assign

import (
	"fmt"

	"github.com/hecarrillo/ai-maze/route"
)

// RouteCost sums the table costs of shape's consecutive segments.
// The first unreachable segment makes the whole shape -1; later segments
// are not consulted.
//
// Errors:
//   - ErrNilTable if table is nil.
//   - route.ErrBadShape for a malformed shape.
//   - route.ErrPairMissing if a consulted segment has no table entry.
//
// Complexity: O(len(shape)).
func RouteCost(table *route.Table, shape route.Shape) (int, error) {
	if table == nil {
		return 0, ErrNilTable
	}
	if err := shape.Validate(); err != nil {
		return 0, err
	}

	total := 0
	for _, seg := range shape.Segments() {
		cost, ok := table.Cost(seg.From, seg.To)
		if !ok {
			return 0, fmt.Errorf("%w: %v for %v", route.ErrPairMissing, seg, table.Agent)
		}
		if cost < 0 {
			return -1, nil
		}
		total += cost
	}
	return total, nil
}

// ShapeCosts evaluates RouteCost for every shape, keeping the input order.
func ShapeCosts(table *route.Table, shapes []route.Shape) ([]ShapeCost, error) {
	out := make([]ShapeCost, 0, len(shapes))
	for _, s := range shapes {
		cost, err := RouteCost(table, s)
		if err != nil {
			return nil, err
		}
		out = append(out, ShapeCost{Shape: s, Cost: cost})
	}
	return out, nil
}
