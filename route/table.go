package route

import (
	"fmt"

	"github.com/hecarrillo/ai-maze/terrain"
)

// Route is the cost for one agent to travel between two waypoints,
// -1 when the destination is unreachable.
type Route struct {
	From Waypoint
	To   Waypoint
	Cost int
}

// Pair returns the route's endpoints.
func (r Route) Pair() Pair { return Pair{From: r.From, To: r.To} }

func (r Route) String() string {
	return fmt.Sprintf("%v%v=%d", r.From, r.To, r.Cost)
}

// Table holds the pairwise route costs of one agent.
type Table struct {
	// Agent is the agent the costs belong to.
	Agent terrain.Agent

	// Routes lists entries in the order they were computed or supplied.
	Routes []Route

	index map[Pair]int
}

// NewTable indexes routes for agent a. A later entry for the same pair
// replaces an earlier one in lookups.
func NewTable(a terrain.Agent, routes []Route) *Table {
	t := &Table{
		Agent:  a,
		Routes: append([]Route(nil), routes...),
		index:  make(map[Pair]int, len(routes)),
	}
	for i, r := range t.Routes {
		t.index[r.Pair()] = i
	}
	return t
}

// Len returns the number of routes.
func (t *Table) Len() int { return len(t.Routes) }

// Cost returns the cost of from→to; ok is false when the pair is absent.
func (t *Table) Cost(from, to Waypoint) (cost int, ok bool) {
	i, ok := t.index[Pair{From: from, To: to}]
	if !ok {
		return 0, false
	}
	return t.Routes[i].Cost, true
}

// Symmetric reports whether every pair present in both directions has equal
// costs. Pairs whose reverse is absent are ignored.
func (t *Table) Symmetric() bool {
	for _, r := range t.Routes {
		back, ok := t.Cost(r.To, r.From)
		if ok && back != r.Cost {
			return false
		}
	}
	return true
}

// Asymmetries returns the pairs whose cost differs from their reverse, each
// reported once in From→To order of first appearance.
func (t *Table) Asymmetries() []Pair {
	var out []Pair
	seen := make(map[Pair]bool)
	for _, r := range t.Routes {
		p := r.Pair()
		if seen[p] || seen[p.Reverse()] {
			continue
		}
		seen[p] = true
		if back, ok := t.Cost(r.To, r.From); ok && back != r.Cost {
			out = append(out, p)
		}
	}
	return out
}
