package assign

import (
	"errors"
	"fmt"

	"github.com/hecarrillo/ai-maze/grid"
	"github.com/hecarrillo/ai-maze/route"
	"github.com/hecarrillo/ai-maze/search"
	"github.com/hecarrillo/ai-maze/terrain"
)

// Report is the outcome of Plan for two agents.
type Report struct {
	// Agents are the two planned agents, in the order given to Plan.
	Agents [2]terrain.Agent

	// Tables holds each agent's pairwise route costs.
	Tables [2]*route.Table

	// Candidates holds each agent's per-shape costs.
	Candidates [2]Candidates

	// Assignment is the best covering assignment, nil when none exists.
	Assignment *Assignment

	// Traces walks each leg of Assignment; empty when Assignment is nil.
	Traces []LegTrace
}

// Plan runs the whole pipeline on g: one route table per agent, the cost of
// every shape, the best covering assignment and a trace of its two legs.
// Finding no covering assignment is a normal outcome: Report.Assignment is
// nil and the error is nil.
//
// Errors:
//   - route.ErrNilGrid, route.ErrWaypointMissing, route.ErrNoStartRole and
//     option errors from the catalog.
//   - terrain.ErrUnknownAgent for an agent outside the roster.
func Plan(g *grid.Grid, agents [2]terrain.Agent, opts ...Option) (*Report, error) {
	o, err := collect(opts)
	if err != nil {
		return nil, err
	}
	for _, a := range agents {
		if !a.Valid() {
			return nil, fmt.Errorf("assign: %w: %v", terrain.ErrUnknownAgent, a)
		}
	}
	catalog, err := route.NewCatalog(g, o.Route...)
	if err != nil {
		return nil, err
	}

	rep := &Report{Agents: agents}
	for i, a := range agents {
		table, err := catalog.Table(a)
		if err != nil {
			return nil, err
		}
		costs, err := ShapeCosts(table, o.Shapes)
		if err != nil {
			return nil, err
		}
		rep.Tables[i] = table
		rep.Candidates[i] = Candidates{Agent: a, Shapes: costs}
	}

	best, err := Best(rep.Candidates[0], rep.Candidates[1], WithRequired(o.Required...))
	switch {
	case errors.Is(err, ErrNoAssignment):
		return rep, nil
	case err != nil:
		return nil, err
	}
	rep.Assignment = best

	rep.Traces, err = Trace(catalog, *best)
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// Trace re-runs the catalog search for every segment of both legs and
// returns the concrete cells walked. Costs accumulate across the segments of
// one leg and restart at zero for the next leg.
func Trace(c *route.Catalog, a Assignment) ([]LegTrace, error) {
	out := make([]LegTrace, 0, len(a.Legs))
	for _, leg := range a.Legs {
		lt := LegTrace{Leg: leg}
		running := 0
		for _, seg := range leg.Shape.Segments() {
			res, err := c.Find(leg.Agent, seg.From, seg.To)
			if err != nil {
				return nil, err
			}
			if !res.Found {
				return nil, fmt.Errorf("%w: %v for %v", ErrSegmentUnreachable, seg, leg.Agent)
			}
			lt.Segments = append(lt.Segments, SegmentTrace{
				Pair:  seg,
				Cost:  res.Cost,
				Steps: offset(res.Steps(), running),
			})
			running += res.Cost
		}
		out = append(out, lt)
	}
	return out, nil
}

// offset shifts the cumulative cost of every step by base.
func offset(steps []search.Step, base int) []search.Step {
	for i := range steps {
		steps[i].Cost += base
	}
	return steps
}

// Cost returns the sum of segment costs, which equals the leg cost whenever
// the grid has not changed since the tables were built.
func (lt LegTrace) Cost() int {
	total := 0
	for _, s := range lt.Segments {
		total += s.Cost
	}
	return total
}

// Path returns every cell of the leg in walking order. A waypoint shared by
// two consecutive segments appears once.
func (lt LegTrace) Path() []grid.Point {
	var out []grid.Point
	for i, s := range lt.Segments {
		for k, st := range s.Steps {
			if i > 0 && k == 0 {
				continue
			}
			out = append(out, st.Point)
		}
	}
	return out
}
