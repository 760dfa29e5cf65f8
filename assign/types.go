package assign

import (
	"errors"
	"fmt"

	"github.com/hecarrillo/ai-maze/route"
	"github.com/hecarrillo/ai-maze/search"
	"github.com/hecarrillo/ai-maze/terrain"
)

// Sentinel errors for assignment planning.
var (
	// ErrNoAssignment is returned when no combination of reachable shapes
	// covers the required waypoints.
	ErrNoAssignment = errors.New("assign: no covering assignment")

	// ErrNilTable is returned if a nil route table is passed.
	ErrNilTable = errors.New("assign: route table is nil")

	// ErrSegmentUnreachable is returned by Trace when a leg of the chosen
	// assignment can no longer be walked.
	ErrSegmentUnreachable = errors.New("assign: segment unreachable")
)

// ShapeCost is the total cost of one shape for one agent, -1 when any
// segment is unreachable.
type ShapeCost struct {
	Shape route.Shape
	Cost  int
}

// Candidates are the per-shape costs of one agent.
type Candidates struct {
	Agent  terrain.Agent
	Shapes []ShapeCost
}

// Leg is the shape one agent walks and what it costs.
type Leg struct {
	Agent terrain.Agent
	Shape route.Shape
	Cost  int
}

// Assignment pairs one leg per agent; Total is the sum of both leg costs.
type Assignment struct {
	Legs  [2]Leg
	Total int
}

// Covers returns the union of waypoints visited by both legs, in alphabet order.
func (a Assignment) Covers() []route.Waypoint {
	var out []route.Waypoint
	for _, w := range route.Alphabet() {
		if a.Legs[0].Shape.Contains(w) || a.Legs[1].Shape.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}

func (a Assignment) String() string {
	return fmt.Sprintf("%v:%s(%d) + %v:%s(%d) = %d",
		a.Legs[0].Agent, a.Legs[0].Shape, a.Legs[0].Cost,
		a.Legs[1].Agent, a.Legs[1].Shape, a.Legs[1].Cost,
		a.Total)
}

// SegmentTrace is one walked segment of a leg. Step costs continue from the
// previous segment, so the last step of the last segment carries the leg cost.
type SegmentTrace struct {
	Pair  route.Pair
	Cost  int
	Steps []search.Step
}

// LegTrace is the concrete walk of one Leg.
type LegTrace struct {
	Leg      Leg
	Segments []SegmentTrace
}

// Option configures planning via functional arguments.
type Option func(*Options)

// Options holds the planning parameters.
type Options struct {
	// Required lists the waypoints both legs together must visit.
	Required []route.Waypoint

	// Shapes is the set of shapes each agent may walk.
	Shapes []route.Shape

	// Route configures the catalog Plan builds.
	Route []route.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Required = I, D, K, P
//   - Shapes   = route.Shapes()
//   - default route.Catalog options (A*, Right/Down/Left/Up, default costs)
func DefaultOptions() Options {
	return Options{
		Required: route.Alphabet(),
		Shapes:   route.Shapes(),
	}
}

// WithRequired replaces the coverage requirement.
func WithRequired(ws ...route.Waypoint) Option {
	return func(o *Options) {
		for _, w := range ws {
			if !w.Valid() {
				o.err = fmt.Errorf("%w: %v", route.ErrUnknownWaypoint, w)
				return
			}
		}
		o.Required = append([]route.Waypoint(nil), ws...)
	}
}

// WithShapes replaces the shape set; every shape must validate.
func WithShapes(shapes ...route.Shape) Option {
	return func(o *Options) {
		for _, s := range shapes {
			if err := s.Validate(); err != nil {
				o.err = err
				return
			}
		}
		o.Shapes = append([]route.Shape(nil), shapes...)
	}
}

// WithRouteOptions forwards options to the route.Catalog built by Plan.
func WithRouteOptions(opts ...route.Option) Option {
	return func(o *Options) {
		o.Route = append(o.Route, opts...)
	}
}

func collect(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, fmt.Errorf("assign: %w", o.err)
	}
	return o, nil
}
