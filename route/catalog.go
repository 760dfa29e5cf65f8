package route

import (
	"fmt"

	"github.com/hecarrillo/ai-maze/grid"
	"github.com/hecarrillo/ai-maze/search"
	"github.com/hecarrillo/ai-maze/terrain"
)

// Option configures a Catalog via functional arguments.
type Option func(*Options)

// Options holds the search parameters shared by every pairwise query.
type Options struct {
	// Algorithm runs each pairwise search.
	Algorithm search.Algorithm

	// Order is the direction order handed to the search.
	Order []grid.Direction

	// Costs is the movement-cost table.
	Costs *terrain.Costs

	// Alphabet lists the waypoints a Table covers.
	Alphabet []Waypoint

	// Starts overrides where Initial lies for a given agent.
	Starts map[terrain.Agent]grid.Point

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - search.AStar
//   - grid.DefaultOrder()
//   - terrain.DefaultCosts()
//   - Alphabet() (I, D, K, P)
//   - Initial located through the agent's start marker
func DefaultOptions() Options {
	return Options{
		Algorithm: search.AStar,
		Order:     grid.DefaultOrder(),
		Costs:     terrain.DefaultCosts(),
		Alphabet:  Alphabet(),
	}
}

// WithAlgorithm picks the strategy for pairwise searches.
func WithAlgorithm(a search.Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithOrder sets the direction order of every pairwise search.
func WithOrder(dirs ...grid.Direction) Option {
	return func(o *Options) {
		if err := grid.ValidateOrder(dirs); err != nil {
			o.err = err
			return
		}
		o.Order = append([]grid.Direction(nil), dirs...)
	}
}

// WithCosts sets the movement-cost table.
func WithCosts(c *terrain.Costs) Option {
	return func(o *Options) {
		if c == nil {
			o.err = search.ErrNilCosts
			return
		}
		o.Costs = c
	}
}

// WithAlphabet restricts or reorders the waypoints a Table covers.
func WithAlphabet(ws ...Waypoint) Option {
	return func(o *Options) {
		for _, w := range ws {
			if !w.Valid() {
				o.err = fmt.Errorf("%w: %v", ErrUnknownWaypoint, w)
				return
			}
		}
		o.Alphabet = append([]Waypoint(nil), ws...)
	}
}

// WithStart places Initial for agent a at p, bypassing the start marker.
// This lets agents without a start role take part in planning.
func WithStart(a terrain.Agent, p grid.Point) Option {
	return func(o *Options) {
		if !a.Valid() {
			o.err = fmt.Errorf("%w: %v", terrain.ErrUnknownAgent, a)
			return
		}
		if o.Starts == nil {
			o.Starts = make(map[terrain.Agent]grid.Point)
		}
		o.Starts[a] = p
	}
}

// Catalog answers point-to-point cost queries between the waypoints of one
// grid. Every query runs its own search; nothing is cached between calls.
type Catalog struct {
	grid *grid.Grid
	opts Options
}

// NewCatalog validates opts against g and returns a Catalog.
//
// Errors:
//   - ErrNilGrid if g is nil.
//   - grid.ErrBadOrder, search.ErrNilCosts, ErrUnknownWaypoint,
//     terrain.ErrUnknownAgent from the options.
//   - terrain.ErrBadCost if the cost table is invalid.
//   - grid.ErrOutOfBounds if a WithStart point lies outside g.
func NewCatalog(g *grid.Grid, opts ...Option) (*Catalog, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("route: %w", o.err)
	}
	if err := o.Costs.Validate(); err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}
	for a, p := range o.Starts {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("route: start of %v %w: %v", a, grid.ErrOutOfBounds, p)
		}
	}

	return &Catalog{grid: g, opts: o}, nil
}

// Grid returns the grid the catalog searches.
func (c *Catalog) Grid() *grid.Grid { return c.grid }

// Alphabet returns the configured waypoints.
func (c *Catalog) Alphabet() []Waypoint {
	return append([]Waypoint(nil), c.opts.Alphabet...)
}

// Locate returns the cell of waypoint w for agent a.
func (c *Catalog) Locate(a terrain.Agent, w Waypoint) (grid.Point, error) {
	if w == Initial {
		if p, ok := c.opts.Starts[a]; ok {
			return p, nil
		}
	}
	m, err := w.Marker(a)
	if err != nil {
		return grid.Point{}, err
	}
	p, ok := c.grid.Locate(m)
	if !ok {
		return grid.Point{}, fmt.Errorf("%w: %v (%v) for %v", ErrWaypointMissing, w, m, a)
	}
	return p, nil
}

// Find runs one fresh search for agent a from waypoint from to waypoint to
// and returns the full result, tree included.
func (c *Catalog) Find(a terrain.Agent, from, to Waypoint) (*search.Result, error) {
	src, err := c.Locate(a, from)
	if err != nil {
		return nil, err
	}
	dst, err := c.Locate(a, to)
	if err != nil {
		return nil, err
	}

	return search.Search(c.opts.Algorithm, c.grid, a, src, dst,
		search.WithOrder(c.opts.Order...),
		search.WithCosts(c.opts.Costs),
	)
}

// PairwiseCost returns the cost of the path found from one waypoint to
// another, or -1 when the target cannot be reached. A and B are searched
// independently of B and A.
func (c *Catalog) PairwiseCost(a terrain.Agent, from, to Waypoint) (int, error) {
	res, err := c.Find(a, from, to)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// Table computes PairwiseCost for every ordered pair of the alphabet, once.
//
// Complexity: n(n-1) searches for n waypoints.
func (c *Catalog) Table(a terrain.Agent) (*Table, error) {
	pairs := Pairs(c.opts.Alphabet)
	routes := make([]Route, 0, len(pairs))
	for _, p := range pairs {
		cost, err := c.PairwiseCost(a, p.From, p.To)
		if err != nil {
			return nil, err
		}
		routes = append(routes, Route{From: p.From, To: p.To, Cost: cost})
	}

	return NewTable(a, routes), nil
}
