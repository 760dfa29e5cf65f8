package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hecarrillo/ai-maze/grid"
	"github.com/hecarrillo/ai-maze/terrain"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the declared set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrNilCosts is returned when WithCosts receives a nil table.
	ErrNilCosts = errors.New("search: cost table is nil")
)

// Algorithm selects the exploration strategy.
type Algorithm uint8

const (
	// DFS explores depth-first by recursion.
	DFS Algorithm = iota
	// IterativeDFS explores depth-first with an explicit stack.
	IterativeDFS
	// BFS explores level by level with a FIFO queue.
	BFS
	// AStar explores by ascending G + Manhattan distance to the goal.
	AStar

	algorithmCount int = iota
)

var algorithmNames = [algorithmCount]string{"dfs", "iterative-dfs", "bfs", "astar"}

// Algorithms returns every strategy in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, IterativeDFS, BFS, AStar}
}

func (a Algorithm) String() string {
	if int(a) >= algorithmCount {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm accepts the String form of an algorithm, case-insensitive,
// plus the aliases "idfs" and "a*".
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "idfs":
		return IterativeDFS, nil
	case "a*", "a-star":
		return AStar, nil
	}
	for i, n := range algorithmNames {
		if n == s {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Order is the direction order in which neighbors are considered.
	Order []grid.Direction

	// Costs is the movement-cost table.
	Costs *terrain.Costs

	// GoalTest, if non-nil, replaces "p == goal" as the stop predicate.
	// AStar still aims its heuristic at the goal point.
	GoalTest func(p grid.Point) bool

	// Annotate writes Visited or DecisionPoint on each expanded cell whose
	// marker is None or a previous annotation.
	Annotate bool

	// OnExpand is called once per expanded node, after its candidate
	// moves are recorded.
	OnExpand func(n *Node)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - grid.DefaultOrder() (Right, Down, Left, Up)
//   - terrain.DefaultCosts()
//   - goal reached when p == goal
//   - no annotation, no hook
func DefaultOptions() Options {
	return Options{
		Order:    grid.DefaultOrder(),
		Costs:    terrain.DefaultCosts(),
		GoalTest: nil,
		Annotate: false,
		OnExpand: nil,
	}
}

// WithOrder sets the direction order. It must be a permutation of the four
// cardinals; anything else surfaces as grid.ErrBadOrder from Search.
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
			o.err = ErrNilCosts
			return
		}
		o.Costs = c
	}
}

// WithGoalTest replaces the default goal predicate.
func WithGoalTest(fn func(p grid.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.GoalTest = fn
		}
	}
}

// WithAnnotate enables Visited / DecisionPoint markers on the grid.
func WithAnnotate() Option {
	return func(o *Options) {
		o.Annotate = true
	}
}

// WithOnExpand registers a callback run once per expanded node.
func WithOnExpand(fn func(n *Node)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// Result holds the outcome of one search.
type Result struct {
	// Algorithm is the strategy that produced this result.
	Algorithm Algorithm

	// Found reports whether the goal predicate fired.
	Found bool

	// Cost is G of the closed node, or -1 when the goal was not reached.
	Cost int

	// Tree is the decision tree built by the search.
	Tree *Tree

	// Expanded counts nodes whose candidates were computed.
	Expanded int
}

// Path returns the cells from start to goal, or nil when not found.
func (r *Result) Path() []grid.Point {
	return r.Tree.Path()
}

// Steps returns the root-to-goal nodes as steps, or nil when not found.
func (r *Result) Steps() []Step {
	return r.Tree.Steps()
}
