package grid

import (
	"fmt"
	"strings"

	"github.com/hecarrillo/ai-maze/terrain"
)

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the point one cell away from p in direction d.
// Initial returns p unchanged.
func (p Point) Step(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Point) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction labels a move between orthogonally adjacent cells.
// Initial labels the root of a search, which was reached by no move.
type Direction uint8

const (
	Initial Direction = iota
	Up
	Right
	Down
	Left
)

var directionLetters = [...]byte{Initial: 'I', Up: 'U', Right: 'R', Down: 'D', Left: 'L'}

// Cardinals returns the four moves in clockwise order starting at Up.
func Cardinals() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// DefaultOrder returns the expansion order used when the caller picks none:
// Right, Down, Left, Up.
func DefaultOrder() []Direction {
	return []Direction{Right, Down, Left, Up}
}

// Delta returns the (row, col) offset of one step in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 0
}

// Letter returns the one-letter label of d: U, R, D, L or I.
func (d Direction) Letter() byte {
	if int(d) >= len(directionLetters) {
		return '?'
	}
	return directionLetters[d]
}

func (d Direction) String() string {
	switch d {
	case Initial:
		return "Initial"
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionBetween returns the move that leads from one cell to an
// orthogonally adjacent one. ok is false when the cells are not adjacent.
func DirectionBetween(from, to Point) (d Direction, ok bool) {
	for _, c := range Cardinals() {
		if from.Step(c) == to {
			return c, true
		}
	}
	return Initial, false
}

// ValidateOrder checks that order is a permutation of the four cardinals.
func ValidateOrder(order []Direction) error {
	if len(order) != 4 {
		return fmt.Errorf("%w: got %d directions", ErrBadOrder, len(order))
	}
	var seen [5]bool
	for _, d := range order {
		if d == Initial || int(d) >= len(seen) {
			return fmt.Errorf("%w: invalid direction %v", ErrBadOrder, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: %v repeated", ErrBadOrder, d)
		}
		seen[d] = true
	}
	return nil
}

// ParseOrder reads a direction order written as letters, e.g. "RDLU".
func ParseOrder(s string) ([]Direction, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	order := make([]Direction, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'U':
			order = append(order, Up)
		case 'R':
			order = append(order, Right)
		case 'D':
			order = append(order, Down)
		case 'L':
			order = append(order, Left)
		default:
			return nil, fmt.Errorf("%w: letter %q", ErrBadOrder, s[i])
		}
	}
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// FormatOrder writes order back as letters.
func FormatOrder(order []Direction) string {
	b := make([]byte, len(order))
	for i, d := range order {
		b[i] = d.Letter()
	}
	return string(b)
}

// Marker annotates a cell for the search and presentation layers.
type Marker uint8

const (
	None Marker = iota
	InitialPoint
	Target
	Visited
	DecisionPoint
	HumanStart
	OctopusStart
	DarkTemple
	PortalKey
	Portal

	markerCount int = iota
)

var markerInfo = [markerCount]struct {
	name   string
	symbol string
}{
	None:          {"None", ""},
	InitialPoint:  {"Initial Point", "I"},
	Target:        {"Target", "X"},
	Visited:       {"Visited", "V"},
	DecisionPoint: {"Decision Point", "C"},
	HumanStart:    {"Human", "H"},
	OctopusStart:  {"Octopus", "O"},
	DarkTemple:    {"Dark Temple", "D"},
	PortalKey:     {"Portal Key", "K"},
	Portal:        {"Portal", "P"},
}

func (m Marker) String() string {
	if int(m) >= markerCount {
		return fmt.Sprintf("Marker(%d)", uint8(m))
	}
	return markerInfo[m].name
}

// Symbol returns the one-letter label shown on a cell; empty for None.
func (m Marker) Symbol() string {
	if int(m) >= markerCount {
		return "?"
	}
	return markerInfo[m].symbol
}

// IsRole reports whether m is one of the unique waypoint roles.
func (m Marker) IsRole() bool {
	return m >= HumanStart && m <= Portal
}

// IsAnnotation reports whether m was written by a search (Visited or DecisionPoint).
func (m Marker) IsAnnotation() bool {
	return m == Visited || m == DecisionPoint
}

// ParseMarker accepts either a symbol ("K") or a name ("Portal Key"), case-insensitive.
func ParseMarker(s string) (Marker, error) {
	s = strings.TrimSpace(s)
	for i, info := range markerInfo {
		if i == int(None) {
			continue
		}
		if strings.EqualFold(info.symbol, s) || strings.EqualFold(info.name, s) {
			return Marker(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownMarker, s)
}

// Cell is the content of one grid position.
type Cell struct {
	Terrain terrain.Terrain
	Marker  Marker
}

// Neighbor is an in-bounds adjacent cell and the move that reaches it.
type Neighbor struct {
	Dir   Direction
	Point Point
}
