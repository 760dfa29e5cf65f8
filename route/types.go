package route

import (
	"errors"
	"fmt"

	"github.com/hecarrillo/ai-maze/grid"
	"github.com/hecarrillo/ai-maze/terrain"
)

// Sentinel errors for route construction and lookup.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("route: grid is nil")

	// ErrUnknownWaypoint is returned for a letter outside I, D, K, P.
	ErrUnknownWaypoint = errors.New("route: unknown waypoint")

	// ErrNoStartRole is returned when an agent has no start marker on the
	// grid and no explicit start was configured.
	ErrNoStartRole = errors.New("route: agent has no start role")

	// ErrWaypointMissing is returned when a waypoint's marker is not placed.
	ErrWaypointMissing = errors.New("route: waypoint missing from grid")

	// ErrBadShape is returned for a shape that is not I…P over distinct waypoints.
	ErrBadShape = errors.New("route: malformed shape")

	// ErrPairMissing is returned when a table has no entry for a pair.
	ErrPairMissing = errors.New("route: pair not in table")
)

// Waypoint is a named cell a route may pass through, written as one letter.
type Waypoint byte

const (
	Initial    Waypoint = 'I'
	DarkTemple Waypoint = 'D'
	PortalKey  Waypoint = 'K'
	Portal     Waypoint = 'P'
)

// Alphabet returns the waypoints in canonical order: I, D, K, P.
func Alphabet() []Waypoint {
	return []Waypoint{Initial, DarkTemple, PortalKey, Portal}
}

// Valid reports whether w is one of I, D, K, P.
func (w Waypoint) Valid() bool {
	switch w {
	case Initial, DarkTemple, PortalKey, Portal:
		return true
	}
	return false
}

func (w Waypoint) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Waypoint(%q)", byte(w))
	}
	return string(rune(w))
}

// ParseWaypoint reads a single waypoint letter.
func ParseWaypoint(s string) (Waypoint, error) {
	if len(s) != 1 || !Waypoint(s[0]).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWaypoint, s)
	}
	return Waypoint(s[0]), nil
}

// Marker returns the grid marker that locates w for agent a.
// Initial depends on the agent: HumanStart for the Human, OctopusStart for the
// Octopus, ErrNoStartRole for the rest of the roster.
func (w Waypoint) Marker(a terrain.Agent) (grid.Marker, error) {
	switch w {
	case Initial:
		switch a {
		case terrain.Human:
			return grid.HumanStart, nil
		case terrain.Octopus:
			return grid.OctopusStart, nil
		}
		return grid.None, fmt.Errorf("%w: %v", ErrNoStartRole, a)
	case DarkTemple:
		return grid.DarkTemple, nil
	case PortalKey:
		return grid.PortalKey, nil
	case Portal:
		return grid.Portal, nil
	}
	return grid.None, fmt.Errorf("%w: %v", ErrUnknownWaypoint, w)
}

// Pair is an ordered (From, To) waypoint pair.
type Pair struct {
	From, To Waypoint
}

func (p Pair) String() string { return p.From.String() + "→" + p.To.String() }

// Reverse returns the pair travelled the other way.
func (p Pair) Reverse() Pair { return Pair{From: p.To, To: p.From} }

// Pairs enumerates every ordered pair i≠j of alphabet, outer loop on From,
// inner loop on To, both in alphabet order. Duplicate letters are ignored.
func Pairs(alphabet []Waypoint) []Pair {
	uniq := make([]Waypoint, 0, len(alphabet))
	var seen [256]bool
	for _, w := range alphabet {
		if !seen[w] {
			seen[w] = true
			uniq = append(uniq, w)
		}
	}

	out := make([]Pair, 0, len(uniq)*(len(uniq)-1))
	for _, from := range uniq {
		for _, to := range uniq {
			if from != to {
				out = append(out, Pair{From: from, To: to})
			}
		}
	}
	return out
}

// Shape is one admissible visiting order, written over the waypoint
// alphabet: it starts at I, ends at P and names each waypoint at most once.
type Shape string

// Shapes returns the closed set of route shapes in canonical order.
func Shapes() []Shape {
	return []Shape{"IP", "IKP", "IDP", "IKDP", "IDKP"}
}

// Validate checks that s starts at I, ends at P and repeats no letter.
func (s Shape) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("%w: %q is too short", ErrBadShape, string(s))
	}
	if s[0] != byte(Initial) || s[len(s)-1] != byte(Portal) {
		return fmt.Errorf("%w: %q must start with I and end with P", ErrBadShape, string(s))
	}
	var seen [256]bool
	for i := 0; i < len(s); i++ {
		w := Waypoint(s[i])
		if !w.Valid() {
			return fmt.Errorf("%w: %q: %w", ErrBadShape, string(s), ErrUnknownWaypoint)
		}
		if seen[w] {
			return fmt.Errorf("%w: %q repeats %v", ErrBadShape, string(s), w)
		}
		seen[w] = true
	}
	return nil
}

// Waypoints returns the letters of s in visiting order.
func (s Shape) Waypoints() []Waypoint {
	out := make([]Waypoint, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Waypoint(s[i])
	}
	return out
}

// Segments returns the consecutive pairs of s: "IKP" → I→K, K→P.
func (s Shape) Segments() []Pair {
	if len(s) < 2 {
		return nil
	}
	out := make([]Pair, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		out = append(out, Pair{From: Waypoint(s[i-1]), To: Waypoint(s[i])})
	}
	return out
}

// Contains reports whether s visits w.
func (s Shape) Contains(w Waypoint) bool {
	for i := 0; i < len(s); i++ {
		if Waypoint(s[i]) == w {
			return true
		}
	}
	return false
}
