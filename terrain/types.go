package terrain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for terrain and agent lookups.
var (
	// ErrUnknownTerrain indicates a digit or name that selects no terrain.
	ErrUnknownTerrain = errors.New("terrain: unknown terrain")
	// ErrUnknownAgent indicates a name or value outside the agent roster.
	ErrUnknownAgent = errors.New("terrain: unknown agent")
	// ErrBadCost indicates a movement cost outside [1, Impassable].
	ErrBadCost = errors.New("terrain: cost out of range")
)

// Impassable is the sentinel cost of terrain an agent can never enter.
const Impassable = 1000

// Terrain is the type of ground covering a single cell.
type Terrain uint8

const (
	Mountain Terrain = iota
	Land
	Water
	Sand
	Forest

	terrainCount int = iota
)

var terrainNames = [terrainCount]string{"Mountain", "Land", "Water", "Sand", "Forest"}

// Terrains returns every terrain in digit order.
func Terrains() []Terrain {
	return []Terrain{Mountain, Land, Water, Sand, Forest}
}

// Valid reports whether t is one of the declared terrains.
func (t Terrain) Valid() bool { return int(t) < terrainCount }

func (t Terrain) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Terrain(%d)", uint8(t))
	}
	return terrainNames[t]
}

// Digit returns the map digit that encodes t ('1' for Mountain … '5' for Forest).
func (t Terrain) Digit() rune {
	return rune('1' + t)
}

// ParseDigit maps a map digit to its terrain.
func ParseDigit(r rune) (Terrain, error) {
	if r < '1' || r >= rune('1'+terrainCount) {
		return 0, fmt.Errorf("%w: digit %q", ErrUnknownTerrain, r)
	}
	return Terrain(r - '1'), nil
}

// ParseTerrain maps a case-insensitive terrain name to its terrain.
func ParseTerrain(name string) (Terrain, error) {
	for i, n := range terrainNames {
		if strings.EqualFold(n, name) {
			return Terrain(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTerrain, name)
}

// Agent is a mobile character with its own terrain costs.
type Agent uint8

const (
	Human Agent = iota
	Sasquatch
	Monkey
	Octopus

	agentCount int = iota
)

var agentNames = [agentCount]string{"Human", "Sasquatch", "Monkey", "Octopus"}

// Agents returns the full roster in declaration order.
func Agents() []Agent {
	return []Agent{Human, Sasquatch, Monkey, Octopus}
}

// Valid reports whether a is part of the roster.
func (a Agent) Valid() bool { return int(a) < agentCount }

func (a Agent) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Agent(%d)", uint8(a))
	}
	return agentNames[a]
}

// ParseAgent maps a case-insensitive agent name to its roster entry.
func ParseAgent(name string) (Agent, error) {
	for i, n := range agentNames {
		if strings.EqualFold(n, name) {
			return Agent(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAgent, name)
}
