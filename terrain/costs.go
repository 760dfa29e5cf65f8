package terrain

import "fmt"

// Costs is a dense movement-cost table indexed by agent, then terrain.
// The zero value is not usable; start from DefaultCosts or fill every entry
// with Set and check it with Validate.
type Costs [agentCount][terrainCount]int

// DefaultCosts returns the standard roster table.
func DefaultCosts() *Costs {
	return &Costs{
		Human:     {Mountain: Impassable, Land: 1, Water: 2, Sand: 3, Forest: 4},
		Sasquatch: {Mountain: 1, Land: 1, Water: Impassable, Sand: 2, Forest: 1},
		Monkey:    {Mountain: Impassable, Land: 2, Water: 4, Sand: 3, Forest: 1},
		Octopus:   {Mountain: Impassable, Land: 4, Water: 1, Sand: Impassable, Forest: 3},
	}
}

// Cost returns what agent a pays to enter a cell of terrain t.
// Unknown agents or terrains cost Impassable.
func (c *Costs) Cost(a Agent, t Terrain) int {
	if !a.Valid() || !t.Valid() {
		return Impassable
	}
	return c[a][t]
}

// Passable reports whether agent a can ever enter terrain t.
func (c *Costs) Passable(a Agent, t Terrain) bool {
	return c.Cost(a, t) < Impassable
}

// Set overrides a single entry of the table.
func (c *Costs) Set(a Agent, t Terrain, cost int) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAgent, a)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTerrain, t)
	}
	if cost < 1 || cost > Impassable {
		return fmt.Errorf("%w: %s on %s = %d", ErrBadCost, a, t, cost)
	}
	c[a][t] = cost
	return nil
}

// Validate checks that every entry lies in [1, Impassable].
// Zero or negative costs would break the admissibility of the A* heuristic.
func (c *Costs) Validate() error {
	for a := 0; a < agentCount; a++ {
		for t := 0; t < terrainCount; t++ {
			if v := c[a][t]; v < 1 || v > Impassable {
				return fmt.Errorf("%w: %s on %s = %d", ErrBadCost, Agent(a), Terrain(t), v)
			}
		}
	}
	return nil
}

// Uniform returns a table where every agent pays cost on every terrain.
// Useful for unweighted experiments and tests.
func Uniform(cost int) (*Costs, error) {
	if cost < 1 || cost > Impassable {
		return nil, fmt.Errorf("%w: %d", ErrBadCost, cost)
	}
	var c Costs
	for a := range c {
		for t := range c[a] {
			c[a][t] = cost
		}
	}
	return &c, nil
}

// Cost returns what agent a pays on terrain t under DefaultCosts.
func Cost(a Agent, t Terrain) int {
	return defaultCosts.Cost(a, t)
}

// Passable reports whether agent a can enter terrain t under DefaultCosts.
func Passable(a Agent, t Terrain) bool {
	return defaultCosts.Passable(a, t)
}

var defaultCosts = DefaultCosts()
