// Package terrain defines the terrain types of a map cell, the roster of
// mobile agents, and the per-agent movement cost table.
//
// What:
//
//   - Terrain enumerates Mountain, Land, Water, Sand and Forest. Maps are
//     authored as digit blocks where '1'…'5' select a terrain in that order.
//   - Agent enumerates the roster: Human, Sasquatch, Monkey, Octopus.
//   - Costs is a dense [agent][terrain] table; entering a cell costs
//     Costs.Cost(agent, terrain) for the moving agent.
//
// Impassable terrain:
//
//	A cost equal to Impassable (1000) marks terrain an agent can never enter.
//	Every real cost is in [1, Impassable).
//
// Default roster:
//
//	           Mountain  Land  Water  Sand  Forest
//	Human          1000     1      2     3       4
//	Sasquatch         1     1   1000     2       1
//	Monkey         1000     2      4     3       1
//	Octopus        1000     4      1  1000       3
//
// Errors:
//
//   - ErrUnknownTerrain: a digit or name that maps to no terrain.
//   - ErrUnknownAgent:   a name or value outside the roster.
//   - ErrBadCost:        a cost below 1 or above Impassable.
package terrain
