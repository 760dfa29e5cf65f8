// Package grid models a rectangular map of typed terrain cells, each carrying
// a marker, together with the cardinal-direction geometry used by searches.
//
// What:
//
//   - Grid stores Rows×Cols cells row-major; each Cell pairs a terrain.Terrain
//     with a Marker (empty, initial point, target, visited, decision point or
//     one of the five waypoint roles).
//   - Direction is Up, Right, Down or Left (plus Initial for a search root);
//     Neighbors lists in-bounds neighbors in a caller-supplied order.
//   - FromDigits and Parse build a grid from a block of terrain digits,
//     one digit per cell ('1' Mountain … '5' Forest).
//
// Geometry:
//
//	Up    = (row-1, col)
//	Right = (row,   col+1)
//	Down  = (row+1, col)
//	Left  = (row,   col-1)
//
// DirectionBetween is the exact inverse of this table.
//
// Waypoint roles:
//
//	HumanStart, OctopusStart, DarkTemple, PortalKey and Portal are unique:
//	assigning a role to a cell clears the previous holder.
//
// Complexity:
//
//   - New, FromDigits, Parse, Clone: O(W×H) time and memory.
//   - At, SetMarker, Locate, Neighbors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a point outside the grid.
//   - ErrBadOrder: a direction order that is not a permutation of the four cardinals.
package grid
