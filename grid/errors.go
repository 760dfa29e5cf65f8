package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrBadOrder indicates a direction order that is not a permutation of Up, Right, Down, Left.
	ErrBadOrder = errors.New("grid: direction order must be a permutation of U, R, D, L")
	// ErrUnknownMarker indicates a marker symbol or name that matches nothing.
	ErrUnknownMarker = errors.New("grid: unknown marker")
)
