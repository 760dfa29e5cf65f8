package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hecarrillo/ai-maze/terrain"
)

// Grid is a rectangular map of cells. Terrain is fixed after construction
// unless SetTerrain is called; markers are mutable annotations.
type Grid struct {
	rows, cols int
	cells      []Cell
	roles      map[Marker]Point
}

// New constructs a Grid from a non-empty, rectangular 2D slice of terrains,
// indexed [row][col]. Every cell starts with no marker.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]terrain.Terrain) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{
		rows:  h,
		cols:  w,
		cells: make([]Cell, h*w),
		roles: make(map[Marker]Point),
	}
	for r, row := range values {
		for c, t := range row {
			if !t.Valid() {
				return nil, fmt.Errorf("%w at %v", terrain.ErrUnknownTerrain, Point{r, c})
			}
			g.cells[g.index(Point{r, c})].Terrain = t
		}
	}

	return g, nil
}

// FromDigits builds a Grid from lines of terrain digits, one digit per cell.
// Surrounding whitespace on each line is ignored and blank lines are skipped.
func FromDigits(lines []string) (*Grid, error) {
	values := make([][]terrain.Terrain, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]terrain.Terrain, 0, len(line))
		for i, r := range line {
			t, err := terrain.ParseDigit(r)
			if err != nil {
				return nil, fmt.Errorf("grid: row %d col %d: %w", len(values), i, err)
			}
			row = append(row, t)
		}
		values = append(values, row)
	}

	return New(values)
}

// Parse reads a digit block from r; see FromDigits.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}

	return FromDigits(lines)
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index maps p to its row-major index: Row*Cols + Col.
// The caller must check InBounds first.
func (g *Grid) Index(p Point) int {
	return g.index(p)
}

func (g *Grid) index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Point converts a row-major index back to a Point.
func (g *Grid) Point(idx int) Point {
	return Point{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the cell at p. Out-of-bounds points yield the zero Cell and false.
func (g *Grid) At(p Point) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// Terrain returns the terrain at p; p must be in bounds.
func (g *Grid) Terrain(p Point) terrain.Terrain {
	return g.cells[g.index(p)].Terrain
}

// Marker returns the marker at p, or None when p is out of bounds.
func (g *Grid) Marker(p Point) Marker {
	if !g.InBounds(p) {
		return None
	}
	return g.cells[g.index(p)].Marker
}

// Locate returns the cell that currently holds marker m.
// For roles the lookup is O(1); other markers are found by a row-major scan.
func (g *Grid) Locate(m Marker) (Point, bool) {
	if m.IsRole() {
		p, ok := g.roles[m]
		return p, ok
	}
	for i, c := range g.cells {
		if c.Marker == m {
			return g.Point(i), true
		}
	}
	return Point{}, false
}

// SetMarker writes m on the cell at p.
// Assigning a waypoint role clears the cell that previously held it, and
// overwriting a role cell with any other marker releases that role.
func (g *Grid) SetMarker(p Point, m Marker) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	if int(m) >= markerCount {
		return fmt.Errorf("%w: %d", ErrUnknownMarker, m)
	}
	i := g.index(p)
	if old := g.cells[i].Marker; old.IsRole() && old != m {
		delete(g.roles, old)
	}
	if m.IsRole() {
		if prev, ok := g.roles[m]; ok && prev != p {
			g.cells[g.index(prev)].Marker = None
		}
		g.roles[m] = p
	}
	g.cells[i].Marker = m

	return nil
}

// SetTerrain replaces the terrain at p.
func (g *Grid) SetTerrain(p Point, t terrain.Terrain) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %d", terrain.ErrUnknownTerrain, t)
	}
	g.cells[g.index(p)].Terrain = t
	return nil
}

// ClearAnnotations resets every Visited and DecisionPoint marker to None,
// leaving waypoint roles, initial points and targets in place.
func (g *Grid) ClearAnnotations() {
	for i := range g.cells {
		if g.cells[i].Marker.IsAnnotation() {
			g.cells[i].Marker = None
		}
	}
}

// Neighbors returns the in-bounds neighbors of p, in the given direction
// order. Entries of order that are not cardinal moves are ignored.
func (g *Grid) Neighbors(p Point, order []Direction) []Neighbor {
	out := make([]Neighbor, 0, 4)
	for _, d := range order {
		if d == Initial {
			continue
		}
		q := p.Step(d)
		if g.InBounds(q) {
			out = append(out, Neighbor{Dir: d, Point: q})
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: make([]Cell, len(g.cells)),
		roles: make(map[Marker]Point, len(g.roles)),
	}
	copy(cp.cells, g.cells)
	for m, p := range g.roles {
		cp.roles[m] = p
	}
	return cp
}

// String renders one line per row: the marker symbol where a marker is set,
// otherwise the terrain digit.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.cells[g.index(Point{r, c})]
			if s := cell.Marker.Symbol(); s != "" {
				b.WriteString(s)
			} else {
				b.WriteRune(cell.Terrain.Digit())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
