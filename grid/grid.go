package grid

import "fmt"

// neighborOffsets lists the 4-directional moves in fixed N, E, S, W order.
// The fixed order makes every neighbor scan deterministic, which in turn
// makes engines built on Grid reproducible run to run.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an immutable rows×cols matrix of non-negative traversal costs.
// Blocked cells carry the Impassable sentinel. There is no mutation API:
// once built, a Grid is safe to share across searches and trials.
type Grid struct {
	rows, cols int
	cells      [][]int64
}

// New constructs a Grid from a non-empty, rectangular 2D cost slice.
// It deep-copies the input to guarantee immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadCellCost if any cost is negative and not Impassable.
// Complexity: O(R×C) time and memory.
func New(values [][]int64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([][]int64, rows)
	for r, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for c, v := range row {
			if v < 0 && v != Impassable {
				return nil, fmt.Errorf("%w: cell (%d,%d) cost=%d", ErrBadCellCost, r, c, v)
			}
		}
		// Deep copy to prevent external mutation.
		cells[r] = make([]int64, cols)
		copy(cells[r], row)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Passable reports whether c is in bounds and not blocked.
// Complexity: O(1).
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] != Impassable
}

// Cost returns the traversal cost of entering cell c.
// Returns ErrOutOfBounds if c lies outside the grid,
// ErrImpassableCell if c is blocked. Complexity: O(1).
func (g *Grid) Cost(c Coord) (int64, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}
	if g.cells[c.Row][c.Col] == Impassable {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrImpassableCell, c.Row, c.Col)
	}

	return g.cells[c.Row][c.Col], nil
}

// Neighbors returns the passable 4-directional neighbors of c
// in fixed N, E, S, W order. Out-of-bounds and blocked cells are
// filtered out. Complexity: O(1) (at most 4 candidates).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// CellValues returns a deep copy of the underlying cost matrix.
// Intended for diagnostics and test-case logging; the Grid itself
// never exposes its internal storage. Complexity: O(R×C).
func (g *Grid) CellValues() [][]int64 {
	out := make([][]int64, g.rows)
	for r := range g.cells {
		out[r] = make([]int64, g.cols)
		copy(out[r], g.cells[r])
	}

	return out
}

// String renders the cost matrix on a single line, row by row,
// for compact inclusion in failure diagnostics.
func (g *Grid) String() string {
	return fmt.Sprintf("%v", g.cells)
}
