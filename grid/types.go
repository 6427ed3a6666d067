// Package grid defines core types and sentinel errors for the immutable
// 2D cost field used by the pathproof engines.
package grid

import "errors"

// Impassable is the reserved cell cost marking a blocked cell.
// Any other negative cost is rejected at construction time, keeping
// the sentinel the single source of truth for passability.
const Impassable int64 = -1

// Sentinel errors for grid construction and lookups.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadCellCost indicates a negative cell cost other than Impassable.
	ErrBadCellCost = errors.New("grid: cell cost must be non-negative or the Impassable sentinel")

	// ErrOutOfBounds indicates a coordinate outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrImpassableCell indicates a cost lookup on a blocked cell.
	ErrImpassableCell = errors.New("grid: cell is impassable")
)

// Coord identifies a single cell as a (row, col) pair.
// Coords are plain values: comparable, map-key safe, and cheap to copy.
type Coord struct {
	Row, Col int
}

// Manhattan returns the L1 distance |a.Row-b.Row| + |a.Col-b.Col|
// between two coordinates. It is the admissible heuristic for
// 4-directional movement when every traversal cost is at least 1.
func Manhattan(a, b Coord) int64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return int64(dr) + int64(dc)
}
