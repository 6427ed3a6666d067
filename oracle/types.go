package oracle

import (
	"errors"
	"math"
)

// Unreachable is the cost reported when no passable route joins start and
// end. It is a sentinel, not an error: "no path" is an ordinary outcome.
const Unreachable int64 = math.MaxInt64

// Sentinel errors for oracle input validation. Malformed input fails fast
// with a named error rather than silently producing a wrong cost.
var (
	// ErrNilGrid indicates a nil grid pointer was passed.
	ErrNilGrid = errors.New("oracle: grid is nil")

	// ErrOutOfBounds indicates start or end lies outside the grid.
	ErrOutOfBounds = errors.New("oracle: endpoint out of bounds")

	// ErrImpassableEndpoint indicates start or end names a blocked cell.
	ErrImpassableEndpoint = errors.New("oracle: endpoint is impassable")
)
