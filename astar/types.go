// Package astar defines the result type, heuristic contract, functional
// options, and sentinel errors for the A* engine.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathproof/grid"
)

// Unreachable is the cost reported when no passable route joins start and
// end. Deliberately the same numeric sentinel the oracle package uses, so
// a correct engine and the reference agree bit-for-bit on "no path" —
// without either package importing the other.
const Unreachable int64 = math.MaxInt64

// Sentinel errors for input validation. Malformed input fails fast with a
// named error; it is never folded into the "no path" outcome.
var (
	// ErrNilGrid indicates a nil grid pointer was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates start or end lies outside the grid.
	ErrOutOfBounds = errors.New("astar: endpoint out of bounds")

	// ErrImpassableEndpoint indicates start or end names a blocked cell.
	ErrImpassableEndpoint = errors.New("astar: endpoint is impassable")
)

// Heuristic estimates the remaining cost from one cell to another.
// A* is optimal only under admissible heuristics (never overestimating).
type Heuristic func(from, to grid.Coord) int64

// Result is the tagged outcome of one search invocation.
//
//   - Found=true:  Path runs from start to end inclusive, Cost is the sum
//     of entry costs of every cell after start.
//   - Found=false: Path is nil and Cost is Unreachable.
type Result struct {
	Path  []grid.Coord
	Cost  int64
	Found bool
}

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for one Search invocation.
type Options struct {
	// H estimates remaining cost to the goal. Defaults to Manhattan
	// distance. Swapping in a non-admissible estimate is legal and is how
	// deliberately defective engines are assembled for harness testing.
	H Heuristic
}

// DefaultOptions returns Options with the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{H: grid.Manhattan}
}

// WithHeuristic replaces the default Manhattan heuristic.
// A nil fn is ignored.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.H = fn
		}
	}
}
