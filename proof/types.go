// Package proof defines the harness types, functional options, and
// sentinel errors for statistical verification of search engines.
package proof

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pathproof/astar"
	"github.com/katalvlaran/pathproof/grid"
)

// Sentinel errors for engine construction.
var (
	// ErrNilAlgorithm indicates no candidate algorithm was injected.
	ErrNilAlgorithm = errors.New("proof: algorithm is nil")

	// ErrNoProperties indicates the property list resolved empty.
	ErrNoProperties = errors.New("proof: at least one property is required")

	// ErrBadSizeRange indicates an invalid inductive grid size range.
	ErrBadSizeRange = errors.New("proof: size range must satisfy 2 <= min <= max")

	// ErrBadCellCost indicates a maximum generated cell cost below 1.
	ErrBadCellCost = errors.New("proof: max cell cost must be at least 1")
)

// Algorithm is the capability contract every candidate engine satisfies:
// a pure search over (grid, start, end) yielding a tagged Result.
// astar.Search satisfies it directly; defective variants and third-party
// engines plug in the same way.
type Algorithm func(g *grid.Grid, start, end grid.Coord) (astar.Result, error)

// TestCase is one synthesized verification input, generated fresh per
// inductive trial, together with the oracle's ground-truth optimal cost.
type TestCase struct {
	Grid        *grid.Grid
	Start, End  grid.Coord
	OptimalCost int64
}

// Property is a named, stateless predicate over a test case and the
// candidate's output. Properties are evaluated in registration order and
// the harness short-circuits on the first failure: once one property has
// failed, later ones are usually meaningless (an absent path cannot be
// validated).
type Property struct {
	Name  string
	Check func(tc TestCase, res astar.Result) bool
}

// Status tags the severity of one log entry.
type Status string

const (
	// StatusInfo marks neutral progress lines.
	StatusInfo Status = "INFO"
	// StatusSuccess marks a completed phase.
	StatusSuccess Status = "SUCCESS"
	// StatusFail marks a detected violation; terminal for the run.
	StatusFail Status = "FAIL"
)

// Stage names the phase of the protocol an entry belongs to.
type Stage string

const (
	// StageSetup covers engine construction and run identification.
	StageSetup Stage = "setup"
	// StageBaseCase covers the fixed deterministic check.
	StageBaseCase Stage = "base-case"
	// StageInductive covers the randomized trials.
	StageInductive Stage = "inductive"
)

// Entry is one ordered, timestamped line of the proof log.
type Entry struct {
	Seq     int
	Time    time.Time
	Stage   Stage
	Status  Status
	Message string
}

// String renders the entry in the harness's canonical "[STATUS] message"
// form used for process-level output.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Status, e.Message)
}

// State tracks the engine's position in the verification protocol.
type State int

const (
	// StateNotRun is the initial state of a fresh engine.
	StateNotRun State = iota
	// StateBaseCaseChecked means the base case passed.
	StateBaseCaseChecked
	// StateInductiveRunning means randomized trials are in progress.
	StateInductiveRunning
	// StatePassed is terminal: both phases succeeded.
	StatePassed
	// StateFailed is terminal: a phase detected a violation.
	StateFailed
)

// String names the state for logs and diagnostics.
func (s State) String() string {
	switch s {
	case StateNotRun:
		return "not-run"
	case StateBaseCaseChecked:
		return "base-case-checked"
	case StateInductiveRunning:
		return "inductive-running"
	case StatePassed:
		return "passed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Option configures engine construction via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for one verification engine.
type Options struct {
	// Properties are evaluated per trial in order. Defaults to
	// DefaultProperties() (Optimality, then Validity).
	Properties []Property

	// Seed feeds the engine's private random source. When SeedSet is
	// false, the seed is drawn from the clock; either way it is logged.
	Seed    int64
	SeedSet bool

	// SizeMin and SizeMax bound the side length of generated grids.
	SizeMin, SizeMax int

	// MaxCellCost bounds generated costs to [1, MaxCellCost]; the lower
	// bound is fixed at 1 so the Manhattan heuristic stays admissible.
	MaxCellCost int64
}

// DefaultOptions returns Options with the built-in properties, clock
// seeding, grid sides in [5,15], and cell costs in [1,10].
func DefaultOptions() Options {
	return Options{
		Properties:  DefaultProperties(),
		SizeMin:     5,
		SizeMax:     15,
		MaxCellCost: 10,
	}
}

// WithProperties replaces the default property list. Order is preserved
// and meaningful: evaluation short-circuits on the first failure.
func WithProperties(props ...Property) Option {
	return func(o *Options) {
		o.Properties = props
	}
}

// WithSeed pins the random source so a run can be replayed exactly.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.SeedSet = true
	}
}

// WithSizeRange bounds the side length of generated grids (inclusive).
// Validated at NewEngine: 2 <= min <= max, else ErrBadSizeRange.
func WithSizeRange(min, max int) Option {
	return func(o *Options) {
		o.SizeMin, o.SizeMax = min, max
	}
}

// WithMaxCellCost bounds generated traversal costs to [1, c].
// Validated at NewEngine: c >= 1, else ErrBadCellCost.
func WithMaxCellCost(c int64) Option {
	return func(o *Options) {
		o.MaxCellCost = c
	}
}
