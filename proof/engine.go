package proof

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathproof/astar"
	"github.com/katalvlaran/pathproof/grid"
	"github.com/katalvlaran/pathproof/oracle"
)

// Engine drives the two-phase verification protocol for one candidate
// algorithm. Engines are one-shot and single-threaded: build, run the
// base case, run the inductive step, read the log. Any failure is
// terminal for the run — build a fresh Engine to try again.
type Engine struct {
	algo  Algorithm
	props []Property

	runID string
	seed  int64
	rng   *rand.Rand

	sizeMin, sizeMax int
	maxCellCost      int64

	state State
	log   []Entry
}

// NewEngine composes a verification engine from an injected candidate
// algorithm plus functional options.
//
// Returns ErrNilAlgorithm, ErrNoProperties, ErrBadSizeRange, or
// ErrBadCellCost for invalid configuration. On success the engine has
// already logged its run ID and seed, so even a run that is never
// started leaves a replayable trace.
func NewEngine(algo Algorithm, opts ...Option) (*Engine, error) {
	// 1) The candidate is mandatory.
	if algo == nil {
		return nil, ErrNilAlgorithm
	}

	// 2) Build and apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Validate the resolved configuration.
	if len(cfg.Properties) == 0 {
		return nil, ErrNoProperties
	}
	if cfg.SizeMin < 2 || cfg.SizeMin > cfg.SizeMax {
		return nil, fmt.Errorf("%w: got [%d,%d]", ErrBadSizeRange, cfg.SizeMin, cfg.SizeMax)
	}
	if cfg.MaxCellCost < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCellCost, cfg.MaxCellCost)
	}

	// 4) Resolve the seed: explicit wins, otherwise the clock.
	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		algo:        algo,
		props:       cfg.Properties,
		runID:       uuid.NewString(),
		seed:        seed,
		rng:         rand.New(rand.NewSource(seed)),
		sizeMin:     cfg.SizeMin,
		sizeMax:     cfg.SizeMax,
		maxCellCost: cfg.MaxCellCost,
		state:       StateNotRun,
	}
	e.logf(StageSetup, StatusInfo, "proof run %s (seed %d)", e.runID, e.seed)

	return e, nil
}

// RunBaseCase executes the fixed deterministic check: on a minimal
// all-ones grid with start == end, the candidate must return exactly
// [start] at cost 0. A failure here is terminal and skips the inductive
// phase entirely.
func (e *Engine) RunBaseCase() bool {
	if e.state != StateNotRun {
		return e.fail(StageBaseCase, "base case invoked in state %q; engines are one-shot", e.state)
	}

	e.logf(StageBaseCase, StatusInfo, "--- proving base case: start == end ---")

	// The 2×2 unit grid is the smallest input on which neighbor handling
	// could still misfire.
	g, err := grid.New([][]int64{{1, 1}, {1, 1}})
	if err != nil {
		return e.fail(StageBaseCase, "base grid construction failed: %v", err)
	}
	at := grid.Coord{Row: 0, Col: 0}

	res, err := e.algo(g, at, at)
	if err != nil {
		return e.fail(StageBaseCase, "base case errored: %v", err)
	}
	if !res.Found || res.Cost != 0 || len(res.Path) != 1 || res.Path[0] != at {
		return e.fail(StageBaseCase,
			"base case failed: start == end must yield path [%v] at cost 0, got path %v at cost %d",
			at, res.Path, res.Cost)
	}

	e.logf(StageBaseCase, StatusSuccess, "base case holds")
	e.state = StateBaseCaseChecked

	return true
}

// RunInductiveStep executes numTests randomized trials. Each trial
// synthesizes a fresh random grid, fixes start and end at opposite
// corners, obtains the oracle's ground truth, runs the candidate, and
// evaluates every registered property in order. The first violation
// halts the run with full reproduction context.
//
// A "no path" report where the oracle found a finite cost is an
// immediate failure: on fully open generated grids the goal is always
// reachable, so unreachability can only mean a defect.
func (e *Engine) RunInductiveStep(numTests int) bool {
	if e.state != StateBaseCaseChecked {
		return e.fail(StageInductive, "inductive step invoked in state %q; run the base case first", e.state)
	}
	if numTests <= 0 {
		return e.fail(StageInductive, "trial count must be positive, got %d", numTests)
	}
	e.state = StateInductiveRunning

	e.logf(StageInductive, StatusInfo, "--- proving inductive step ---")
	e.logf(StageInductive, StatusInfo, "hypothesis: the candidate is correct on the base case")
	e.logf(StageInductive, StatusInfo, "verifying %d random grids (sides %d..%d, costs 1..%d)",
		numTests, e.sizeMin, e.sizeMax, e.maxCellCost)

	for trial := 1; trial <= numTests; trial++ {
		tc, err := e.synthesize()
		if err != nil {
			return e.fail(StageInductive, "trial %d: test synthesis failed: %v", trial, err)
		}

		res, err := e.algo(tc.Grid, tc.Start, tc.End)
		if err != nil {
			e.diagnose(tc, res)
			return e.fail(StageInductive, "trial %d: candidate errored: %v", trial, err)
		}

		// Completeness: the oracle found a route, so must the candidate.
		if !res.Found && tc.OptimalCost != oracle.Unreachable {
			e.diagnose(tc, res)
			return e.fail(StageInductive, "trial %d: no path reported where oracle cost is %d",
				trial, tc.OptimalCost)
		}

		for _, p := range e.props {
			if p.Check(tc, res) {
				continue
			}
			e.diagnose(tc, res)
			return e.fail(StageInductive, "trial %d: property %q violated", trial, p.Name)
		}
	}

	e.logf(StageInductive, StatusSuccess, "all %d trials passed; inductive step holds", numTests)
	e.state = StatePassed

	return true
}

// Run executes both phases in order and reports the overall outcome.
func (e *Engine) Run(numTests int) bool {
	return e.RunBaseCase() && e.RunInductiveStep(numTests)
}

// Log returns a copy of the append-only proof log in emission order.
func (e *Engine) Log() []Entry {
	out := make([]Entry, len(e.log))
	copy(out, e.log)

	return out
}

// State reports the engine's position in the verification protocol.
func (e *Engine) State() State { return e.state }

// Seed returns the seed feeding this run's generator; pass it to
// WithSeed on a fresh engine to replay the run exactly.
func (e *Engine) Seed() int64 { return e.seed }

// RunID returns the identifier stamped into this run's log header.
func (e *Engine) RunID() string { return e.runID }

// Verdict renders the final human-readable outcome for process-level
// drivers.
func (e *Engine) Verdict() string {
	switch e.state {
	case StatePassed:
		return "proof passed: all properties hold"
	case StateFailed:
		return "proof failed: violation detected, see log for diagnostics"
	default:
		return fmt.Sprintf("proof incomplete: state %q", e.state)
	}
}

// diagnose appends the full reproduction context for a failing trial:
// the grid itself, the endpoints, and the cost comparison.
func (e *Engine) diagnose(tc TestCase, res astar.Result) {
	e.logf(StageInductive, StatusInfo, "grid: %v", tc.Grid)
	e.logf(StageInductive, StatusInfo, "start: %v, end: %v", tc.Start, tc.End)
	reported := "none"
	if res.Found {
		reported = fmt.Sprintf("%d", res.Cost)
	}
	e.logf(StageInductive, StatusInfo, "oracle cost: %d, reported cost: %s", tc.OptimalCost, reported)
}

// fail records a FAIL entry, moves the engine to its terminal failed
// state, and returns false for convenient tail calls.
func (e *Engine) fail(stage Stage, format string, args ...interface{}) bool {
	e.logf(stage, StatusFail, format, args...)
	e.state = StateFailed

	return false
}

// logf appends one formatted entry to the proof log.
func (e *Engine) logf(stage Stage, status Status, format string, args ...interface{}) {
	e.log = append(e.log, Entry{
		Seq:     len(e.log),
		Time:    time.Now(),
		Stage:   stage,
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	})
}
