package proof

import (
	"fmt"

	"github.com/katalvlaran/pathproof/grid"
	"github.com/katalvlaran/pathproof/oracle"
)

// synthesize produces one fresh inductive test case: a random square grid
// with a side drawn from [sizeMin, sizeMax], costs drawn from
// [1, maxCellCost], start fixed at the top-left corner, end at the
// bottom-right, and the oracle's ground-truth optimal cost.
//
// Costs never go below 1, so the candidate's Manhattan heuristic stays
// admissible, and no cell is ever blocked, so the goal is always
// reachable. Only the engine's private seeded generator is consulted.
func (e *Engine) synthesize() (TestCase, error) {
	side := e.sizeMin + e.rng.Intn(e.sizeMax-e.sizeMin+1)

	values := make([][]int64, side)
	for r := range values {
		values[r] = make([]int64, side)
		for c := range values[r] {
			values[r][c] = e.rng.Int63n(e.maxCellCost) + 1
		}
	}

	g, err := grid.New(values)
	if err != nil {
		return TestCase{}, fmt.Errorf("proof: generated grid rejected: %w", err)
	}

	start := grid.Coord{Row: 0, Col: 0}
	end := grid.Coord{Row: side - 1, Col: side - 1}

	optimal, err := oracle.ShortestCost(g, start, end)
	if err != nil {
		return TestCase{}, fmt.Errorf("proof: oracle failed on generated grid: %w", err)
	}

	return TestCase{Grid: g, Start: start, End: end, OptimalCost: optimal}, nil
}
