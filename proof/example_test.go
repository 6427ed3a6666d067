// File: proof/example_test.go
package proof_test

import (
	"fmt"

	"github.com/katalvlaran/pathproof/astar"
	"github.com/katalvlaran/pathproof/grid"
	"github.com/katalvlaran/pathproof/proof"
)

////////////////////////////////////////////////////////////////////////////////
// Example: verifying the shipped A* engine
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine demonstrates the full two-phase protocol against the real
// A* engine with a pinned seed, so the run is reproducible.
// Scenario:
//
//   - Base case: start == end on a minimal grid must yield [start] at cost 0.
//   - Inductive step: 40 seeded random grids, candidate cost checked
//     against the uniform-cost oracle, path checked structurally.
//
// The log itself carries a per-run identifier and timestamps, so the
// example prints only the reproducible verdict.
func ExampleEngine() {
	algo := func(g *grid.Grid, start, end grid.Coord) (astar.Result, error) {
		return astar.Search(g, start, end)
	}

	e, err := proof.NewEngine(algo, proof.WithSeed(42))
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	ok := e.Run(40)
	fmt.Println("verified:", ok)
	fmt.Println(e.Verdict())

	// Output:
	// verified: true
	// proof passed: all properties hold
}
