// File: oracle/example_test.go
package oracle_test

import (
	"fmt"

	"github.com/katalvlaran/pathproof/grid"
	"github.com/katalvlaran/pathproof/oracle"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ground-truth cost with a forced detour
////////////////////////////////////////////////////////////////////////////////

// ExampleShortestCost demonstrates the reference search on a grid where
// the direct route is blocked and the optimum detours around a wall.
// Scenario:
//
//	[1][#][1]
//	[1][#][1]      # = impassable
//	[1][1][1]
//
//	start = (0,0), end = (0,2). The only route runs down the left edge,
//	across the bottom, and back up: 1+1+1+1+1+1 = 6.
//
// Complexity: O((R×C) log (R×C)).
func ExampleShortestCost() {
	g, _ := grid.New([][]int64{
		{1, grid.Impassable, 1},
		{1, grid.Impassable, 1},
		{1, 1, 1},
	})

	cost, _ := oracle.ShortestCost(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 2})
	fmt.Println("optimal cost:", cost)

	// Output:
	// optimal cost: 6
}
