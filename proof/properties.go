package proof

import (
	"github.com/katalvlaran/pathproof/astar"
	"github.com/katalvlaran/pathproof/grid"
)

// Optimality returns the property asserting the candidate's reported cost
// equals the oracle's ground-truth cost for the same test case. It also
// covers agreement on unreachability, since both sides use the same
// numeric sentinel for "no path".
func Optimality() Property {
	return Property{
		Name: "optimality",
		Check: func(tc TestCase, res astar.Result) bool {
			return res.Cost == tc.OptimalCost
		},
	}
}

// Validity returns the property asserting the reported path is a
// contiguous, passable, 4-directionally adjacent sequence over the test
// grid. Absent paths fail: validity is only checked after completeness,
// so reaching it with Found=false already signals a defect.
func Validity() Property {
	return Property{
		Name: "validity",
		Check: func(tc TestCase, res astar.Result) bool {
			return grid.ValidPath(tc.Grid, res.Path)
		},
	}
}

// DefaultProperties returns the canonical list for A*-family engines:
// Optimality first, then Validity. Order matters — evaluation
// short-circuits on the first failure.
func DefaultProperties() []Property {
	return []Property{Optimality(), Validity()}
}
