package grid

// ValidPath reports whether path is a structurally sound route over g:
//
//   - path must be non-empty;
//   - every coordinate must name a passable cell;
//   - every consecutive pair must be exactly one Manhattan step apart.
//
// ValidPath is a pure structural check. It says nothing about optimality
// and is never consulted by any engine — it exists for verification
// harnesses that judge an engine's output from the outside.
// Complexity: O(len(path)).
func ValidPath(g *Grid, path []Coord) bool {
	if g == nil || len(path) == 0 {
		return false
	}
	if !g.Passable(path[0]) {
		return false
	}
	for i := 0; i < len(path)-1; i++ {
		if Manhattan(path[i], path[i+1]) != 1 {
			return false
		}
		if !g.Passable(path[i+1]) {
			return false
		}
	}

	return true
}
