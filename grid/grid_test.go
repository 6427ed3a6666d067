package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathproof/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, or malformed inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int64
		err    error
	}{
		{"EmptyRows", [][]int64{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int64{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int64{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"NegativeCost", [][]int64{{1, -7}, {1, 1}}, grid.ErrBadCellCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.values)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.values, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopies verifies the grid is insulated from later mutation
// of the input slice.
func TestNew_DeepCopies(t *testing.T) {
	values := [][]int64{{1, 2}, {3, 4}}
	g, err := grid.New(values)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	values[0][0] = 99

	got, err := g.Cost(grid.Coord{Row: 0, Col: 0})
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if got != 1 {
		t.Errorf("Cost(0,0) = %d after input mutation; want 1", got)
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int64{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 0, Col: 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []grid.Coord{{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: 0, Col: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Passable, Cost, and Neighbors Tests
//----------------------------------------------------------------------------//

// TestPassableAndCost exercises the Impassable sentinel and lookup errors.
func TestPassableAndCost(t *testing.T) {
	g, err := grid.New([][]int64{
		{1, grid.Impassable},
		{0, 5},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	blocked := grid.Coord{Row: 0, Col: 1}
	if g.Passable(blocked) {
		t.Error("Passable(blocked)=true; want false")
	}
	if _, err = g.Cost(blocked); !errors.Is(err, grid.ErrImpassableCell) {
		t.Errorf("Cost(blocked) error = %v; want ErrImpassableCell", err)
	}
	if _, err = g.Cost(grid.Coord{Row: 9, Col: 9}); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("Cost(out) error = %v; want ErrOutOfBounds", err)
	}

	// Zero-cost cells are passable; zero is a legal traversal cost.
	free := grid.Coord{Row: 1, Col: 0}
	if !g.Passable(free) {
		t.Error("Passable(zero-cost)=false; want true")
	}
	if got, _ := g.Cost(free); got != 0 {
		t.Errorf("Cost(zero-cost) = %d; want 0", got)
	}
}

// TestNeighbors_OrderAndFiltering verifies the fixed N,E,S,W scan order
// and the filtering of blocked or out-of-bounds cells.
func TestNeighbors_OrderAndFiltering(t *testing.T) {
	g, err := grid.New([][]int64{
		{1, 1, 1},
		{1, 1, grid.Impassable},
		{1, 1, 1},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Center cell: east neighbor is blocked, the rest survive in N,S,W order.
	got := g.Neighbors(grid.Coord{Row: 1, Col: 1})
	want := []grid.Coord{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(center) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(center)[%d] = %v; want %v", i, got[i], want[i])
		}
	}

	// Corner cell keeps only E and S.
	got = g.Neighbors(grid.Coord{Row: 0, Col: 0})
	want = []grid.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Neighbors(corner) = %v; want %v", got, want)
	}
}

// TestManhattan checks the L1 distance on a handful of pairs.
func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b grid.Coord
		want int64
	}{
		{grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 0}, 0},
		{grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 4, Col: 4}, 8},
		{grid.Coord{Row: 2, Col: 7}, grid.Coord{Row: 5, Col: 1}, 9},
		{grid.Coord{Row: 3, Col: 0}, grid.Coord{Row: 0, Col: 0}, 3},
	}
	for _, tc := range cases {
		if got := grid.Manhattan(tc.a, tc.b); got != tc.want {
			t.Errorf("Manhattan(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestCellValues verifies the diagnostic snapshot is a detached copy.
func TestCellValues(t *testing.T) {
	g, err := grid.New([][]int64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	snap := g.CellValues()
	snap[1][1] = 42
	if got, _ := g.Cost(grid.Coord{Row: 1, Col: 1}); got != 4 {
		t.Errorf("Cost(1,1) = %d after snapshot mutation; want 4", got)
	}
}
