// Package oracle implements the uniform-cost reference search.
//
// The search processes cells in order of increasing accumulated cost using
// a min-heap priority queue with the "lazy decrease-key" strategy: improved
// costs push duplicate heap entries, and stale entries are skipped when
// popped. The goal's cost is final the moment the goal is popped.
package oracle

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathproof/grid"
)

// ShortestCost returns the true minimum cost of travelling from start to
// end over g, counting the entry cost of every cell after start.
// Returns Unreachable (without error) when no passable route exists,
// and 0 when start == end.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must lie within g (ErrOutOfBounds).
//  3. start and end must be passable (ErrImpassableEndpoint).
//
// Side effects: none. ShortestCost is a pure function of its inputs.
//
// Complexity:
//
//   - Time:  O((R×C) log (R×C))
//   - Space: O(R×C)
func ShortestCost(g *grid.Grid, start, end grid.Coord) (int64, error) {
	// 1) Validate the grid pointer.
	if g == nil {
		return 0, ErrNilGrid
	}

	// 2) Validate both endpoints against grid bounds.
	var c grid.Coord
	for _, c = range []grid.Coord{start, end} {
		if !g.InBounds(c) {
			return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
		}
		// 3) Validate both endpoints are passable.
		if !g.Passable(c) {
			return 0, fmt.Errorf("%w: (%d,%d)", ErrImpassableEndpoint, c.Row, c.Col)
		}
	}

	// 4) best maps each reached cell to its best known accumulated cost.
	//    Absent key means +∞.
	best := make(map[grid.Coord]int64, g.Rows()*g.Cols())
	best[start] = 0

	// 5) done marks cells whose minimum cost is finalized.
	done := make(map[grid.Coord]bool, g.Rows()*g.Cols())

	// 6) Seed the min-heap with the start cell at cost 0.
	pq := costHeap{{at: start, cost: 0}}
	heap.Init(&pq)

	// 7) Main loop: pop the cheapest frontier cell and relax its neighbors.
	var item costItem
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(costItem)

		// Skip stale heap entries left behind by lazy decrease-key.
		if done[item.at] {
			continue
		}
		done[item.at] = true

		// The popped cost is final; if this is the goal, we are finished.
		// This also covers start == end, which pops immediately at cost 0.
		if item.at == end {
			return item.cost, nil
		}

		// Relax every passable 4-directional neighbor.
		for _, n := range g.Neighbors(item.at) {
			if done[n] {
				continue
			}
			w, err := g.Cost(n)
			if err != nil {
				// Neighbors only yields passable in-bounds cells.
				return 0, fmt.Errorf("oracle: cost lookup failed: %w", err)
			}
			next := item.cost + w
			if known, ok := best[n]; ok && next >= known {
				continue
			}
			best[n] = next
			heap.Push(&pq, costItem{at: n, cost: next})
		}
	}

	// 8) The frontier is exhausted without reaching the goal.
	return Unreachable, nil
}

// costItem pairs a cell with its accumulated cost from the start.
type costItem struct {
	at   grid.Coord
	cost int64
}

// costHeap is a min-heap of costItem ordered by cost ascending.
// Duplicates are allowed (lazy decrease-key); stale entries are filtered
// by the done set when popped.
type costHeap []costItem

// Len returns the number of items in the heap.
func (h costHeap) Len() int { return len(h) }

// Less defines the comparison: smaller accumulated cost wins.
func (h costHeap) Less(i, j int) bool { return h[i].cost < h[j].cost }

// Swap swaps two elements in the heap.
func (h costHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *costHeap) Push(x interface{}) { *h = append(*h, x.(costItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
