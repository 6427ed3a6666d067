package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathproof/grid"
)

// Search runs A* from start to end over g and returns the tagged outcome.
//
// Returns:
//
//   - Result{Path, Cost, Found=true} when a route exists; Path runs from
//     start to end inclusive and Cost sums the entry costs of every cell
//     after start.
//   - Result{Found=false, Cost=Unreachable} when the open set drains
//     without reaching the goal. This is not an error.
//   - A sentinel error (ErrNilGrid, ErrOutOfBounds, ErrImpassableEndpoint)
//     for malformed input; the zero Result accompanies it.
//
// start == end short-circuits to a single-element path at cost 0 before
// the general loop runs.
//
// Determinism: the fixed neighbor scan order of grid.Neighbors plus the
// explicit insertion-sequence tie-break guarantee identical results for
// identical inputs.
//
// Complexity:
//
//   - Time:  O((R×C) log (R×C))
//   - Space: O(R×C)
func Search(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	// 1) Build and apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid pointer.
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 3) Validate both endpoints: in bounds, then passable.
	var c grid.Coord
	for _, c = range []grid.Coord{start, end} {
		if !g.InBounds(c) {
			return Result{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
		}
		if !g.Passable(c) {
			return Result{}, fmt.Errorf("%w: (%d,%d)", ErrImpassableEndpoint, c.Row, c.Col)
		}
	}

	// 4) Degenerate route: the goal is already underfoot.
	if start == end {
		return Result{Path: []grid.Coord{start}, Cost: 0, Found: true}, nil
	}

	// 5) Prepare per-invocation state and run the main loop.
	r := &searcher{
		g:      g,
		end:    end,
		h:      cfg.H,
		gScore: map[grid.Coord]int64{start: 0},
		prev:   make(map[grid.Coord]grid.Coord),
		closed: make(map[grid.Coord]bool),
	}
	r.push(start, 0)

	return r.run(start)
}

// searcher holds the mutable state for a single Search invocation.
// All of it is discarded when Search returns.
type searcher struct {
	g   *grid.Grid
	end grid.Coord
	h   Heuristic

	gScore map[grid.Coord]int64      // best known accumulated cost per cell
	prev   map[grid.Coord]grid.Coord // coordinate-keyed predecessor map
	closed map[grid.Coord]bool       // finalized cells
	open   openHeap                  // frontier ordered by (f, seq)
	seq    uint64                    // monotonically increasing push counter
}

// push inserts cell c with accumulated cost gCost into the open set,
// stamping it with the next insertion sequence number.
func (r *searcher) push(c grid.Coord, gCost int64) {
	r.seq++
	heap.Push(&r.open, openItem{
		at:  c,
		g:   gCost,
		f:   gCost + r.h(c, r.end),
		seq: r.seq,
	})
}

// run pops the lowest-f cell until the goal is finalized or the frontier
// drains, relaxing neighbors along the way.
func (r *searcher) run(start grid.Coord) (Result, error) {
	var item openItem
	for r.open.Len() > 0 {
		// 1) Pop the lowest-f entry; skip stale duplicates.
		item = heap.Pop(&r.open).(openItem)
		if r.closed[item.at] {
			continue
		}

		// 2) Goal popped: its g is final, reconstruct and return.
		if item.at == r.end {
			return Result{Path: r.rebuild(start), Cost: item.g, Found: true}, nil
		}

		// 3) Finalize the cell and relax its neighbors.
		r.closed[item.at] = true
		if err := r.relax(item); err != nil {
			return Result{}, err
		}
	}

	// 4) Open set exhausted without reaching the goal.
	return Result{Cost: Unreachable, Found: false}, nil
}

// relax computes tentative costs for the passable, non-finalized neighbors
// of the popped cell and (re)inserts any neighbor whose cost improved.
func (r *searcher) relax(item openItem) error {
	for _, n := range r.g.Neighbors(item.at) {
		if r.closed[n] {
			continue
		}
		w, err := r.g.Cost(n)
		if err != nil {
			// Neighbors only yields passable in-bounds cells.
			return fmt.Errorf("astar: cost lookup failed: %w", err)
		}
		tentative := item.g + w
		if known, ok := r.gScore[n]; ok && tentative >= known {
			continue
		}
		// Strict improvement: overwrite score and predecessor, push anew.
		// The old heap entry, if any, becomes stale and is skipped later.
		r.gScore[n] = tentative
		r.prev[n] = item.at
		r.push(n, tentative)
	}

	return nil
}

// rebuild walks the predecessor map from the goal back to start and
// reverses the collected coordinates into start→goal order.
func (r *searcher) rebuild(start grid.Coord) []grid.Coord {
	path := []grid.Coord{r.end}
	for cur := r.end; cur != start; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// openItem is one frontier entry: a cell, its accumulated cost g, its
// priority f = g + h, and the insertion sequence used to break f ties.
type openItem struct {
	at  grid.Coord
	g   int64
	f   int64
	seq uint64
}

// openHeap is a min-heap of openItem ordered by f ascending, with the
// insertion sequence as the explicit secondary key. The secondary key
// makes tie-breaking independent of heap internals, so behavior is
// reproducible across runs and reimplementations.
type openHeap []openItem

// Len returns the number of items in the heap.
func (h openHeap) Len() int { return len(h) }

// Less orders by f, then by insertion sequence on equal f.
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(openItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
