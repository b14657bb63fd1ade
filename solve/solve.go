// Package solve runs breadth-first search over a maze.Grid, returning the
// shortest path between the grid's Start and End markers.
package solve

import "github.com/katalvlaran/amaze/maze"

// neighborOffsets fixes the expansion order: up, down, left, right.
// The order is load-bearing: ties between equally short paths must resolve
// identically on every run.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// queueItem pairs a row-major cell index with its depth from Start.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable search state. All of it is allocated per
// call, so concurrent searches over the same Grid never interfere.
type walker struct {
	grid    *maze.Grid
	opts    Options
	queue   []queueItem
	visited []bool
	parent  []int // predecessor index per cell, -1 for unseen/root
}

// ShortestPath runs BFS on g from its Start marker toward its End marker,
// applying any number of functional Options.
//
// Returns ErrNilGrid for a nil grid. An unreachable End is not an error:
// the Result comes back with Found == false.
//
// Complexity: O(rows×cols) time and memory — each cell is enqueued at
// most once (visited-on-enqueue).
func ShortestPath(g *maze.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	width, height := g.Dimensions()
	n := width * height
	w := &walker{
		grid:    g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		parent:  make([]int, n),
	}
	for i := range w.parent {
		w.parent[i] = -1
	}

	res := &Result{}
	goal := g.Index(g.End())
	w.enqueue(g.Index(g.Start()), 0)

	for len(w.queue) > 0 {
		item := w.dequeue()
		res.Expanded++
		// Early exit: once End is dequeued its depth is final.
		if item.idx == goal {
			res.Found = true
			res.Dist = item.depth
			res.Path = w.reconstruct(goal)

			return res, nil
		}
		w.enqueueNeighbors(item)
	}

	// Frontier exhausted without reaching End: a normal "no path" outcome.
	return res, nil
}

// enqueue marks idx visited at depth d, fires OnEnqueue, and appends it
// to the frontier.
func (w *walker) enqueue(idx, d int) {
	w.visited[idx] = true
	w.opts.OnEnqueue(w.grid.CoordAt(idx), d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// dequeue pops the first frontier item and fires OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.grid.CoordAt(item.idx), item.depth)

	return item
}

// enqueueNeighbors expands item in the fixed up/down/left/right order,
// discarding out-of-bounds coordinates, walls, and already-seen cells.
func (w *walker) enqueueNeighbors(item queueItem) {
	c := w.grid.CoordAt(item.idx)
	for _, d := range neighborOffsets {
		nb := maze.Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !w.grid.InBounds(nb) || !w.grid.Traversable(nb) {
			continue
		}
		ni := w.grid.Index(nb)
		if !w.visited[ni] {
			w.parent[ni] = item.idx
			w.enqueue(ni, item.depth+1)
		}
	}
}

// reconstruct walks predecessor links from goal back to the root and
// reverses the sequence, yielding Start → End.
func (w *walker) reconstruct(goal int) []maze.Coord {
	var path []maze.Coord
	for at := goal; at >= 0; at = w.parent[at] {
		path = append(path, w.grid.CoordAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
