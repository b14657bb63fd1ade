// Package solve defines options and result types for the breadth-first
// shortest-path search over a maze.Grid.
package solve

import (
	"errors"

	"github.com/katalvlaran/amaze/maze"
)

// ErrNilGrid is returned if a nil grid pointer is passed.
var ErrNilGrid = errors.New("solve: grid is nil")

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds observability hooks for the search. The search itself is
// synchronous and carries no cancellation mechanism; callers wanting
// bounded latency wrap the call externally.
type Options struct {
	// OnEnqueue is called when a cell is discovered and enqueued.
	// Receives the cell coordinate and its depth (edges) from Start.
	OnEnqueue func(c maze.Coord, depth int)

	// OnDequeue is called when a cell is popped from the frontier,
	// immediately before its neighbors are expanded.
	OnDequeue func(c maze.Coord, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(maze.Coord, int) {},
		OnDequeue: func(maze.Coord, int) {},
	}
}

// WithOnEnqueue registers a callback to run when a cell is enqueued.
func WithOnEnqueue(fn func(c maze.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is dequeued.
func WithOnDequeue(fn func(c maze.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a shortest-path search.
//
// "No path" is a normal outcome, not an error: Found is false and Path is
// nil. Callers must branch on Found.
type Result struct {
	// Found reports whether End was reached from Start.
	Found bool

	// Path is the shortest route from Start to End inclusive, in order.
	// Nil when Found is false.
	Path []maze.Coord

	// Dist is the path length in edges (len(Path)-1). Zero when not found.
	Dist int

	// Expanded counts cells dequeued from the frontier; useful for
	// benchmarks and search diagnostics.
	Expanded int
}
