// Package bfs defines tunable options and error sentinels for
// breadth-first search over a graph.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoSources is returned when the source slice is empty.
	ErrNoSources = errors.New("bfs: no source vertices")

	// ErrVertexRange is returned when a source vertex is outside [0, Order()).
	ErrVertexRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Search behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Predecessors, if true, records the BFS tree in Record.Prev.
	Predecessors bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when a vertex is dequeued, with its distance from
	// the nearest source. Returning an error aborts the search.
	OnVisit func(v, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: no predecessor
// tracking, no depth limit, a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(int, int) error { return nil },
	}
}

// WithPredecessors enables predecessor tracking in the returned Record.
func WithPredecessors() Option {
	return func(o *Options) { o.Predecessors = true }
}

// WithMaxDepth stops the search past the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback to run per dequeued vertex; returning
// an error from the callback stops the search.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
