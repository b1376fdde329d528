// Package bellmanford defines configuration options and error sentinels
// for the Bellman–Ford–Moore algorithm.
package bellmanford

import (
	"errors"

	"github.com/kvisto/graphpath/graph"
)

// Sentinel errors returned by Search.
var (
	// ErrGraphNil indicates a nil graph was passed to Search.
	ErrGraphNil = errors.New("bellmanford: graph is nil")

	// ErrNoSources indicates an empty source slice.
	ErrNoSources = errors.New("bellmanford: no source vertices")

	// ErrVertexRange indicates a source vertex outside [0, Order()).
	ErrVertexRange = errors.New("bellmanford: source vertex out of range")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from a
	// source; shortest distances are undefined and no record is returned.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)

// Options configures the behavior of Search.
type Options[W graph.Weight] struct {
	// Predecessors, if true, records the shortest-path tree in Record.Prev.
	Predecessors bool
}

// Option is a functional option for configuring Search.
type Option[W graph.Weight] func(*Options[W])

// DefaultOptions returns an Options with predecessor tracking off.
func DefaultOptions[W graph.Weight]() Options[W] {
	return Options[W]{}
}

// WithPredecessors enables predecessor tracking in the returned Record.
func WithPredecessors[W graph.Weight]() Option[W] {
	return func(o *Options[W]) { o.Predecessors = true }
}
