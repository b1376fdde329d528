// Package dijkstra defines configuration options and error sentinels for
// Dijkstra's algorithm.
package dijkstra

import (
	"errors"

	"github.com/kvisto/graphpath/graph"
)

// Sentinel errors returned by Search.
var (
	// ErrGraphNil indicates a nil graph was passed to Search.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNoSources indicates an empty source slice.
	ErrNoSources = errors.New("dijkstra: no source vertices")

	// ErrVertexRange indicates a source vertex outside [0, Order()).
	ErrVertexRange = errors.New("dijkstra: source vertex out of range")
)

// Options configures the behavior of Search.
type Options[W graph.Weight] struct {
	// Predecessors, if true, records the shortest-path tree in Record.Prev.
	Predecessors bool

	// MaxDistance caps exploration when capped is set: once the nearest
	// unsettled vertex is farther than MaxDistance, the search stops.
	MaxDistance W

	capped bool
}

// Option is a functional option for configuring Search.
type Option[W graph.Weight] func(*Options[W])

// DefaultOptions returns an Options with predecessor tracking off and no
// distance cap.
func DefaultOptions[W graph.Weight]() Options[W] {
	return Options[W]{}
}

// WithPredecessors enables predecessor tracking in the returned Record.
func WithPredecessors[W graph.Weight]() Option[W] {
	return func(o *Options[W]) { o.Predecessors = true }
}

// WithMaxDistance caps exploration at the given distance: vertices whose
// shortest distance exceeds max stay unreached. Panics on a negative max
// (programmer error surfaced early, as option constructors do).
func WithMaxDistance[W graph.Weight](max W) Option[W] {
	if max < 0 {
		panic("dijkstra: WithMaxDistance: negative cap")
	}

	return func(o *Options[W]) {
		o.MaxDistance = max
		o.capped = true
	}
}
