// Package graph declares the capability contracts, the Weight constraint,
// and sentinel errors shared by the concrete representations.
package graph

import (
	"errors"
	"iter"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for graph construction and Record queries.
var (
	// ErrVertexRange indicates a vertex index outside [0, Order()).
	ErrVertexRange = errors.New("graph: vertex index out of range")

	// ErrUnreachable indicates a path query for a vertex the search never reached.
	ErrUnreachable = errors.New("graph: vertex unreachable")

	// ErrNoPredecessors indicates a path query on a Record built without predecessors.
	ErrNoPredecessors = errors.New("graph: record has no predecessor data")
)

// Weight is the constraint on edge-weight types: any integer or float.
// Engines only require that W is totally ordered, has a zero value, and
// supports addition; overflow during distance summation is the caller's
// responsibility via the choice of W.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Graph is the minimal capability an unweighted representation must
// provide. Order must be stable for the duration of an engine call.
type Graph interface {
	// Order returns the number of vertices n; vertices are 0..n-1.
	Order() int

	// OutNeighbors yields the targets of v's out-edges, each edge once.
	// v must be in [0, Order()).
	OutNeighbors(v int) iter.Seq[int]
}

// Weighted is the capability a weighted representation must provide.
// It deliberately does not embed Graph: a weighted representation is not
// obliged to offer weight-free iteration (though most here do).
type Weighted[W Weight] interface {
	// Order returns the number of vertices n; vertices are 0..n-1.
	Order() int

	// OutEdges yields (target, weight) for each of v's out-edges, each
	// edge once. v must be in [0, Order()).
	OutEdges(v int) iter.Seq2[int, W]
}

// Arc is one out-edge of a vertex in a weighted adjacency list.
type Arc[W Weight] struct {
	To     int
	Weight W
}

// Edge is an explicit (from, to, weight) triple as stored by EdgeList.
type Edge[W Weight] struct {
	From   int
	To     int
	Weight W
}
