package graph

import (
	"fmt"
	"iter"
)

// SparseAdjacency is a map-backed unweighted directed graph: only
// vertices that actually carry out-edges occupy memory. Suited to graphs
// whose order is large relative to the number of non-isolated vertices.
type SparseAdjacency struct {
	order int
	adj   map[int][]int
}

// NewSparseAdjacency returns an empty map-backed graph over n vertices.
// Panics if n is negative.
func NewSparseAdjacency(n int) *SparseAdjacency {
	if n < 0 {
		panic(fmt.Sprintf("graph: NewSparseAdjacency(%d): negative order", n))
	}

	return &SparseAdjacency{order: n, adj: make(map[int][]int)}
}

// Order returns the number of vertices.
func (g *SparseAdjacency) Order() int { return g.order }

// AddEdge inserts the directed edge u→v.
// Returns ErrVertexRange if either endpoint is out of range.
func (g *SparseAdjacency) AddEdge(u, v int) error {
	if u < 0 || u >= g.order {
		return fmt.Errorf("%w: vertex %d, order %d", ErrVertexRange, u, g.order)
	}
	if v < 0 || v >= g.order {
		return fmt.Errorf("%w: vertex %d, order %d", ErrVertexRange, v, g.order)
	}
	g.adj[u] = append(g.adj[u], v)

	return nil
}

// OutDegree returns the number of out-edges of v.
func (g *SparseAdjacency) OutDegree(v int) int { return len(g.adj[v]) }

// OutNeighbors yields v's out-neighbors in insertion order. Vertices
// without out-edges yield nothing; they need no map entry.
func (g *SparseAdjacency) OutNeighbors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, w := range g.adj[v] {
			if !yield(w) {
				return
			}
		}
	}
}
