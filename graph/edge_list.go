package graph

import (
	"fmt"
	"iter"
)

// EdgeList stores a weighted directed graph as a flat slice of edges.
// OutEdges scans the whole list per vertex, so it is an O(E)-per-vertex
// representation — cheap to build and a natural fit for algorithms that
// relax every edge per pass (Bellman–Ford–Moore), poor for per-vertex
// exploration on large graphs.
type EdgeList[W Weight] struct {
	order int
	edges []Edge[W]
}

// NewEdgeList returns an empty edge list over n vertices.
// Panics if n is negative.
func NewEdgeList[W Weight](n int) *EdgeList[W] {
	if n < 0 {
		panic(fmt.Sprintf("graph: NewEdgeList(%d): negative order", n))
	}

	return &EdgeList[W]{order: n}
}

// Order returns the number of vertices.
func (g *EdgeList[W]) Order() int { return g.order }

// Size returns the number of edges.
func (g *EdgeList[W]) Size() int { return len(g.edges) }

// Add appends the directed edge u→v with weight w.
// Returns ErrVertexRange if either endpoint is out of range.
func (g *EdgeList[W]) Add(u, v int, w W) error {
	if u < 0 || u >= g.order {
		return fmt.Errorf("%w: vertex %d, order %d", ErrVertexRange, u, g.order)
	}
	if v < 0 || v >= g.order {
		return fmt.Errorf("%w: vertex %d, order %d", ErrVertexRange, v, g.order)
	}
	g.edges = append(g.edges, Edge[W]{From: u, To: v, Weight: w})

	return nil
}

// OutEdges yields v's out-edges in insertion order via a full scan.
func (g *EdgeList[W]) OutEdges(v int) iter.Seq2[int, W] {
	return func(yield func(int, W) bool) {
		for _, e := range g.edges {
			if e.From != v {
				continue
			}
			if !yield(e.To, e.Weight) {
				return
			}
		}
	}
}

// OutNeighbors yields v's out-neighbors with weights dropped.
func (g *EdgeList[W]) OutNeighbors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, e := range g.edges {
			if e.From != v {
				continue
			}
			if !yield(e.To) {
				return
			}
		}
	}
}
