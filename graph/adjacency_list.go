package graph

import (
	"fmt"
	"iter"
)

// AdjacencyList is a slice-backed unweighted directed graph. Out-edges
// are kept per vertex in insertion order; multi-edges and self-loops are
// permitted. The zero value is an empty graph of order 0; use
// NewAdjacencyList for a fixed order.
type AdjacencyList struct {
	adj [][]int
}

// NewAdjacencyList returns an empty adjacency list over n vertices.
// Panics if n is negative (programmer error, not a runtime condition).
func NewAdjacencyList(n int) *AdjacencyList {
	if n < 0 {
		panic(fmt.Sprintf("graph: NewAdjacencyList(%d): negative order", n))
	}

	return &AdjacencyList{adj: make([][]int, n)}
}

// Order returns the number of vertices.
func (g *AdjacencyList) Order() int { return len(g.adj) }

// AddEdge inserts the directed edge u→v.
// Returns ErrVertexRange if either endpoint is out of range.
func (g *AdjacencyList) AddEdge(u, v int) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], v)

	return nil
}

// AddBoth inserts both u→v and v→u, modelling an undirected edge.
func (g *AdjacencyList) AddBoth(u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return err
	}

	return g.AddEdge(v, u)
}

// OutDegree returns the number of out-edges of v.
func (g *AdjacencyList) OutDegree(v int) int { return len(g.adj[v]) }

// OutNeighbors yields v's out-neighbors in insertion order.
func (g *AdjacencyList) OutNeighbors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, w := range g.adj[v] {
			if !yield(w) {
				return
			}
		}
	}
}

func (g *AdjacencyList) check(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: vertex %d, order %d", ErrVertexRange, v, len(g.adj))
	}

	return nil
}

// WeightedAdjacencyList is a slice-backed directed graph carrying one
// weight of type W per edge. It satisfies both Weighted[W] and, by
// dropping weights, Graph — so BFS runs on it as well.
type WeightedAdjacencyList[W Weight] struct {
	adj [][]Arc[W]
}

// NewWeighted returns an empty weighted adjacency list over n vertices.
// Panics if n is negative.
func NewWeighted[W Weight](n int) *WeightedAdjacencyList[W] {
	if n < 0 {
		panic(fmt.Sprintf("graph: NewWeighted(%d): negative order", n))
	}

	return &WeightedAdjacencyList[W]{adj: make([][]Arc[W], n)}
}

// Order returns the number of vertices.
func (g *WeightedAdjacencyList[W]) Order() int { return len(g.adj) }

// AddEdge inserts the directed edge u→v with weight w.
// Returns ErrVertexRange if either endpoint is out of range.
func (g *WeightedAdjacencyList[W]) AddEdge(u, v int, w W) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], Arc[W]{To: v, Weight: w})

	return nil
}

// AddBoth inserts u→v and v→u, both with weight w.
func (g *WeightedAdjacencyList[W]) AddBoth(u, v int, w W) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return err
	}

	return g.AddEdge(v, u, w)
}

// OutDegree returns the number of out-edges of v.
func (g *WeightedAdjacencyList[W]) OutDegree(v int) int { return len(g.adj[v]) }

// OutEdges yields v's out-edges as (target, weight) in insertion order.
func (g *WeightedAdjacencyList[W]) OutEdges(v int) iter.Seq2[int, W] {
	return func(yield func(int, W) bool) {
		for _, a := range g.adj[v] {
			if !yield(a.To, a.Weight) {
				return
			}
		}
	}
}

// OutNeighbors yields v's out-neighbors with weights dropped.
func (g *WeightedAdjacencyList[W]) OutNeighbors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, a := range g.adj[v] {
			if !yield(a.To) {
				return
			}
		}
	}
}

func (g *WeightedAdjacencyList[W]) check(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: vertex %d, order %d", ErrVertexRange, v, len(g.adj))
	}

	return nil
}
