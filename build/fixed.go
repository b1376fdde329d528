package build

import (
	"fmt"

	"github.com/kvisto/graphpath/graph"
)

// Minimum orders per family; below these the family is degenerate.
const (
	minCompleteNodes = 1
	minCycleNodes    = 3
	minWheelNodes    = 4
	minStarNodes     = 2
	minBicliqueSide  = 1
)

// Complete returns K_n as a digraph: every ordered pair u→v with u ≠ v.
func Complete(n int) (*graph.AdjacencyList, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	g := graph.NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			mustAdd(g, u, v)
		}
	}

	return g, nil
}

// Cycle returns the directed ring C_n: i→(i+1) mod n for i = 0..n−1.
func Cycle(n int) (*graph.AdjacencyList, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	g := graph.NewAdjacencyList(n)
	for i := 0; i < n; i++ {
		mustAdd(g, i, (i+1)%n)
	}

	return g, nil
}

// Wheel returns W_n: hub 0 joined both ways to every rim vertex of the
// directed (n−1)-ring 1..n−1.
func Wheel(n int) (*graph.AdjacencyList, error) {
	if n < minWheelNodes {
		return nil, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
	}
	g := graph.NewAdjacencyList(n)
	rim := n - 1
	for i := 1; i <= rim; i++ {
		mustAdd(g, i, 1+i%rim) // ring step on 1..rim
		mustBoth(g, 0, i)      // spoke
	}

	return g, nil
}

// Star returns S_n: center 0 joined both ways to each of the n−1 leaves.
func Star(n int) (*graph.AdjacencyList, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	g := graph.NewAdjacencyList(n)
	for v := 1; v < n; v++ {
		mustBoth(g, 0, v)
	}

	return g, nil
}

// Biclique returns K_{m,n}: left part 0..m−1, right part m..m+n−1, and
// every left→right edge.
func Biclique(m, n int) (*graph.AdjacencyList, error) {
	if m < minBicliqueSide || n < minBicliqueSide {
		return nil, fmt.Errorf("Biclique: m=%d, n=%d, min side=%d: %w", m, n, minBicliqueSide, ErrTooFewVertices)
	}
	g := graph.NewAdjacencyList(m + n)
	for u := 0; u < m; u++ {
		for v := m; v < m+n; v++ {
			mustAdd(g, u, v)
		}
	}

	return g, nil
}

// mustAdd inserts an edge whose endpoints the generator itself computed;
// a range failure here is a generator bug, not caller input.
func mustAdd(g *graph.AdjacencyList, u, v int) {
	if err := g.AddEdge(u, v); err != nil {
		panic(fmt.Sprintf("build: internal AddEdge(%d,%d): %v", u, v, err))
	}
}

func mustBoth(g *graph.AdjacencyList, u, v int) {
	mustAdd(g, u, v)
	mustAdd(g, v, u)
}
