package build

import (
	"fmt"

	"github.com/kvisto/graphpath/graph"
)

const (
	minRandomNodes = 1
	minTreeNodes   = 1
)

// Gnp returns an Erdős–Rényi digraph G(n, p): each ordered pair u→v with
// u ≠ v is an edge independently with probability p. Pairs are examined
// in ascending (u, v) order, so a fixed seed fixes the graph.
func Gnp(n int, p float64, opts ...Option) (*graph.AdjacencyList, error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("Gnp: n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("Gnp: p=%v: %w", p, ErrBadProbability)
	}
	cfg := newConfig(opts...)
	g := graph.NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if cfg.rng.Float64() < p {
				mustAdd(g, u, v)
			}
		}
	}

	return g, nil
}

// Tournament returns a random tournament on n vertices: for every
// unordered pair {u, v}, exactly one of u→v and v→u, chosen by a fair
// coin. Pairs are examined in ascending order for seed stability.
func Tournament(n int, opts ...Option) (*graph.AdjacencyList, error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("Tournament: n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	g := graph.NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if cfg.rng.Intn(2) == 0 {
				mustAdd(g, u, v)
			} else {
				mustAdd(g, v, u)
			}
		}
	}

	return g, nil
}

// RecursiveTree returns a random recursive tree on n vertices: each
// vertex i ≥ 1 attaches under a uniformly random ancestor j < i, with the
// edge directed j→i (root 0 reaches everything).
func RecursiveTree(n int, opts ...Option) (*graph.AdjacencyList, error) {
	if n < minTreeNodes {
		return nil, fmt.Errorf("RecursiveTree: n=%d < min=%d: %w", n, minTreeNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	g := graph.NewAdjacencyList(n)
	for i := 1; i < n; i++ {
		mustAdd(g, cfg.rng.Intn(i), i)
	}

	return g, nil
}
