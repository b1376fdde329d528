package inspect

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kvisto/graphpath/graph"
)

// ErrOrderMismatch indicates a binary operation over graphs of different
// orders.
var ErrOrderMismatch = errors.New("inspect: graphs differ in order")

// OutDegrees returns the out-degree of every vertex, indexed by vertex.
func OutDegrees(g graph.Graph) []int {
	deg := make([]int, g.Order())
	for v := range deg {
		for range g.OutNeighbors(v) {
			deg[v]++
		}
	}

	return deg
}

// InDegrees returns the in-degree of every vertex, indexed by vertex.
func InDegrees(g graph.Graph) []int {
	deg := make([]int, g.Order())
	for v := 0; v < g.Order(); v++ {
		for w := range g.OutNeighbors(v) {
			deg[w]++
		}
	}

	return deg
}

// DegreeSequence returns the total degrees (in + out) sorted in
// non-increasing order, the usual normal form for comparing graphs.
func DegreeSequence(g graph.Graph) []int {
	out := OutDegrees(g)
	in := InDegrees(g)
	seq := make([]int, len(out))
	for v := range seq {
		seq[v] = out[v] + in[v]
	}
	sort.Sort(sort.Reverse(sort.IntSlice(seq)))

	return seq
}

// Complement returns the loop-free complement: u→v (u ≠ v) is an edge of
// the result exactly when it is not an edge of g.
func Complement(g graph.Graph) *graph.BitMatrix {
	n := g.Order()
	have := toBitMatrix(g)
	out := graph.NewBitMatrix(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || have.Has(u, v) {
				continue
			}
			mustSet(out, u, v)
		}
	}

	return out
}

// Converse returns g with every edge reversed: v→u for each edge u→v.
// Multi-edges are preserved.
func Converse(g graph.Graph) *graph.AdjacencyList {
	n := g.Order()
	out := graph.NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		for v := range g.OutNeighbors(u) {
			mustAdd(out, v, u)
		}
	}

	return out
}

// Union returns a graph holding every edge of g and every edge of h.
// Edges present in both appear twice (multi-edges are permitted).
// Returns ErrOrderMismatch when the orders differ.
func Union(g, h graph.Graph) (*graph.AdjacencyList, error) {
	if g.Order() != h.Order() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrOrderMismatch, g.Order(), h.Order())
	}
	out := graph.NewAdjacencyList(g.Order())
	for u := 0; u < g.Order(); u++ {
		for v := range g.OutNeighbors(u) {
			mustAdd(out, u, v)
		}
		for v := range h.OutNeighbors(u) {
			mustAdd(out, u, v)
		}
	}

	return out, nil
}

// IsRegular reports whether every vertex has the same out-degree and the
// same in-degree (k-regular digraph). The empty graph is regular.
func IsRegular(g graph.Graph) bool {
	out := OutDegrees(g)
	in := InDegrees(g)
	for v := range out {
		if out[v] != out[0] || in[v] != in[0] {
			return false
		}
	}

	return true
}

// IsTournament reports whether g is a tournament: no self-loops, and
// exactly one of u→v, v→u for every pair u ≠ v.
func IsTournament(g graph.Graph) bool {
	n := g.Order()
	have := toBitMatrix(g)
	for u := 0; u < n; u++ {
		if have.Has(u, u) {
			return false
		}
		for v := u + 1; v < n; v++ {
			if have.Has(u, v) == have.Has(v, u) {
				return false
			}
		}
	}

	return true
}

// toBitMatrix stages g into a bit matrix for O(1) edge tests.
func toBitMatrix(g graph.Graph) *graph.BitMatrix {
	m := graph.NewBitMatrix(g.Order())
	for u := 0; u < g.Order(); u++ {
		for v := range g.OutNeighbors(u) {
			mustSet(m, u, v)
		}
	}

	return m
}

// mustSet/mustAdd insert edges whose endpoints came from the input
// graph's own iteration; a range failure is a representation bug.
func mustSet(m *graph.BitMatrix, u, v int) {
	if err := m.Set(u, v); err != nil {
		panic(fmt.Sprintf("inspect: internal Set(%d,%d): %v", u, v, err))
	}
}

func mustAdd(g *graph.AdjacencyList, u, v int) {
	if err := g.AddEdge(u, v); err != nil {
		panic(fmt.Sprintf("inspect: internal AddEdge(%d,%d): %v", u, v, err))
	}
}
