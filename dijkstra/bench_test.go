package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/kvisto/graphpath/dijkstra"
	"github.com/kvisto/graphpath/graph"
)

// BenchmarkSearch_Chain measures Dijkstra on a weighted linear chain.
func BenchmarkSearch_Chain(b *testing.B) {
	const n = 10000
	g := graph.NewWeighted[int64](n)
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(i, i+1, int64(i%7+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.From(g, 0)
	}
}

// BenchmarkSearch_RandomSparse measures Dijkstra on a seeded sparse
// random graph (~4 out-edges per vertex).
func BenchmarkSearch_RandomSparse(b *testing.B) {
	const n = 2000
	rng := rand.New(rand.NewSource(42))
	g := graph.NewWeighted[int64](n)
	for u := 0; u < n; u++ {
		for k := 0; k < 4; k++ {
			_ = g.AddEdge(u, rng.Intn(n), int64(rng.Intn(100)+1))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.From(g, 0)
	}
}
