// Package bellmanford_test validates Bellman–Ford–Moore distances,
// negative-edge handling, and negative-cycle detection.
package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvisto/graphpath/bellmanford"
	"github.com/kvisto/graphpath/dijkstra"
	"github.com/kvisto/graphpath/graph"
)

func TestSearch_Errors(t *testing.T) {
	_, err := bellmanford.Search[int64](nil, []int{0})
	require.ErrorIs(t, err, bellmanford.ErrGraphNil)

	g := graph.NewWeighted[int64](2)
	_, err = bellmanford.Search(g, nil)
	require.ErrorIs(t, err, bellmanford.ErrNoSources)

	_, err = bellmanford.Search(g, []int{2})
	require.ErrorIs(t, err, bellmanford.ErrVertexRange)

	_, err = bellmanford.Search(g, []int{-1})
	require.ErrorIs(t, err, bellmanford.ErrVertexRange)
}

func TestSearch_NegativeEdgeShortcut(t *testing.T) {
	// 0→1 costs 2 directly, but 0→2→1 costs 3 + (-2) = 1.
	g := graph.NewWeighted[int64](3)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))
	require.NoError(t, g.AddEdge(2, 1, -2))

	rec, err := bellmanford.From(g, 0, bellmanford.WithPredecessors[int64]())
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 3}, rec.Dist)

	path, err := rec.Path(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1}, path)
}

func TestSearch_NegativeCycleDetectedFromEveryVertex(t *testing.T) {
	// 3-cycle with weights 1, 1, -3: total -1.
	g := graph.NewWeighted[int](3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 0, -3))

	for s := 0; s < 3; s++ {
		rec, err := bellmanford.From(g, s)
		require.ErrorIsf(t, err, bellmanford.ErrNegativeCycle, "source %d", s)
		require.Nil(t, rec, "no partial distances may leak out of a failed run")
	}
}

func TestSearch_NegativeCycleNotReachableIsFine(t *testing.T) {
	// The negative cycle lives in {2,3}; from source 0 only 1 is reachable.
	g := graph.NewWeighted[int](4)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 2, -2))

	rec, err := bellmanford.From(g, 0)
	require.NoError(t, err)
	require.Equal(t, 5, rec.Dist[1])
	require.False(t, rec.Reached[2])
	require.False(t, rec.Reached[3])
}

func TestSearch_NegativeSelfLoop(t *testing.T) {
	g := graph.NewWeighted[int](2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 1, -1))

	_, err := bellmanford.From(g, 0)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestSearch_AgreesWithDijkstraOnNonNegative(t *testing.T) {
	g := graph.NewWeighted[int64](6)
	edges := [][3]int64{
		{0, 1, 7}, {0, 2, 9}, {0, 5, 14}, {1, 2, 10},
		{1, 3, 15}, {2, 3, 11}, {2, 5, 2}, {3, 4, 6}, {5, 4, 9},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	bf, err := bellmanford.From(g, 0)
	require.NoError(t, err)
	dj, err := dijkstra.From(g, 0)
	require.NoError(t, err)

	require.Equal(t, dj.Reached, bf.Reached)
	require.Equal(t, dj.Dist, bf.Dist)
}

func TestSearch_MultiSource(t *testing.T) {
	// Two chains meeting at 2; source 3 reaches 2 cheaper than source 0.
	g := graph.NewWeighted[int](4)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 2, 4))
	require.NoError(t, g.AddEdge(3, 2, 1))

	rec, err := bellmanford.Search(g, []int{0, 3})
	require.NoError(t, err)
	require.Equal(t, 0, rec.Dist[0])
	require.Equal(t, 0, rec.Dist[3])
	require.Equal(t, 1, rec.Dist[2])
}

func TestSearch_SourceIdentity(t *testing.T) {
	g := graph.NewWeighted[int](3)
	require.NoError(t, g.AddEdge(0, 1, -1))

	rec, err := bellmanford.Search(g, []int{0, 2}, bellmanford.WithPredecessors[int]())
	require.NoError(t, err)
	for _, s := range []int{0, 2} {
		require.Equal(t, 0, rec.Dist[s])
		require.Equal(t, graph.NoPrev, rec.Prev[s])
	}
}

func TestSearch_UnreachableVertex(t *testing.T) {
	g := graph.NewWeighted[int64](4)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))

	rec, err := bellmanford.From(g, 0)
	require.NoError(t, err)
	require.False(t, rec.Reached[3])
}

func TestSearch_EdgeListRepresentation(t *testing.T) {
	// The flat edge list is the natural shape for full relaxation passes.
	g := graph.NewEdgeList[int](4)
	require.NoError(t, g.Add(0, 1, 5))
	require.NoError(t, g.Add(1, 2, -3))
	require.NoError(t, g.Add(0, 2, 4))
	require.NoError(t, g.Add(2, 3, 2))

	rec, err := bellmanford.From[int](g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 5, 2, 4}, rec.Dist)
}

func TestSearch_Idempotent(t *testing.T) {
	g := graph.NewWeighted[int](4)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, -1))
	require.NoError(t, g.AddEdge(2, 3, 2))

	a, err := bellmanford.Search(g, []int{0}, bellmanford.WithPredecessors[int]())
	require.NoError(t, err)
	b, err := bellmanford.Search(g, []int{0}, bellmanford.WithPredecessors[int]())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSearch_SingleVertexNoEdges(t *testing.T) {
	g := graph.NewWeighted[int](1)
	rec, err := bellmanford.From(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, rec.Dist)
	require.Equal(t, []bool{true}, rec.Reached)
}
