package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvisto/graphpath/graph"
)

func TestEdgeList_Basics(t *testing.T) {
	g := graph.NewEdgeList[int](3)
	require.Equal(t, 3, g.Order())
	require.Equal(t, 0, g.Size())

	require.NoError(t, g.Add(0, 1, 4))
	require.NoError(t, g.Add(2, 1, 1))
	require.NoError(t, g.Add(0, 2, 1))
	require.Equal(t, 3, g.Size())

	var targets []int
	var weights []int
	for w, wt := range g.OutEdges(0) {
		targets = append(targets, w)
		weights = append(weights, wt)
	}
	require.Equal(t, []int{1, 2}, targets, "scan preserves insertion order")
	require.Equal(t, []int{4, 1}, weights)

	require.Equal(t, []int{1}, collect(g, 2))
	require.Empty(t, collect(g, 1))
}

func TestEdgeList_NegativeWeightsAllowed(t *testing.T) {
	g := graph.NewEdgeList[int64](2)
	require.NoError(t, g.Add(0, 1, -7))
	for _, wt := range g.OutEdges(0) {
		require.Equal(t, int64(-7), wt)
	}
}

func TestEdgeList_Errors(t *testing.T) {
	g := graph.NewEdgeList[int](2)
	require.ErrorIs(t, g.Add(2, 0, 1), graph.ErrVertexRange)
	require.ErrorIs(t, g.Add(0, -1, 1), graph.ErrVertexRange)
	require.Panics(t, func() { graph.NewEdgeList[int](-1) })
}
