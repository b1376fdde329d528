// Package bellmanford_test provides runnable examples for
// Bellman–Ford–Moore.
package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/kvisto/graphpath/bellmanford"
	"github.com/kvisto/graphpath/graph"
)

// ExampleSearch demonstrates a negative edge opening a cheaper route.
func ExampleSearch() {
	// 0 →2→ 1, 0 →3→ 2, 2 →(-2)→ 1
	g := graph.NewWeighted[int64](3)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 3)
	_ = g.AddEdge(2, 1, -2)

	rec, err := bellmanford.Search(g, []int{0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("dist:", rec.Dist)
	// Output: dist: [0 1 3]
}

// ExampleSearch_negativeCycle shows the distinguished failure for a
// reachable negative cycle.
func ExampleSearch_negativeCycle() {
	// triangle 0→1→2→0 with weights 1, 1, -3
	g := graph.NewWeighted[int](3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 0, -3)

	_, err := bellmanford.From(g, 0)
	fmt.Println(errors.Is(err, bellmanford.ErrNegativeCycle))
	// Output: true
}
