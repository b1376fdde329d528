package bfs

import (
	"iter"

	"github.com/kvisto/graphpath/graph"
)

// Walk returns the breadth-first discovery order from the given sources
// as a lazy, finite sequence. Each call builds a fresh walk; no state
// survives between calls, and a partially consumed sequence cannot be
// resumed — range over a new Walk instead.
//
// An iterator has no error channel: a nil graph, an empty source set, or
// an out-of-range source yields an empty sequence. Callers that need
// those cases diagnosed should use Search.
func Walk(g graph.Graph, sources ...int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if g == nil || len(sources) == 0 {
			return
		}
		n := g.Order()
		seen := make([]bool, n)
		queue := make([]int, 0, n)
		for _, s := range sources {
			if s < 0 || s >= n {
				return
			}
			if seen[s] {
				continue
			}
			seen[s] = true
			queue = append(queue, s)
		}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			if !yield(u) {
				return
			}
			for w := range g.OutNeighbors(u) {
				if seen[w] {
					continue
				}
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}
}
