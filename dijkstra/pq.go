package dijkstra

import "github.com/kvisto/graphpath/graph"

// entry pairs a vertex with a tentative distance. Entries are ordered by
// distance ascending; ties break arbitrarily, which only affects the
// shape of the predecessor tree when several optima exist.
type entry[W graph.Weight] struct {
	v    int
	dist W
}

// minHeap is a binary min-heap of entries under the lazy-deletion
// discipline: every relaxation pushes a fresh entry, and outdated ones
// are recognized on pop (the vertex is already settled) and skipped.
// No decrease-key operation exists or is needed.
type minHeap[W graph.Weight] []entry[W]

func (h minHeap[W]) Len() int            { return len(h) }
func (h minHeap[W]) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h minHeap[W]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap[W]) Push(x interface{}) { *h = append(*h, x.(entry[W])) }

func (h *minHeap[W]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
