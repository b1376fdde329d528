// Package dijkstra implements Dijkstra's shortest-path algorithm over
// any graph.Weighted[W] with non-negative edge weights.
//
// Search computes the minimum-weight path distance from the nearest of
// one or more source vertices to every reachable vertex, processing
// vertices in order of increasing distance through a min-heap priority
// queue and relaxing out-edges as each vertex settles.
//
// Precondition
//
//	Every edge weight must be ≥ 0. The engine does not scan weights up
//	front and does not detect violations: behavior with negative weights
//	is unspecified. Route graphs that may carry negative weights to
//	package bellmanford instead.
//
// Complexity (V = Order(), E = edges reachable from the sources)
//
//   - Time:  O((V + E) log V)
//   - Each vertex settles at most once: V pops that do work.
//   - Each relaxation may push a duplicate entry: up to E pushes.
//   - Space: O(V + E) — O(V) for the record, O(E) worst case in the heap
//     under lazy deletion.
//
// Notes on implementation choices
//
//   - Lazy deletion instead of decrease-key: improvements push duplicate
//     heap entries, and stale entries are discarded on pop via a settled
//     mask. This keeps the priority structure a plain binary heap at the
//     cost of O(E) extra entries — a deliberate trade-off, not a gap.
//   - WithMaxDistance stops exploration once the nearest unsettled vertex
//     lies beyond the cap; vertices past it stay unreached.
//
// Usage
//
//	rec, err := dijkstra.Search(g, []int{0}, dijkstra.WithPredecessors[int64]())
//	if err != nil {
//	    // ErrGraphNil, ErrNoSources, or ErrVertexRange
//	}
//	fmt.Println(rec.Dist[9])
//
// Unreachable vertices are normal output (Reached[v] == false), never an
// error.
package dijkstra
