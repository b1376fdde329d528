// Package bellmanford implements the Bellman–Ford–Moore shortest-path
// algorithm over any graph.Weighted[W], tolerating negative edge weights
// and detecting negative cycles.
//
// Search computes the minimum-weight path distance from the nearest of
// one or more source vertices to every vertex reachable without passing
// through a negative-weight cycle. Unlike Dijkstra, vertices are not
// expanded in priority order: each pass relaxes every edge of the graph
// once, and Order()−1 passes suffice because a shortest simple path has
// at most Order()−1 edges. A pass that relaxes nothing ends the run
// early.
//
// Negative cycles
//
//	After Order()−1 passes, one additional pass probes for further
//	improvement. If any edge still relaxes, a negative cycle is reachable
//	from a source and Search returns ErrNegativeCycle with a nil record —
//	partially relaxed distances from a failed run carry no guarantees and
//	are deliberately withheld.
//
// Complexity (V = Order(), E = total edges)
//
//   - Time:  O(V × E) — strictly more expensive than Dijkstra, in
//     exchange for tolerating negative weights.
//   - Space: O(V) for the record.
//
// Usage
//
//	rec, err := bellmanford.Search(g, []int{0})
//	switch {
//	case errors.Is(err, bellmanford.ErrNegativeCycle):
//	    // shortest paths undefined through the cycle
//	case err != nil:
//	    // ErrGraphNil, ErrNoSources, or ErrVertexRange
//	}
//
// Unreachable vertices are normal output (Reached[v] == false), never an
// error.
package bellmanford
