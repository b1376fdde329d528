// Package bfs provides multi-source breadth-first search over any
// graph.Graph, returning unweighted shortest-path distances, optional
// predecessor links, and a lazy discovery-order sequence.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from the
//     nearest of one or more source vertices.
//   - Search returns a *graph.Record[int] containing:
//   - Dist: edges from the nearest source (valid where Reached)
//   - Prev: predecessor tree, when WithPredecessors() is set
//   - Reached: whether the frontier ever reached the vertex
//   - Walk exposes the same frontier walk as a lazy iter.Seq[int] in
//     discovery order, for callers that need visitation order without
//     distance bookkeeping.
//   - Supports an OnVisit hook (may abort with an error) and a MaxDepth
//     cap, mirroring the other engines' functional options.
//
// Multi-source semantics
//
//	All sources are seeded at distance 0 into the same frontier, so the
//	recorded distance to any vertex is the minimum over all sources. When
//	two sources reach a vertex in the same layer, the tie is broken by
//	the caller's enumeration order of the source slice; that order is the
//	only determinism guarantee across equivalent source sets.
//
// Complexity (V = Order(), E = edges reachable from the sources)
//
//   - Time:   O(V + E) — each vertex enqueued at most once
//   - Memory: O(V) for the frontier, distances, and reached mask
//
// Usage
//
//	rec, err := bfs.Search(g, []int{0, 7}, bfs.WithPredecessors())
//	if err != nil {
//	    // ErrGraphNil, ErrNoSources, ErrVertexRange, ErrOptionViolation,
//	    // or a wrapped OnVisit error
//	}
//	path, _ := rec.Path(42) // nearest source → 42
//
//	for v := range bfs.Walk(g, 0) {
//	    // vertices in discovery order
//	}
//
// Unreachable vertices are normal output (Reached[v] == false), never an
// error.
package bfs
