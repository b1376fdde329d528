package bellmanford

import (
	"fmt"

	"github.com/kvisto/graphpath/graph"
)

// Search computes shortest weighted distances on g from the given
// sources, tolerating negative edge weights. Distances are minimum path
// weights from the nearest source; duplicate sources are harmless.
//
// Returns ErrGraphNil, ErrNoSources or ErrVertexRange for invalid input,
// and ErrNegativeCycle (with a nil record) when a negative cycle is
// reachable from a source.
func Search[W graph.Weight](g graph.Weighted[W], sources []int, opts ...Option[W]) (*graph.Record[W], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	n := g.Order()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: vertex %d, order %d", ErrVertexRange, s, n)
		}
	}

	rec := graph.NewRecord[W](n, cfg.Predecessors)
	for _, s := range sources {
		rec.Reached[s] = true // Dist zero value is already 0
	}

	// Order()-1 full passes finalize every negative-cycle-free shortest
	// path; a pass without improvement means the rest would be no-ops.
	for i := 1; i < n; i++ {
		if !relaxAll(g, rec) {
			return rec, nil
		}
	}

	// One probe pass: any further relaxation proves a reachable negative
	// cycle, and the half-relaxed distances are withheld.
	if relaxAll(g, rec) {
		return nil, ErrNegativeCycle
	}

	return rec, nil
}

// From is the single-source convenience form of Search.
func From[W graph.Weight](g graph.Weighted[W], source int, opts ...Option[W]) (*graph.Record[W], error) {
	return Search(g, []int{source}, opts...)
}

// relaxAll performs one full relaxation pass over every edge, scanning
// out-edges vertex by vertex, and reports whether anything improved.
func relaxAll[W graph.Weight](g graph.Weighted[W], rec *graph.Record[W]) bool {
	improved := false
	for u := 0; u < len(rec.Dist); u++ {
		if !rec.Reached[u] {
			continue
		}
		for w, wt := range g.OutEdges(u) {
			next := rec.Dist[u] + wt
			if rec.Reached[w] && next >= rec.Dist[w] {
				continue
			}
			rec.Reached[w] = true
			rec.Dist[w] = next
			if rec.Prev != nil {
				rec.Prev[w] = u
			}
			improved = true
		}
	}

	return improved
}
