package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/kvisto/graphpath/graph"
)

// Search computes shortest weighted distances on g from the given
// sources. Distances are minimum path weights from the nearest source;
// duplicate sources are harmless. All edge weights must be ≥ 0 (see the
// package documentation — this precondition is not checked).
//
// Returns ErrGraphNil, ErrNoSources or ErrVertexRange for invalid input.
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

	r := &runner[W]{
		g:       g,
		cfg:     cfg,
		rec:     graph.NewRecord[W](n, cfg.Predecessors),
		settled: make([]bool, n),
		pq:      make(minHeap[W], 0, n),
	}
	r.seed(sources)
	r.process()

	return r.rec, nil
}

// From is the single-source convenience form of Search.
func From[W graph.Weight](g graph.Weighted[W], source int, opts ...Option[W]) (*graph.Record[W], error) {
	return Search(g, []int{source}, opts...)
}

// runner holds the mutable state of a single Search execution.
type runner[W graph.Weight] struct {
	g       graph.Weighted[W] // input graph, read-only for the call
	cfg     Options[W]
	rec     *graph.Record[W]
	settled []bool // distance finalized, stale heap entries skipped
	pq      minHeap[W]
}

// seed marks every source reached at distance 0 and pushes it keyed by 0.
func (r *runner[W]) seed(sources []int) {
	for _, s := range sources {
		if r.rec.Reached[s] {
			continue
		}
		r.rec.Reached[s] = true
		heap.Push(&r.pq, entry[W]{v: s})
	}
}

// process repeatedly pops the nearest unsettled vertex and relaxes its
// out-edges until the heap drains or the distance cap is crossed.
func (r *runner[W]) process() {
	for r.pq.Len() > 0 {
		e := heap.Pop(&r.pq).(entry[W])
		u := e.v
		if r.settled[u] {
			// stale lazy-deletion entry
			continue
		}
		if r.cfg.capped && e.dist > r.cfg.MaxDistance {
			// everything left in the heap is at least this far; u stays
			// unsettled and its recorded distance must not be trusted past
			// the cap, so nothing beyond this point is marked reached.
			break
		}
		r.settled[u] = true
		r.relax(u)
	}
}

// relax attempts to improve every out-neighbor of u. Assumes dist[u] is
// final, which non-negative weights guarantee for the minimum pop.
func (r *runner[W]) relax(u int) {
	du := r.rec.Dist[u]
	for w, wt := range r.g.OutEdges(u) {
		next := du + wt
		if r.cfg.capped && next > r.cfg.MaxDistance {
			continue
		}
		// Strictly-better only: equal distances never re-push, so the
		// first settled path wins ties.
		if r.rec.Reached[w] && next >= r.rec.Dist[w] {
			continue
		}
		r.rec.Reached[w] = true
		r.rec.Dist[w] = next
		if r.rec.Prev != nil {
			r.rec.Prev[w] = u
		}
		heap.Push(&r.pq, entry[W]{v: w, dist: next})
	}
}
