package bfs

import (
	"fmt"

	"github.com/kvisto/graphpath/graph"
)

// Search runs breadth-first search on g from the given sources, applying
// any number of functional Options. Distances are minimum edge counts
// from the nearest source; duplicate sources are harmless.
// Returns ErrGraphNil, ErrNoSources or ErrVertexRange for invalid input,
// ErrOptionViolation for bad options, or any OnVisit hook error.
func Search(g graph.Graph, sources []int, opts ...Option) (*graph.Record[int], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
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

	rec := graph.NewRecord[int](n, o.Predecessors)

	// Seed the frontier with every source at distance 0, in the caller's
	// enumeration order. That order is the layer tie-break.
	queue := make([]int, 0, n)
	for _, s := range sources {
		if rec.Reached[s] {
			continue
		}
		rec.Reached[s] = true
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if err := o.OnVisit(u, rec.Dist[u]); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		next := rec.Dist[u] + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for w := range g.OutNeighbors(u) {
			// first time seen?
			if rec.Reached[w] {
				continue
			}
			rec.Reached[w] = true
			rec.Dist[w] = next
			if rec.Prev != nil {
				rec.Prev[w] = u
			}
			queue = append(queue, w)
		}
	}

	return rec, nil
}

// From is the single-source convenience form of Search.
func From(g graph.Graph, source int, opts ...Option) (*graph.Record[int], error) {
	return Search(g, []int{source}, opts...)
}
