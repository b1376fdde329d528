package graph

// NoPrev marks a vertex without a predecessor: sources and unreached
// vertices.
const NoPrev = -1

// Record holds the outcome of one search-engine call:
//   - Dist: tentative/final distance per vertex, meaningful only where
//     Reached is true.
//   - Prev: predecessor per vertex (NoPrev for sources and unreached
//     vertices); nil unless predecessors were requested.
//   - Reached: whether the search reached the vertex at all. Unreached
//     vertices are normal output, not an error.
//
// A Record is created fresh by each engine call and owned entirely by
// the caller afterwards; engines keep no reference.
type Record[W Weight] struct {
	Dist    []W
	Prev    []int
	Reached []bool
}

// NewRecord allocates a Record for an order-n graph. When withPrev is
// set, Prev is allocated and every entry initialized to NoPrev.
func NewRecord[W Weight](n int, withPrev bool) *Record[W] {
	r := &Record[W]{
		Dist:    make([]W, n),
		Reached: make([]bool, n),
	}
	if withPrev {
		r.Prev = make([]int, n)
		for i := range r.Prev {
			r.Prev[i] = NoPrev
		}
	}

	return r
}

// Order returns the number of vertices the record covers.
func (r *Record[W]) Order() int { return len(r.Dist) }

// Path reconstructs the path from the nearest source to v by following
// predecessors, returned in source→v order.
// Returns ErrVertexRange for an out-of-range v, ErrUnreachable if the
// search never reached v, and ErrNoPredecessors if the Record was built
// without predecessor tracking.
func (r *Record[W]) Path(v int) ([]int, error) {
	if v < 0 || v >= len(r.Dist) {
		return nil, ErrVertexRange
	}
	if !r.Reached[v] {
		return nil, ErrUnreachable
	}
	if r.Prev == nil {
		return nil, ErrNoPredecessors
	}

	// Walk back to a source, then reverse in place.
	path := []int{v}
	for cur := r.Prev[v]; cur != NoPrev; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
