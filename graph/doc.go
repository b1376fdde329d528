// Package graph defines the capability interface every concrete graph
// representation must satisfy, the Record type produced by the search
// engines, and a set of ready-made representations.
//
// What
//
//   - Graph: the unweighted contract — Order() plus OutNeighbors(v).
//   - Weighted[W]: the weighted contract — Order() plus OutEdges(v),
//     where W is any integer or float type (the Weight constraint).
//   - Record[W]: per-vertex distances, optional predecessors, and the
//     reached mask returned by bfs, dijkstra and bellmanford.
//   - Representations: AdjacencyList, WeightedAdjacencyList[W],
//     SparseAdjacency (map-backed), BitMatrix (bitset-backed adjacency
//     matrix), EdgeList[W].
//
// Vertex model
//
//	Vertices are dense integer indices in [0, Order()). A vertex's
//	identity is its index; there is no separate identity type. Passing a
//	vertex outside that range to a representation's accessors is a
//	contract violation: it trips the runtime bounds check rather than
//	returning an error. Mutators (AddEdge and friends) are caller-facing
//	and do validate, returning ErrVertexRange.
//
// Iteration
//
//	OutNeighbors and OutEdges yield every out-edge of v exactly once per
//	call. Iteration order is representation-defined: slice-backed lists
//	iterate in insertion order, SparseAdjacency in insertion order per
//	vertex, BitMatrix in ascending target order. Multi-edges and
//	self-loops are representation decisions; engines handle both.
//
// The graph is read-only from every engine's perspective: an engine
// borrows it for the duration of one call and retains no reference.
package graph
