// Package graphpath provides representation-agnostic shortest-path
// algorithms over directed graphs with dense integer vertices.
//
// What is graphpath?
//
//	A small, generic library where every algorithm is written once against
//	a minimal capability interface, and runs unmodified over any concrete
//	graph representation:
//		• Traversal: multi-source BFS with distances, predecessors and a
//		  lazy discovery-order sequence
//		• Shortest paths: Dijkstra (non-negative weights, lazy-deletion heap)
//		• Negative weights: Bellman–Ford–Moore with negative-cycle detection
//		• Representations: adjacency lists (slice- and map-backed), bitset
//		  adjacency matrix, edge list — or bring your own
//		• Generators: complete, cycle, wheel, star, biclique, Erdős–Rényi,
//		  random tournament, random recursive tree
//
// Why choose graphpath?
//
//   - Minimal contract — a representation only needs Order plus neighbor
//     iteration to run every engine
//   - Generic weights — any integer or float type, picked by the caller
//   - Predictable failure modes — sentinel errors, errors.Is friendly
//   - Pure algorithms — engines allocate per call, never mutate the graph,
//     and are safe to run concurrently against read-safe representations
//
// Everything is organized under six subpackages:
//
//	graph/       — capability interface, Record (distances/predecessors),
//	               concrete representations
//	bfs/         — breadth-first distances, predecessor trees, lazy Walk
//	dijkstra/    — weighted shortest paths, non-negative weights
//	bellmanford/ — weighted shortest paths tolerating negative edges
//	build/       — deterministic and seeded-random graph generators
//	inspect/     — structural queries: degrees, complement, converse, union
//
// Quick ASCII example:
//
//	    0 ──4──▶ 1
//	    │        ▲
//	    1        1
//	    ▼        │
//	    2 ───────┘
//
//	Dijkstra from 0 yields distances [0 2 1]: the detour 0→2→1 beats the
//	direct 0→1 edge.
//
//	go get github.com/kvisto/graphpath
package graphpath
