// Package build provides deterministic and seeded-random generators for
// common directed graph families, each returning a *graph.AdjacencyList
// ready to feed the search engines.
//
// Deterministic families
//
//   - Complete(n)     — every ordered pair u→v, u ≠ v
//   - Cycle(n)        — the ring i→(i+1) mod n, n ≥ 3
//   - Wheel(n)        — a hub joined both ways to an (n−1)-ring, n ≥ 4
//   - Star(n)         — vertex 0 joined both ways to each leaf, n ≥ 2
//   - Biclique(m, n)  — every left→right edge of K_{m,n}
//
// Random families
//
//   - Gnp(n, p)          — Erdős–Rényi: each ordered pair u→v with
//     probability p, independently
//   - Tournament(n)      — one random orientation per unordered pair
//   - RecursiveTree(n)   — vertex i ≥ 1 attaches under a uniform random
//     ancestor j < i
//
// Determinism
//
//	Deterministic families emit vertices and edges in ascending index
//	order. Random families draw from a generator seeded via WithSeed
//	(default seed 1), so the same seed and parameters always produce the
//	same graph; supply WithRand to share a source across generators.
//
// Errors
//
//	Generators validate parameters early and return sentinel errors
//	(ErrTooFewVertices, ErrBadProbability); they never panic at runtime.
//	Option constructors panic on meaningless input (nil RNG).
package build
