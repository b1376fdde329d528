// Package inspect provides read-only structural queries and derivations
// over any graph.Graph: degree statistics, complement, converse, union,
// and the regularity and tournament predicates.
//
// Every function observes the graph purely through the capability
// interface and allocates its own output; inputs are never mutated.
// Derivations that need O(1) edge tests (Complement, IsTournament) stage
// the input into a graph.BitMatrix first, so multi-edges collapse and
// only edge existence matters.
package inspect
