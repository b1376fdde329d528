package graph

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// BitMatrix is an n×n adjacency matrix stored row-major in a single
// bitset: bit u*n+v is set when the edge u→v exists. One bit per vertex
// pair makes it the densest unweighted representation, with O(1) edge
// tests and word-at-a-time neighbor scans. Self-loops are permitted;
// multi-edges collapse to a single bit.
type BitMatrix struct {
	order int
	bits  *bitset.BitSet
}

// NewBitMatrix returns an empty bit-matrix graph over n vertices.
// Panics if n is negative.
func NewBitMatrix(n int) *BitMatrix {
	if n < 0 {
		panic(fmt.Sprintf("graph: NewBitMatrix(%d): negative order", n))
	}

	return &BitMatrix{order: n, bits: bitset.New(uint(n) * uint(n))}
}

// Order returns the number of vertices.
func (g *BitMatrix) Order() int { return g.order }

// Set inserts the directed edge u→v. Setting an existing edge is a no-op.
// Returns ErrVertexRange if either endpoint is out of range.
func (g *BitMatrix) Set(u, v int) error {
	if u < 0 || u >= g.order {
		return fmt.Errorf("%w: vertex %d, order %d", ErrVertexRange, u, g.order)
	}
	if v < 0 || v >= g.order {
		return fmt.Errorf("%w: vertex %d, order %d", ErrVertexRange, v, g.order)
	}
	g.bits.Set(uint(u)*uint(g.order) + uint(v))

	return nil
}

// Has reports whether the edge u→v exists. Out-of-range arguments report
// false.
func (g *BitMatrix) Has(u, v int) bool {
	if u < 0 || u >= g.order || v < 0 || v >= g.order {
		return false
	}

	return g.bits.Test(uint(u)*uint(g.order) + uint(v))
}

// OutDegree returns the number of out-edges of v by counting its row.
func (g *BitMatrix) OutDegree(v int) int {
	row := uint(v) * uint(g.order)
	deg := 0
	for i, ok := g.bits.NextSet(row); ok && i < row+uint(g.order); i, ok = g.bits.NextSet(i + 1) {
		deg++
	}

	return deg
}

// OutNeighbors yields v's out-neighbors in ascending order, skipping
// unset words via the bitset's NextSet scan.
func (g *BitMatrix) OutNeighbors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		row := uint(v) * uint(g.order)
		for i, ok := g.bits.NextSet(row); ok && i < row+uint(g.order); i, ok = g.bits.NextSet(i + 1) {
			if !yield(int(i - row)) {
				return
			}
		}
	}
}
