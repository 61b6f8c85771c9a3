// SPDX-License-Identifier: MIT

package edmonds

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// minBlossomSize is the smallest odd cycle.
const minBlossomSize = 3

// blossom is an odd cycle found by the search, stored as an ordered sequence
// that starts at its base (the forest ancestor closest to the root). It is
// immutable after construction and lives for one search level only.
type blossom[V constraints.Ordered] struct {
	id       int
	base     vertex[V]
	vertices []vertex[V]
}

// newBlossom validates cycle and wraps it under id. cycle[0] becomes the base.
func newBlossom[V constraints.Ordered](id int, cycle []vertex[V]) (*blossom[V], error) {
	if id <= 0 {
		return nil, invariantf("blossom: id must be positive, got %d", id)
	}
	if len(cycle) < minBlossomSize {
		return nil, invariantf("blossom: cycle of %d vertices, need at least %d", len(cycle), minBlossomSize)
	}
	if len(cycle)%2 == 0 {
		return nil, invariantf("blossom: cycle of %d vertices is not odd", len(cycle))
	}
	seen := make(vertexSet[V], len(cycle))
	for _, v := range cycle {
		if seen.has(v) {
			return nil, invariantf("blossom: vertex %v repeats in cycle", v)
		}
		seen[v] = struct{}{}
	}

	return &blossom[V]{
		id:       id,
		base:     cycle[0],
		vertices: append([]vertex[V](nil), cycle...),
	}, nil
}

// vertex is the super-vertex that replaces b in a contracted graph.
func (b *blossom[V]) vertex() vertex[V] {
	return vertex[V]{super: b.id}
}

// members returns the cycle as a set.
func (b *blossom[V]) members() vertexSet[V] {
	s := make(vertexSet[V], len(b.vertices))
	for _, v := range b.vertices {
		s[v] = struct{}{}
	}

	return s
}

// traverseRight yields the cycle in stored order: base, v1, v2, ..., vk.
func (b *blossom[V]) traverseRight() iter.Seq[vertex[V]] {
	return func(yield func(vertex[V]) bool) {
		for _, v := range b.vertices {
			if !yield(v) {
				return
			}
		}
	}
}

// traverseLeft yields the cycle the other way round: base, vk, ..., v2, v1.
func (b *blossom[V]) traverseLeft() iter.Seq[vertex[V]] {
	return func(yield func(vertex[V]) bool) {
		if !yield(b.base) {
			return
		}
		for i := len(b.vertices) - 1; i > 0; i-- {
			if !yield(b.vertices[i]) {
				return
			}
		}
	}
}

// idAllocator hands out blossom ids for one top-level call. It is threaded
// through the recursion so nested contractions never reuse an id.
type idAllocator struct {
	last int
}

// next returns a fresh positive id.
func (a *idAllocator) next() int {
	a.last++
	return a.last
}
