// SPDX-License-Identifier: MIT
// File: types.go
// Role: vertex and edge representations shared by Graph, Matching, forest
//       and blossom.
// Determinism:
//   - vertex order is (super asc, id asc); Edge and edge are stored normalized
//     so (v,w) and (w,v) compare and hash identically.

package edmonds

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// vertex is the internal vertex key. Caller vertices carry super == 0;
// a contracted blossom is represented by vertex{super: blossom.id} with a
// zero id, so the two id spaces never overlap.
type vertex[V constraints.Ordered] struct {
	id    V
	super int
}

// plain wraps a caller vertex.
func plain[V constraints.Ordered](v V) vertex[V] {
	return vertex[V]{id: v}
}

// isSuper reports whether x stands for a contracted blossom.
func (x vertex[V]) isSuper() bool {
	return x.super != 0
}

// compare orders super-vertices after caller vertices, then by id.
func (x vertex[V]) compare(y vertex[V]) int {
	if c := cmp.Compare(x.super, y.super); c != 0 {
		return c
	}

	return cmp.Compare(x.id, y.id)
}

// String renders caller vertices with %v and super-vertices as "B<id>".
func (x vertex[V]) String() string {
	if x.isSuper() {
		return fmt.Sprintf("B%d", x.super)
	}

	return fmt.Sprint(x.id)
}

// edge is an unordered internal edge, normalized so that a.compare(b) < 0.
type edge[V constraints.Ordered] struct {
	a, b vertex[V]
}

// newEdge returns the canonical form of {v, w}.
func newEdge[V constraints.Ordered](v, w vertex[V]) edge[V] {
	if w.compare(v) < 0 {
		v, w = w, v
	}

	return edge[V]{a: v, b: w}
}

// Edge is an unordered pair of distinct caller vertices, normalized so U < W.
type Edge[V constraints.Ordered] struct {
	U, W V
}

// NewEdge returns the canonical (order-independent) form of {v, w}.
func NewEdge[V constraints.Ordered](v, w V) Edge[V] {
	if w < v {
		v, w = w, v
	}

	return Edge[V]{U: v, W: w}
}

// String renders the edge as "(U,W)".
func (e Edge[V]) String() string {
	return fmt.Sprintf("(%v,%v)", e.U, e.W)
}

// vertexSet is a set of internal vertices.
type vertexSet[V constraints.Ordered] map[vertex[V]]struct{}

// has reports membership.
func (s vertexSet[V]) has(v vertex[V]) bool {
	_, ok := s[v]
	return ok
}

// clone returns an independent copy of s.
func (s vertexSet[V]) clone() vertexSet[V] {
	out := make(vertexSet[V], len(s))
	for v := range s {
		out[v] = struct{}{}
	}

	return out
}

// sortedIDs ranges over the keys of a vertex-keyed map and returns the caller
// ids in ascending order. Super-vertices are skipped; they only exist inside
// contracted instances and have no caller-facing identity.
func sortedIDs[V constraints.Ordered, T any](m map[vertex[V]]T) []V {
	ids := make([]V, 0, len(m))
	for k := range m {
		if !k.isSuper() {
			ids = append(ids, k.id)
		}
	}
	slices.Sort(ids)

	return ids
}

// sortEdges orders edges by (U, W) ascending.
func sortEdges[V constraints.Ordered](es []Edge[V]) {
	slices.SortFunc(es, func(x, y Edge[V]) int {
		if c := cmp.Compare(x.U, y.U); c != 0 {
			return c
		}
		return cmp.Compare(x.W, y.W)
	})
}
