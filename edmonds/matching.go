// SPDX-License-Identifier: MIT
// File: matching.go
// Role: the current matching - mate map, canonical edge set, exposed set -
//       with augmentation and blossom contraction.
// Invariants:
//   - a registered vertex is either exposed or has exactly one mate.
//   - mates are symmetric and every mate pair is in edges (and vice versa).
//   - matched edges are pairwise vertex-disjoint.

package edmonds

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Matching is a set of vertex-disjoint edges over a registered vertex set.
// Vertices must be registered (AddVertex/AddVertices) before they can be
// matched; freshly registered vertices are exposed.
type Matching[V constraints.Ordered] struct {
	mates   map[vertex[V]]vertex[V]
	edges   map[edge[V]]struct{}
	exposed vertexSet[V]
}

// NewMatching creates an empty Matching with no registered vertices.
func NewMatching[V constraints.Ordered]() *Matching[V] {
	return &Matching[V]{
		mates:   make(map[vertex[V]]vertex[V]),
		edges:   make(map[edge[V]]struct{}),
		exposed: make(vertexSet[V]),
	}
}

// FromEdges builds a Matching over vertices whose matched edges are edges.
// Every endpoint must be listed in vertices, and the edges must be pairwise
// vertex-disjoint.
//
// Errors: ErrDuplicateVertex, ErrVertexNotFound, ErrLoopNotAllowed,
// ErrInvalidPath (two edges share an endpoint).
func FromEdges[V constraints.Ordered](vertices []V, edges []Edge[V]) (*Matching[V], error) {
	m := NewMatching[V]()
	if err := m.AddVertices(vertices); err != nil {
		return nil, err
	}
	for _, e := range edges {
		if e.U == e.W {
			return nil, errors.Wrapf(ErrLoopNotAllowed, "FromEdges: %v", e)
		}
		v, w := plain(e.U), plain(e.W)
		for _, x := range []vertex[V]{v, w} {
			if !m.has(x) {
				return nil, errors.Wrapf(ErrVertexNotFound, "FromEdges: %v", x)
			}
			if !m.exposed.has(x) {
				return nil, errors.Wrapf(ErrInvalidPath, "FromEdges: %v is matched twice", x)
			}
		}
		m.match(v, w)
		delete(m.exposed, v)
		delete(m.exposed, w)
	}

	return m, nil
}

// AddVertex registers v as exposed.
// Errors: ErrDuplicateVertex if v is already registered.
func (m *Matching[V]) AddVertex(v V) error {
	x := plain(v)
	if m.has(x) {
		return errors.Wrapf(ErrDuplicateVertex, "AddVertex(%v)", v)
	}
	m.exposed[x] = struct{}{}

	return nil
}

// AddVertices registers every vertex of vs, stopping at the first error.
func (m *Matching[V]) AddVertices(vs []V) error {
	for _, v := range vs {
		if err := m.AddVertex(v); err != nil {
			return err
		}
	}

	return nil
}

// Edges returns the matched edges, sorted by (U, W).
func (m *Matching[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, len(m.edges))
	for e := range m.edges {
		out = append(out, NewEdge(e.a.id, e.b.id))
	}
	sortEdges(out)

	return out
}

// ExposedVertices returns the unmatched registered vertices, ascending.
func (m *Matching[V]) ExposedVertices() []V {
	return sortedIDs(m.exposed)
}

// Size returns the number of matched edges.
func (m *Matching[V]) Size() int {
	return len(m.edges)
}

// Has reports whether v is registered.
func (m *Matching[V]) Has(v V) bool {
	return m.has(plain(v))
}

// IsExposed reports whether v is registered and unmatched.
func (m *Matching[V]) IsExposed(v V) bool {
	return m.exposed.has(plain(v))
}

// Mate returns the vertex matched to v.
// Errors: ErrVertexNotFound if v is unregistered, ErrVertexExposed if v is
// unmatched.
func (m *Matching[V]) Mate(v V) (V, error) {
	x := plain(v)
	w, err := m.mate(x)
	if err != nil {
		var zero V
		return zero, err
	}

	return w.id, nil
}

// Clone returns a deep copy of m.
func (m *Matching[V]) Clone() *Matching[V] {
	c := &Matching[V]{
		mates:   make(map[vertex[V]]vertex[V], len(m.mates)),
		edges:   make(map[edge[V]]struct{}, len(m.edges)),
		exposed: m.exposed.clone(),
	}
	for v, w := range m.mates {
		c.mates[v] = w
	}
	for e := range m.edges {
		c.edges[e] = struct{}{}
	}

	return c
}

// Augment flips every edge along path: matched edges leave the matching,
// unmatched edges join it. path must start and end at distinct exposed
// vertices and alternate unmatched/matched edges; the matching then grows by
// exactly one edge. On error m is left unchanged.
//
// Errors: ErrInvalidPath, ErrVertexNotFound.
func (m *Matching[V]) Augment(path []V) error {
	p := make([]vertex[V], len(path))
	for i, v := range path {
		p[i] = plain(v)
	}

	return m.augment(p)
}

// augment is Augment over internal vertices. It toggles a copy and commits
// it only once every step succeeded.
func (m *Matching[V]) augment(path []vertex[V]) error {
	if len(path) < 2 {
		return errors.Wrapf(ErrInvalidPath, "augment: path of %d vertices", len(path))
	}
	first, last := path[0], path[len(path)-1]
	if first == last {
		return errors.Wrapf(ErrInvalidPath, "augment: endpoints coincide at %v", first)
	}
	for _, v := range path {
		if !m.has(v) {
			return errors.Wrapf(ErrVertexNotFound, "augment: %v", v)
		}
	}
	if !m.exposed.has(first) || !m.exposed.has(last) {
		return errors.Wrapf(ErrInvalidPath, "augment: endpoints %v and %v must be exposed", first, last)
	}

	next := m.Clone()
	// Removals first: an interior vertex still holds its old mate when the
	// edge that replaces it is reached.
	for i := 0; i+1 < len(path); i++ {
		if e := newEdge(path[i], path[i+1]); next.isMatched(e) {
			next.unmatch(e)
		}
	}
	for i := 0; i+1 < len(path); i++ {
		v, w := path[i], path[i+1]
		if m.isMatched(newEdge(v, w)) {
			continue
		}
		if _, ok := next.mates[v]; ok {
			return errors.Wrapf(ErrInvalidPath, "augment: %v would be matched twice", v)
		}
		if _, ok := next.mates[w]; ok {
			return errors.Wrapf(ErrInvalidPath, "augment: %v would be matched twice", w)
		}
		next.match(v, w)
	}
	delete(next.exposed, first)
	delete(next.exposed, last)
	if next.Size() != m.Size()+1 {
		return errors.Wrapf(ErrInvalidPath, "augment: path does not alternate")
	}

	*m = *next
	return nil
}

// contract returns a Matching over the vertex set contracted around b:
//   - the super-vertex is exposed iff b's base is exposed;
//   - a matched edge leaving the blossom is re-attached to the super-vertex
//     (at most one such edge can exist);
//   - matched edges inside the blossom are dropped with their vertices.
//
// m is not modified and shares no state with the result.
func (m *Matching[V]) contract(b *blossom[V]) (*Matching[V], error) {
	super := b.vertex()
	if m.has(super) {
		return nil, invariantf("contract: super-vertex %v already registered", super)
	}
	inside := b.members()
	for v := range inside {
		if !m.has(v) {
			return nil, invariantf("contract: blossom vertex %v not registered", v)
		}
	}

	c := NewMatching[V]()
	for v := range m.exposed {
		if !inside.has(v) {
			c.exposed[v] = struct{}{}
		}
	}
	if m.exposed.has(b.base) {
		c.exposed[super] = struct{}{}
	}
	for e := range m.edges {
		aIn, bIn := inside.has(e.a), inside.has(e.b)
		var v, w vertex[V]
		switch {
		case aIn && bIn:
			continue
		case aIn:
			v, w = super, e.b
		case bIn:
			v, w = e.a, super
		default:
			v, w = e.a, e.b
		}
		_, vTaken := c.mates[v]
		_, wTaken := c.mates[w]
		if vTaken || wTaken {
			return nil, invariantf("contract: blossom %d has more than one matched edge leaving it", b.id)
		}
		c.match(v, w)
	}
	if _, ok := c.mates[super]; ok && c.exposed.has(super) {
		return nil, invariantf("contract: base %v is exposed but blossom %d is matched", b.base, b.id)
	}

	return c, nil
}

// has reports whether v is registered.
func (m *Matching[V]) has(v vertex[V]) bool {
	if m.exposed.has(v) {
		return true
	}
	_, ok := m.mates[v]

	return ok
}

// mate returns v's partner.
func (m *Matching[V]) mate(v vertex[V]) (vertex[V], error) {
	w, ok := m.mates[v]
	if ok {
		return w, nil
	}
	if m.exposed.has(v) {
		return w, errors.Wrapf(ErrVertexExposed, "Mate(%v)", v)
	}

	return w, errors.Wrapf(ErrVertexNotFound, "Mate(%v)", v)
}

// isMatched reports whether e is a matched edge.
func (m *Matching[V]) isMatched(e edge[V]) bool {
	_, ok := m.edges[e]
	return ok
}

// match records v-w; callers guarantee both are currently free.
func (m *Matching[V]) match(v, w vertex[V]) {
	m.mates[v] = w
	m.mates[w] = v
	m.edges[newEdge(v, w)] = struct{}{}
}

// unmatch removes the matched edge e.
func (m *Matching[V]) unmatch(e edge[V]) {
	delete(m.mates, e.a)
	delete(m.mates, e.b)
	delete(m.edges, e)
}

// edgeList snapshots the matched edges.
func (m *Matching[V]) edgeList() []edge[V] {
	out := make([]edge[V], 0, len(m.edges))
	for e := range m.edges {
		out = append(out, e)
	}

	return out
}
