// SPDX-License-Identifier: MIT
// File: graph.go
// Role: undirected simple graph with a persistent adjacency and a
//       search-scoped "unmarked" working set; blossom contraction.
// Invariants:
//   - w ∈ adjacency[v] ⟺ v ∈ adjacency[w]; same for unmarked.
//   - a vertex key exists only while its neighbor set is non-empty.
//   - unmarked ⊆ adjacency.
// Concurrency:
//   - not safe for concurrent mutation; searches run on private clones.

package edmonds

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// adjacencyMap maps a vertex to its neighbor set.
type adjacencyMap[V constraints.Ordered] map[vertex[V]]vertexSet[V]

// link inserts v-w in both directions.
func (a adjacencyMap[V]) link(v, w vertex[V]) {
	if a[v] == nil {
		a[v] = make(vertexSet[V])
	}
	a[v][w] = struct{}{}
	if a[w] == nil {
		a[w] = make(vertexSet[V])
	}
	a[w][v] = struct{}{}
}

// unlink removes v-w in both directions and drops emptied entries.
func (a adjacencyMap[V]) unlink(v, w vertex[V]) {
	delete(a[v], w)
	if len(a[v]) == 0 {
		delete(a, v)
	}
	delete(a[w], v)
	if len(a[w]) == 0 {
		delete(a, w)
	}
}

// adjacent reports whether v-w is present.
func (a adjacencyMap[V]) adjacent(v, w vertex[V]) bool {
	return a[v].has(w)
}

// clone deep-copies every neighbor set.
func (a adjacencyMap[V]) clone() adjacencyMap[V] {
	out := make(adjacencyMap[V], len(a))
	for v, nbrs := range a {
		out[v] = nbrs.clone()
	}

	return out
}

// Graph is an undirected simple graph over caller vertices of type V.
//
// Besides the full adjacency, Graph carries an "unmarked" copy used by the
// augmenting-path search to remember which edges it has not scanned yet.
// Only vertices with at least one incident edge are stored.
type Graph[V constraints.Ordered] struct {
	adjacency adjacencyMap[V]
	unmarked  adjacencyMap[V]
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[V constraints.Ordered]() *Graph[V] {
	return &Graph[V]{
		adjacency: make(adjacencyMap[V]),
		unmarked:  make(adjacencyMap[V]),
	}
}

// AddEdge inserts the undirected edge {v, w} into the full and the unmarked
// adjacency.
//
// Errors:
//   - ErrLoopNotAllowed if v == w.
//   - ErrDuplicateEdge if {v, w} already exists (in either direction).
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(v, w V) error {
	if v == w {
		return errors.Wrapf(ErrLoopNotAllowed, "AddEdge(%v, %v)", v, w)
	}
	x, y := plain(v), plain(w)
	if g.adjacency.adjacent(x, y) || g.unmarked.adjacent(x, y) {
		return errors.Wrapf(ErrDuplicateEdge, "AddEdge(%v, %v)", v, w)
	}
	g.adjacency.link(x, y)
	g.unmarked.link(x, y)

	return nil
}

// HasEdge reports whether {v, w} is an edge, in either direction.
// Complexity: O(1).
func (g *Graph[V]) HasEdge(v, w V) bool {
	return g.adjacency.adjacent(plain(v), plain(w))
}

// Neighbors returns the neighbors of v in ascending order (nil when v has
// no edges).
// Complexity: O(d·log d).
func (g *Graph[V]) Neighbors(v V) []V {
	nbrs := g.adjacency[plain(v)]
	if len(nbrs) == 0 {
		return nil
	}

	return sortedIDs(nbrs)
}

// Vertices returns every vertex with at least one edge, ascending.
// Complexity: O(V·log V).
func (g *Graph[V]) Vertices() []V {
	return sortedIDs(g.adjacency)
}

// Edges returns every edge once, in canonical form, sorted by (U, W).
// Complexity: O(E·log E).
func (g *Graph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, g.EdgeCount())
	for v, nbrs := range g.adjacency {
		for w := range nbrs {
			if v.compare(w) < 0 {
				out = append(out, NewEdge(v.id, w.id))
			}
		}
	}
	sortEdges(out)

	return out
}

// VertexCount returns the number of non-isolated vertices.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of edges.
// Complexity: O(V).
func (g *Graph[V]) EdgeCount() int {
	n := 0
	for _, nbrs := range g.adjacency {
		n += len(nbrs)
	}

	return n / 2
}

// Clone returns a deep copy: no neighbor set is shared with g.
// Complexity: O(V+E).
func (g *Graph[V]) Clone() *Graph[V] {
	return &Graph[V]{
		adjacency: g.adjacency.clone(),
		unmarked:  g.unmarked.clone(),
	}
}

// unmarkAllEdges resets the unmarked adjacency to a full copy of adjacency.
// Called once per search before scanning begins.
func (g *Graph[V]) unmarkAllEdges() {
	g.unmarked = g.adjacency.clone()
}

// markEdge removes {v, w} from the unmarked adjacency on both endpoints.
// Marking an edge that is not in the graph, or that is already marked, is an
// error.
func (g *Graph[V]) markEdge(v, w vertex[V]) error {
	if !g.adjacency.adjacent(v, w) {
		return errors.Wrapf(ErrEdgeNotFound, "markEdge(%v, %v)", v, w)
	}
	if !g.unmarked.adjacent(v, w) {
		return invariantf("markEdge(%v, %v): edge already marked", v, w)
	}
	g.unmarked.unlink(v, w)

	return nil
}

// markEdges marks every edge in es.
func (g *Graph[V]) markEdges(es []edge[V]) error {
	for _, e := range es {
		if err := g.markEdge(e.a, e.b); err != nil {
			return err
		}
	}

	return nil
}

// unmarkedNeighboringEdge returns the far endpoint w of an arbitrary unmarked
// edge {v, w}, or ok == false once v has none left. Which edge is returned
// follows map iteration order; correctness does not depend on it.
func (g *Graph[V]) unmarkedNeighboringEdge(v vertex[V]) (w vertex[V], ok bool) {
	for w = range g.unmarked[v] {
		return w, true
	}

	return w, false
}

// contract returns a new Graph in which every vertex of b is replaced by the
// super-vertex b.vertex():
//   - edges between two blossom vertices are dropped;
//   - an edge from a blossom vertex to an outside vertex u becomes {super, u},
//     parallel results collapse into one;
//   - the super-vertex is omitted when it has no external edge;
//   - the result's unmarked adjacency equals its full adjacency.
//
// g itself is not modified and shares no state with the result.
// Complexity: O(V+E).
func (g *Graph[V]) contract(b *blossom[V]) (*Graph[V], error) {
	super := b.vertex()
	if _, ok := g.adjacency[super]; ok {
		return nil, invariantf("contract: super-vertex %v already present", super)
	}
	inside := b.members()
	for v := range inside {
		if _, ok := g.adjacency[v]; !ok {
			return nil, invariantf("contract: blossom vertex %v not in graph", v)
		}
	}

	c := NewGraph[V]()
	for v, nbrs := range g.adjacency {
		vIn := inside.has(v)
		for w := range nbrs {
			wIn := inside.has(w)
			switch {
			case vIn && wIn:
				// internal to the blossom
			case vIn:
				c.adjacency.link(super, w)
			case wIn:
				c.adjacency.link(v, super)
			default:
				c.adjacency.link(v, w)
			}
		}
	}
	c.unmarkAllEdges()

	return c, nil
}
