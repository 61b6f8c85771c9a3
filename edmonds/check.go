// SPDX-License-Identifier: MIT
// File: check.go
// Role: consistency checker. Off the hot path: the search only calls it when
//       WithInvariantChecks is set, tests call it directly.
// Every failure is an ErrInvariant assertion failure.

package edmonds

// Validate checks the structural invariants of g:
//   - no self-loops and no empty neighbor sets, in either adjacency;
//   - both adjacencies are symmetric;
//   - every unmarked edge is an edge of g.
//
// Complexity: O(V+E).
func (g *Graph[V]) Validate() error {
	for name, adj := range map[string]adjacencyMap[V]{"adjacency": g.adjacency, "unmarked": g.unmarked} {
		for v, nbrs := range adj {
			if len(nbrs) == 0 {
				return invariantf("graph: %s holds an empty entry for %v", name, v)
			}
			for w := range nbrs {
				if v == w {
					return invariantf("graph: %s holds a self-loop at %v", name, v)
				}
				if !adj.adjacent(w, v) {
					return invariantf("graph: %s is asymmetric on %v-%v", name, v, w)
				}
			}
		}
	}
	for v, nbrs := range g.unmarked {
		for w := range nbrs {
			if !g.adjacency.adjacent(v, w) {
				return invariantf("graph: unmarked edge %v-%v is not in the graph", v, w)
			}
		}
	}

	return nil
}

// Validate checks the structural invariants of m:
//   - mates are symmetric and never point at the vertex itself;
//   - the edge set equals the set of mate pairs;
//   - no vertex is both matched and exposed.
//
// Complexity: O(V).
func (m *Matching[V]) Validate() error {
	for v, w := range m.mates {
		if v == w {
			return invariantf("matching: %v is matched to itself", v)
		}
		if back, ok := m.mates[w]; !ok || back != v {
			return invariantf("matching: mate of %v is %v but not vice versa", v, w)
		}
		if !m.isMatched(newEdge(v, w)) {
			return invariantf("matching: mate pair %v-%v missing from the edge set", v, w)
		}
		if m.exposed.has(v) {
			return invariantf("matching: %v is both matched and exposed", v)
		}
	}
	if 2*len(m.edges) != len(m.mates) {
		return invariantf("matching: %d edges cover %d vertices", len(m.edges), len(m.mates))
	}
	for e := range m.edges {
		if m.mates[e.a] != e.b {
			return invariantf("matching: edge %v-%v disagrees with the mate map", e.a, e.b)
		}
	}

	return nil
}

// validate checks the tree structure of f:
//   - roots are their own parent at distance 0;
//   - each child sits one level below its parent and shares its root;
//   - frontier members are even.
func (f *forest[V]) validate() error {
	for v, p := range f.parents {
		r, ok := f.roots[v]
		if !ok {
			return invariantf("forest: %v has no root", v)
		}
		d, ok := f.distances[v]
		if !ok {
			return invariantf("forest: %v has no distance", v)
		}
		if p == v {
			if r != v || d != 0 {
				return invariantf("forest: root %v has root %v and distance %d", v, r, d)
			}
			continue
		}
		if f.distances[p] != d-1 {
			return invariantf("forest: %v at distance %d under %v at distance %d", v, d, p, f.distances[p])
		}
		if f.roots[p] != r {
			return invariantf("forest: %v and its parent %v have different roots", v, p)
		}
	}
	for v := range f.frontier {
		if !f.isEven(v) {
			return invariantf("forest: frontier vertex %v is not even", v)
		}
	}

	return nil
}

// validateAugmentingPath checks that path is augmenting for m in g:
// distinct vertices, consecutive pairs are edges of g, the endpoints are
// exposed and the edges alternate unmatched/matched.
func (g *Graph[V]) validateAugmentingPath(m *Matching[V], path []vertex[V]) error {
	if len(path) < 2 || len(path)%2 != 0 {
		return invariantf("path: %d vertices cannot form an augmenting path", len(path))
	}
	if !m.exposed.has(path[0]) || !m.exposed.has(path[len(path)-1]) {
		return invariantf("path: endpoints %v and %v must be exposed", path[0], path[len(path)-1])
	}
	seen := make(vertexSet[V], len(path))
	for i, v := range path {
		if seen.has(v) {
			return invariantf("path: vertex %v repeats", v)
		}
		seen[v] = struct{}{}
		if i == 0 {
			continue
		}
		u := path[i-1]
		if !g.adjacency.adjacent(u, v) {
			return invariantf("path: %v-%v is not an edge", u, v)
		}
		if want := i%2 == 0; m.isMatched(newEdge(u, v)) != want {
			return invariantf("path: edge %v-%v breaks alternation at position %d", u, v, i)
		}
	}

	return nil
}
