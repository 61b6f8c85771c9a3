// SPDX-License-Identifier: MIT

// Package edmonds computes a maximum-cardinality matching in a general
// (non-bipartite) undirected graph with Edmonds' blossom algorithm.
//
// What & Why:
//
//	A matching is a set of pairwise vertex-disjoint edges. Starting from any
//	initial matching (usually the empty one), the algorithm repeatedly looks for
//	an augmenting path - a path that alternates unmatched and matched edges and
//	connects two exposed (unmatched) vertices - and flips every edge on it. Each
//	flip grows the matching by exactly one edge; when no augmenting path exists
//	the matching is maximum (Berge's lemma).
//
//	Bipartite matchers (Hopcroft–Karp, Kuhn) fail on odd cycles. Edmonds'
//	insight is to shrink such a cycle ("blossom") into a single super-vertex,
//	search the smaller graph, and lift the path found there back through the
//	cycle.
//
// Building blocks:
//
//   - Graph[V]     - undirected simple graph: persistent adjacency plus a
//     search-scoped "unmarked" working set; contraction and lifting.
//   - Matching[V]  - mate map, canonical edge set, exposed-vertex set; Augment.
//   - forest       - alternating forest grown once per search.
//   - blossom      - immutable odd cycle with a base and two traversal orders.
//   - search.go    - AugmentingPath, MaximumMatching, Solve, IsMaximum.
//
// Quick start:
//
//	g := edmonds.NewGraph[int]()
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 0)
//	_ = g.AddEdge(2, 3)
//	m, err := edmonds.Solve(g)
//	// m.Size() == 2, m.Edges() == [(0,1) (2,3)]
//
// Vertices:
//
//	Any constraints.Ordered type works as a vertex (ints, strings, ...).
//	Contracted blossoms are represented internally by a separate id space, so
//	caller vertices never collide with super-vertices.
//
// Options:
//
//	WithContext(ctx)        - cancel between augmentations.
//	WithLogger(l)           - receive Debugf traces (search, contraction, augment).
//	WithInvariantChecks()   - run the consistency checker after every mutation.
//	WithMaxAugmentations(n) - stop after n augmentations (result may not be maximum).
//
//	Graph.Validate and Matching.Validate expose the same checker directly.
//
// Errors:
//
//	ErrGraphNil, ErrMatchingNil      - nil inputs.
//	ErrLoopNotAllowed                - AddEdge(v, v).
//	ErrDuplicateEdge                 - AddEdge on an existing edge (either direction).
//	ErrEdgeNotFound                  - a matched edge is missing from the graph.
//	ErrDuplicateVertex               - AddVertex on a registered vertex.
//	ErrVertexNotFound                - vertex unknown to the matching.
//	ErrVertexExposed                 - Mate on an exposed vertex.
//	ErrInvalidPath                   - Augment with a non-augmenting path.
//	ErrInvariant                     - internal consistency violation; these are
//	                                   assertion failures and are never retried.
//
// Determinism:
//
//	Which unmarked edge or frontier vertex is scanned next follows Go map
//	iteration order. The size of the result is always maximum; which maximum
//	matching is returned may differ between runs.
//
// Concurrency:
//
//	Graph and Matching are not safe for concurrent mutation. MaximumMatching
//	never mutates its inputs: it works on private copies.
//
// Complexity:
//
//	O(V) augmentations, each a search of O(E) edge scans per contraction level
//	with up to O(V) levels: O(V²·E) overall, O(V+E) memory per level.
package edmonds
