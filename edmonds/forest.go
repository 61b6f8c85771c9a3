// SPDX-License-Identifier: MIT
// File: forest.go
// Role: alternating forest of one augmenting-path search.
// Invariants:
//   - every root is an exposed vertex at distance 0 and is its own parent.
//   - distance(child) == distance(parent) + 1; parent chains end at the root.
//   - frontier holds exactly the even, not yet scanned vertices.
// Lifetime:
//   - built from scratch per search call and discarded on return.

package edmonds

import "golang.org/x/exp/constraints"

// forest is a set of vertex-disjoint alternating trees.
type forest[V constraints.Ordered] struct {
	roots     map[vertex[V]]vertex[V]
	parents   map[vertex[V]]vertex[V]
	distances map[vertex[V]]int
	frontier  vertexSet[V]
}

// newForest returns an empty forest.
func newForest[V constraints.Ordered]() *forest[V] {
	return &forest[V]{
		roots:     make(map[vertex[V]]vertex[V]),
		parents:   make(map[vertex[V]]vertex[V]),
		distances: make(map[vertex[V]]int),
		frontier:  make(vertexSet[V]),
	}
}

// addSingletonTree makes v the root of a new tree.
func (f *forest[V]) addSingletonTree(v vertex[V]) error {
	if f.contains(v) {
		return invariantf("forest: %v is already in the forest", v)
	}
	f.roots[v] = v
	f.parents[v] = v
	f.distances[v] = 0
	f.frontier[v] = struct{}{}

	return nil
}

// addEdge hangs the absent endpoint of {v, w} under the present one.
// Exactly one endpoint must already be in the forest.
func (f *forest[V]) addEdge(v, w vertex[V]) error {
	vIn, wIn := f.contains(v), f.contains(w)
	switch {
	case vIn && wIn:
		return invariantf("forest: both %v and %v are already in the forest", v, w)
	case !vIn && !wIn:
		return invariantf("forest: neither %v nor %v is in the forest", v, w)
	case wIn:
		v, w = w, v
	}

	f.roots[w] = f.roots[v]
	f.parents[w] = v
	d := f.distances[v] + 1
	f.distances[w] = d
	if d%2 == 0 {
		f.frontier[w] = struct{}{}
	}

	return nil
}

// unmarkedEvenVertex returns an arbitrary frontier vertex.
func (f *forest[V]) unmarkedEvenVertex() (v vertex[V], ok bool) {
	for v = range f.frontier {
		return v, true
	}

	return v, false
}

// markVertex drops v from the frontier once its edges are scanned.
func (f *forest[V]) markVertex(v vertex[V]) {
	delete(f.frontier, v)
}

func (f *forest[V]) contains(v vertex[V]) bool {
	_, ok := f.parents[v]
	return ok
}

func (f *forest[V]) distanceToRoot(v vertex[V]) (int, bool) {
	d, ok := f.distances[v]
	return d, ok
}

func (f *forest[V]) root(v vertex[V]) (vertex[V], bool) {
	r, ok := f.roots[v]
	return r, ok
}

// isEven reports whether v sits at even distance; absent vertices are not even.
func (f *forest[V]) isEven(v vertex[V]) bool {
	d, ok := f.distances[v]
	return ok && d%2 == 0
}

// pathToRootFrom returns v, parent(v), ..., root.
// Returns nil when v is not in the forest.
func (f *forest[V]) pathToRootFrom(v vertex[V]) []vertex[V] {
	if !f.contains(v) {
		return nil
	}
	path := make([]vertex[V], 0, f.distances[v]+1)
	for {
		path = append(path, v)
		p := f.parents[v]
		if p == v {
			return path
		}
		v = p
	}
}

// pathFromRootTo returns root, ..., parent(v), v.
func (f *forest[V]) pathFromRootTo(v vertex[V]) []vertex[V] {
	return reversed(f.pathToRootFrom(v))
}

// blossom builds the odd cycle closed by the edge {v, w} between two even
// vertices of the same tree:
//
//	[lca] + reverse(v ... child of lca) + (w ... child of lca)
//
// The lowest common ancestor becomes the base.
func (f *forest[V]) blossom(v, w vertex[V], id int) (*blossom[V], error) {
	if !f.isEven(v) || !f.isEven(w) {
		return nil, invariantf("forest: blossom endpoints %v and %v must both be even", v, w)
	}
	if f.roots[v] != f.roots[w] {
		return nil, invariantf("forest: %v and %v belong to different trees", v, w)
	}

	fromV := f.pathToRootFrom(v)
	fromW := f.pathToRootFrom(w)
	onW := make(map[vertex[V]]int, len(fromW))
	for i, x := range fromW {
		onW[x] = i
	}

	lcaV, lcaW := -1, -1
	for i, x := range fromV {
		if j, ok := onW[x]; ok {
			lcaV, lcaW = i, j
			break
		}
	}
	if lcaV < 0 {
		return nil, invariantf("forest: %v and %v share a root but no ancestor", v, w)
	}

	cycle := make([]vertex[V], 0, lcaV+lcaW+1)
	cycle = append(cycle, fromV[lcaV])
	cycle = append(cycle, reversed(fromV[:lcaV])...)
	cycle = append(cycle, fromW[:lcaW]...)

	return newBlossom(id, cycle)
}
