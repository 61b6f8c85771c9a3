// SPDX-License-Identifier: MIT
// File: search.go
// Role: augmenting-path search (grow forest, detect path or blossom, recurse
//       on the contracted instance, lift) and the outer augment loop.
// Determinism:
//   - which unmarked edge or frontier vertex is taken next follows map
//     iteration order; the returned matching is always maximum but may differ
//     between runs when several maximum matchings exist.

package edmonds

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// MaximumMatching grows m into a maximum-cardinality matching of g by
// repeated augmentation. Neither g nor m is modified; the result is a new
// Matching over the same vertex set as m.
//
// Every vertex of g must be registered in m, and every matched edge of m must
// be an edge of g. Vertices registered in m without edges simply stay
// exposed.
//
// Errors:
//   - ErrGraphNil, ErrMatchingNil for nil inputs.
//   - ErrVertexNotFound, ErrEdgeNotFound if g and m are incompatible.
//   - the context's error (wrapped) if Options.Ctx is done between augmentations.
//   - ErrInvariant assertion failures on internal inconsistencies.
//
// Complexity: O(V) augmentations, each search O(V·(V+E)) in the worst case
// because of nested contractions.
func MaximumMatching[V constraints.Ordered](g *Graph[V], m *Matching[V], opts ...Option) (*Matching[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, ErrMatchingNil
	}
	o := gatherOptions(opts...)
	if err := checkCompatible(g, m); err != nil {
		return nil, err
	}

	work := g.Clone()
	cur := m.Clone()
	s := newSearcher[V](o)
	o.Logger.Debugf("edmonds: maximum matching over %d vertices, %d edges, initial size %d",
		work.VertexCount(), work.EdgeCount(), cur.Size())

	for n := 0; o.MaxAugmentations == 0 || n < o.MaxAugmentations; n++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "edmonds: MaximumMatching stopped after %d augmentations", n)
		}
		path, err := s.augmentingPath(work, cur, 0)
		if err != nil {
			return nil, err
		}
		if len(path) == 0 {
			break
		}
		if err = cur.augment(path); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "edmonds: search produced a non-augmenting path"), ErrInvariant)
		}
		o.Logger.Debugf("edmonds: augmented along %d vertices, size %d", len(path), cur.Size())
		if o.CheckInvariants {
			if err = cur.Validate(); err != nil {
				return nil, err
			}
		}
	}

	return cur, nil
}

// Solve registers every vertex of g as exposed and returns a maximum matching.
func Solve[V constraints.Ordered](g *Graph[V], opts ...Option) (*Matching[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	m := NewMatching[V]()
	if err := m.AddVertices(g.Vertices()); err != nil {
		return nil, err
	}

	return MaximumMatching(g, m, opts...)
}

// AugmentingPath runs a single search and returns an augmenting path for m in
// g, from one exposed vertex to another, or nil when m is already maximum.
// Neither g nor m is modified. Errors as for MaximumMatching.
func AugmentingPath[V constraints.Ordered](g *Graph[V], m *Matching[V], opts ...Option) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, ErrMatchingNil
	}
	o := gatherOptions(opts...)
	if err := checkCompatible(g, m); err != nil {
		return nil, err
	}

	path, err := newSearcher[V](o).augmentingPath(g.Clone(), m.Clone(), 0)
	if err != nil || len(path) == 0 {
		return nil, err
	}
	out := make([]V, len(path))
	for i, v := range path {
		if v.isSuper() {
			return nil, invariantf("AugmentingPath: unlifted super-vertex %v in result", v)
		}
		out[i] = v.id
	}

	return out, nil
}

// IsMaximum reports whether m admits no augmenting path in g.
func IsMaximum[V constraints.Ordered](g *Graph[V], m *Matching[V], opts ...Option) (bool, error) {
	path, err := AugmentingPath(g, m, opts...)
	if err != nil {
		return false, err
	}

	return len(path) == 0, nil
}

// checkCompatible verifies that m covers every vertex of g and that every
// matched edge exists in g.
func checkCompatible[V constraints.Ordered](g *Graph[V], m *Matching[V]) error {
	for v := range g.adjacency {
		if !m.has(v) {
			return errors.Wrapf(ErrVertexNotFound, "graph vertex %v is not registered in the matching", v)
		}
	}
	for e := range m.edges {
		if !g.adjacency.adjacent(e.a, e.b) {
			return errors.Wrapf(ErrEdgeNotFound, "matched edge %v-%v is not in the graph", e.a, e.b)
		}
	}

	return nil
}

// searcher carries the per-call state shared by every recursion level.
type searcher[V constraints.Ordered] struct {
	opts Options
	ids  *idAllocator
}

func newSearcher[V constraints.Ordered](o Options) *searcher[V] {
	return &searcher[V]{opts: o, ids: &idAllocator{}}
}

// augmentingPath searches g for a path augmenting m. g's unmarked set is
// consumed; m is only read. depth counts nested contractions.
func (s *searcher[V]) augmentingPath(g *Graph[V], m *Matching[V], depth int) ([]vertex[V], error) {
	g.unmarkAllEdges()
	if err := g.markEdges(m.edgeList()); err != nil {
		return nil, err
	}

	f := newForest[V]()
	for v := range m.exposed {
		if err := f.addSingletonTree(v); err != nil {
			return nil, err
		}
	}
	s.opts.Logger.Debugf("edmonds: search depth=%d exposed=%d", depth, len(m.exposed))
	if err := s.check(g, m, f); err != nil {
		return nil, err
	}

	for {
		v, ok := f.unmarkedEvenVertex()
		if !ok {
			return nil, nil
		}
		for {
			w, ok := g.unmarkedNeighboringEdge(v)
			if !ok {
				break
			}
			if err := g.markEdge(v, w); err != nil {
				return nil, err
			}

			if !f.contains(w) {
				// Roots are exactly the exposed vertices, so w is matched and
				// its mate is not in the forest either.
				x, err := m.mate(w)
				if err != nil {
					return nil, errors.Mark(errors.Wrapf(err, "vertex %v outside the forest", w), ErrInvariant)
				}
				if err = f.addEdge(v, w); err != nil {
					return nil, err
				}
				if err = f.addEdge(w, x); err != nil {
					return nil, err
				}
				if s.opts.CheckInvariants {
					if err = f.validate(); err != nil {
						return nil, err
					}
				}
				continue
			}
			if !f.isEven(w) {
				continue
			}

			rv, _ := f.root(v)
			rw, _ := f.root(w)
			if rv != rw {
				path := splice(f.pathFromRootTo(v), nil, f.pathToRootFrom(w))
				if s.opts.CheckInvariants {
					if err := g.validateAugmentingPath(m, path); err != nil {
						return nil, err
					}
				}
				return path, nil
			}

			return s.throughBlossom(g, m, f, v, w, depth)
		}
		f.markVertex(v)
	}
}

// throughBlossom contracts the blossom closed by {v, w}, searches the
// contracted instance and lifts the result back into g.
func (s *searcher[V]) throughBlossom(g *Graph[V], m *Matching[V], f *forest[V], v, w vertex[V], depth int) ([]vertex[V], error) {
	b, err := f.blossom(v, w, s.ids.next())
	if err != nil {
		return nil, err
	}
	gc, err := g.contract(b)
	if err != nil {
		return nil, err
	}
	mc, err := m.contract(b)
	if err != nil {
		return nil, err
	}
	s.opts.Logger.Debugf("edmonds: contracted blossom %d (base %v, %d vertices) at depth %d",
		b.id, b.base, len(b.vertices), depth)
	if s.opts.CheckInvariants {
		if err = gc.Validate(); err != nil {
			return nil, err
		}
		if err = mc.Validate(); err != nil {
			return nil, err
		}
	}

	path, err := s.augmentingPath(gc, mc, depth+1)
	if err != nil {
		return nil, err
	}
	lifted, err := g.liftPath(path, b, m)
	if err != nil {
		return nil, err
	}
	if s.opts.CheckInvariants && len(lifted) > 0 {
		if err = g.validateAugmentingPath(m, lifted); err != nil {
			return nil, err
		}
	}

	return lifted, nil
}

// check runs the consistency checker when enabled.
func (s *searcher[V]) check(g *Graph[V], m *Matching[V], f *forest[V]) error {
	if !s.opts.CheckInvariants {
		return nil
	}
	if err := g.Validate(); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	return f.validate()
}
