// SPDX-License-Identifier: MIT
// File: lift.go
// Role: expand a blossom's super-vertex inside a path found in the contracted
//       graph back into a real sub-path through the cycle.
//
// Every splice is an odd-length prefix of one traversal direction, starting at
// the base. Along the cycle, edges alternate unmatched/matched starting with
// the two unmatched edges at the base, so an odd prefix (even edge count)
// enters at the base and leaves on a matched edge: alternation survives.
//
// Cases, with the super-vertex at index i:
//
//	left endpoint   (i == 0):           B w ...  →  prefix + w ...
//	right endpoint  (i == last):    ... u B      →  ... u + reverse(prefix)
//	interior, left-oriented  (u~base):  ... u B w ...  →  ... u + prefix + w ...
//	interior, right-oriented (w~base):  ... u B w ...  →  ... u + reverse(prefix) + w ...

package edmonds

import "iter"

// liftPath replaces the occurrence of b's super-vertex in path (if any) by a
// sub-path through b's real vertices. path must come from the graph obtained
// by g.contract(b); adjacency is checked against g. m is the matching that was
// contracted alongside g and may be nil, in which case orientation falls back
// to base adjacency alone. The input slice is not modified.
//
// A path of length 1, a missing odd prefix, or an interior occurrence with
// neither neighbor adjacent to the base are invariant violations.
func (g *Graph[V]) liftPath(path []vertex[V], b *blossom[V], m *Matching[V]) ([]vertex[V], error) {
	switch len(path) {
	case 0:
		return path, nil
	case 1:
		return nil, invariantf("liftPath: a path cannot contain exactly one vertex")
	}

	super := b.vertex()
	last := len(path) - 1

	// Left endpoint: the prefix runs base → x with x adjacent to path[1].
	if path[0] == super {
		prefix, err := g.oddPrefix(b, path[1])
		if err != nil {
			return nil, err
		}
		return splice(nil, prefix, path[1:]), nil
	}

	// Right endpoint: mirrored, the prefix is appended backwards.
	if path[last] == super {
		prefix, err := g.oddPrefix(b, path[last-1])
		if err != nil {
			return nil, err
		}
		return splice(path[:last], reversed(prefix), nil), nil
	}

	for i := 1; i < last; i++ {
		if path[i] != super {
			continue
		}
		u, w := path[i-1], path[i+1]
		leftOriented := g.adjacency.adjacent(u, b.base)
		rightOriented := g.adjacency.adjacent(w, b.base)
		// Both neighbors may be adjacent to the base, but at most one is its
		// mate; the matched side enters the blossom at the base.
		if m != nil {
			if mate, ok := m.mates[b.base]; ok && (mate == u || mate == w) {
				leftOriented, rightOriented = mate == u, mate == w
			}
		}
		switch {
		case leftOriented:
			prefix, err := g.oddPrefix(b, w)
			if err != nil {
				return nil, err
			}
			return splice(path[:i], prefix, path[i+1:]), nil
		case rightOriented:
			prefix, err := g.oddPrefix(b, u)
			if err != nil {
				return nil, err
			}
			return splice(path[:i], reversed(prefix), path[i+1:]), nil
		default:
			return nil, invariantf("liftPath: neither %v nor %v is adjacent to base %v of blossom %d",
				u, w, b.base, b.id)
		}
	}

	// The super-vertex is absent: nothing to lift.
	return path, nil
}

// oddPrefix walks both traversal directions of b (left first) and returns the
// first prefix of odd length whose last vertex is adjacent to target.
func (g *Graph[V]) oddPrefix(b *blossom[V], target vertex[V]) ([]vertex[V], error) {
	for _, traverse := range []iter.Seq[vertex[V]]{b.traverseLeft(), b.traverseRight()} {
		var prefix []vertex[V]
		for v := range traverse {
			prefix = append(prefix, v)
			if len(prefix)%2 != 0 && g.adjacency.adjacent(v, target) {
				return prefix, nil
			}
		}
	}

	return nil, invariantf("liftPath: no odd-length prefix of blossom %d reaches %v", b.id, target)
}

// splice concatenates head, mid and tail into a fresh slice.
func splice[V any](head, mid, tail []V) []V {
	out := make([]V, 0, len(head)+len(mid)+len(tail))
	out = append(out, head...)
	out = append(out, mid...)

	return append(out, tail...)
}

// reversed returns a reversed copy of s.
func reversed[V any](s []V) []V {
	out := make([]V, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}
