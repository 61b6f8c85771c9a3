// SPDX-License-Identifier: MIT
// Package edmonds test helpers: small fixtures over int vertices.

package edmonds

import (
	"iter"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// pair is a fixture edge.
type pair [2]int

// pentagon is the 5-cycle 0-1-2-3-4-0.
var pentagon = []pair{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}

// buildGraph adds every edge of edges to a fresh Graph.
func buildGraph(t testing.TB, edges ...pair) *Graph[int] {
	t.Helper()
	g := NewGraph[int]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// buildMatching registers vertices 0..n-1 and matches every pair in matched.
func buildMatching(t testing.TB, n int, matched ...pair) *Matching[int] {
	t.Helper()
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}
	es := make([]Edge[int], 0, len(matched))
	for _, e := range matched {
		es = append(es, NewEdge(e[0], e[1]))
	}
	m, err := FromEdges(vs, es)
	require.NoError(t, err)

	return m
}

// vs wraps caller ids as internal vertices.
func vs(ids ...int) []vertex[int] {
	out := make([]vertex[int], len(ids))
	for i, id := range ids {
		out[i] = plain(id)
	}

	return out
}

// collect drains a traversal.
func collect(seq iter.Seq[vertex[int]]) []vertex[int] {
	var out []vertex[int]
	for v := range seq {
		out = append(out, v)
	}

	return out
}

// requireIs asserts errors.Is(err, target) through marks and wraps.
func requireIs(t testing.TB, err, target error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, target), "want %v, got %v", target, err)
}

// requireInvariant asserts err is an ErrInvariant assertion failure.
func requireInvariant(t testing.TB, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvariant), "want ErrInvariant, got %v", err)
	require.True(t, errors.HasAssertionFailure(err), "want an assertion failure, got %v", err)
}
