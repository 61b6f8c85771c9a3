// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left ids leftPrefix+i, right ids rightPrefix+j (defaults "L", "R").
//   - Edges in left-major order. idFn is not consulted.
//
// Matching note: the maximum matching has min(n1, n2) edges.
//
// Complexity: O(n1·n2).

package builder

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return errors.Wrapf(ErrTooFewVertices, "%s: n1=%d, n2=%d (each must be ≥ %d)",
				MethodCompleteBipartite, n1, n2, MinPartitionSize)
		}

		left := prefixedIDs(cfg.leftPrefix, n1)
		right := prefixedIDs(cfg.rightPrefix, n2)
		for _, id := range left {
			c.addVertex(id)
		}
		for _, id := range right {
			c.addVertex(id)
		}
		for _, u := range left {
			for _, v := range right {
				if err := c.addEdge(u, v); err != nil {
					return wrapEdge(err, MethodCompleteBipartite, u, v)
				}
			}
		}

		return nil
	}
}

// prefixedIDs returns prefix0 .. prefix{n-1}.
func prefixedIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}
