// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices idFn(0..n-1); edges i-j for i < j in lexicographic (i, j) order.
//
// Complexity: O(n²).

package builder

import "github.com/cockroachdb/errors"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodComplete, n, MinCompleteNodes)
		}

		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			c.addVertex(ids[i])
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := c.addEdge(ids[i], ids[j]); err != nil {
					return wrapEdge(err, MethodComplete, ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
