// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub "Center" first, then leaves idFn(1..n-1), spokes in leaf order.
//
// Complexity: O(n).

package builder

import "github.com/cockroachdb/errors"

// Star returns a Constructor that builds a hub "Center" with n-1 leaves.
func Star(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < MinStarNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodStar, n, MinStarNodes)
		}

		c.addVertex(CenterVertexID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := c.addEdge(CenterVertexID, leaf); err != nil {
				return wrapEdge(err, MethodStar, CenterVertexID, leaf)
			}
		}

		return nil
	}
}
