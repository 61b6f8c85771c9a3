// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices idFn(0..n-1) in ascending order.
//   - Edges i-(i+1)%n for i = 0..n-1.
//
// Matching note: C_n has a maximum matching of ⌊n/2⌋; for odd n the whole
// cycle is one blossom.
//
// Complexity: O(n).

package builder

import "github.com/cockroachdb/errors"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < MinCycleNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodCycle, n, MinCycleNodes)
		}

		for i := 0; i < n; i++ {
			c.addVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := c.addEdge(u, v); err != nil {
				return wrapEdge(err, MethodCycle, u, v)
			}
		}

		return nil
	}
}
