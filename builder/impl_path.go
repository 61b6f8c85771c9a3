// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices idFn(0..n-1); edges i-(i+1) for i = 0..n-2.
//
// Complexity: O(n).

package builder

import "github.com/cockroachdb/errors"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < MinPathNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodPath, n, MinPathNodes)
		}

		for i := 0; i < n; i++ {
			c.addVertex(cfg.idFn(i))
		}
		for i := 0; i+1 < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn(i+1)
			if err := c.addEdge(u, v); err != nil {
				return wrapEdge(err, MethodPath, u, v)
			}
		}

		return nil
	}
}
