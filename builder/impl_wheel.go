// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_wheel.go - Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Rim: Cycle over idFn(0..n-2); hub "Center" joined to every rim vertex.
//
// Complexity: O(n).

package builder

import "github.com/cockroachdb/errors"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < MinWheelNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodWheel, n, MinWheelNodes)
		}

		if err := Cycle(n-1)(c, cfg); err != nil {
			return errors.Wrap(err, MethodWheel)
		}
		c.addVertex(CenterVertexID)
		for i := 0; i < n-1; i++ {
			v := cfg.idFn(i)
			if err := c.addEdge(CenterVertexID, v); err != nil {
				return wrapEdge(err, MethodWheel, CenterVertexID, v)
			}
		}

		return nil
	}
}
