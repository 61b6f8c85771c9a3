// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_platonic.go - PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   - name is one of the five PlatonicName values (else ErrOptionViolation).
//   - Shell vertices idFn(0..V-1), shell edges in the order of platonicEdgeSets.
//   - withCenter adds hub "Center" and spokes to every shell vertex in index order.
//
// Complexity: O(V+E), V ≤ 20 and E ≤ 30.

package builder

import "github.com/cockroachdb/errors"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a central hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return errors.Wrapf(ErrOptionViolation, "%s: unknown solid %q", MethodPlatonicSolid, name)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return errors.Wrapf(ErrConstructFailed, "%s: missing edge set for %q", MethodPlatonicSolid, name)
		}

		for i := 0; i < n; i++ {
			c.addVertex(cfg.idFn(i))
		}
		for _, ch := range edges {
			u, v := cfg.idFn(ch.U), cfg.idFn(ch.V)
			if err := c.addEdge(u, v); err != nil {
				return wrapEdge(err, MethodPlatonicSolid, u, v)
			}
		}

		if !withCenter {
			return nil
		}
		c.addVertex(CenterVertexID)
		for i := 0; i < n; i++ {
			v := cfg.idFn(i)
			if err := c.addEdge(CenterVertexID, v); err != nil {
				return wrapEdge(err, MethodPlatonicSolid, CenterVertexID, v)
			}
		}

		return nil
	}
}
