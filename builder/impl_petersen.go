// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_petersen.go - Petersen() constructor.
//
// Layout:
//   - Outer 5-cycle 0-1-2-3-4-0.
//   - Spokes i-(i+5) for i = 0..4.
//   - Inner pentagram 5-7-9-6-8-5.
//
// The Petersen graph is 3-regular on 10 vertices with girth 5, so every
// alternating search runs into 5-cycles. Its maximum matching is perfect (5 edges).

package builder

// petersenEdges is the canonical emission order.
var petersenEdges = []chord{
	{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 0, V: 4},
	{U: 0, V: 5}, {U: 1, V: 6}, {U: 2, V: 7}, {U: 3, V: 8}, {U: 4, V: 9},
	{U: 5, V: 7}, {U: 7, V: 9}, {U: 6, V: 9}, {U: 6, V: 8}, {U: 5, V: 8},
}

const petersenVertices = 10

// Petersen returns a Constructor that builds the Petersen graph.
func Petersen() Constructor {
	return func(c *canvas, cfg builderConfig) error {
		for i := 0; i < petersenVertices; i++ {
			c.addVertex(cfg.idFn(i))
		}
		for _, ch := range petersenEdges {
			u, v := cfg.idFn(ch.U), cfg.idFn(ch.V)
			if err := c.addEdge(u, v); err != nil {
				return wrapEdge(err, MethodPetersen, u, v)
			}
		}

		return nil
	}
}
