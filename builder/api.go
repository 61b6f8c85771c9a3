// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates the canvas, resolves cfg,
//     runs cons in order and returns the edge graph plus the full vertex list.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options/seed and constructor order ⇒ identical fixtures.
//   - Constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/matchkit/edmonds"
)

// Constructor adds one topology to the canvas using the resolved builderConfig.
// Constructors validate parameters before the first mutation and emit vertices
// and edges in a stable, documented order.
type Constructor func(c *canvas, cfg builderConfig) error

// canvas collects one fixture. edmonds.Graph stores only vertices with
// edges, so the canvas keeps the complete vertex list (isolated vertices
// included) next to it, in insertion order.
type canvas struct {
	g        *edmonds.Graph[string]
	vertices []string
	seen     map[string]struct{}
}

func newCanvas() *canvas {
	return &canvas{
		g:    edmonds.NewGraph[string](),
		seen: make(map[string]struct{}),
	}
}

// addVertex registers id; re-adding a vertex is a no-op so constructors can
// share vertices (e.g. two topologies glued on the same ids).
func (c *canvas) addVertex(id string) {
	if _, ok := c.seen[id]; ok {
		return
	}
	c.seen[id] = struct{}{}
	c.vertices = append(c.vertices, id)
}

// addEdge registers both endpoints and inserts u-v.
func (c *canvas) addEdge(u, v string) error {
	c.addVertex(u)
	c.addVertex(v)

	return c.g.AddEdge(u, v)
}

// BuildGraph resolves bopts and applies all constructors in order.
// It returns the graph and every vertex any constructor registered, in
// registration order. Any constructor error is wrapped with "BuildGraph" and
// returned immediately.
//
// Errors: builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...)
// and edmonds sentinels (ErrDuplicateEdge when topologies overlap), all
// reachable with errors.Is.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*edmonds.Graph[string], []string, error) {
	c := newCanvas()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(c, cfg); err != nil {
			return nil, nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return c.g, c.vertices, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)                    C_n, n ≥ 3; odd n is the smallest blossom.
// Path(n)                     P_n, n ≥ 2.
// Star(n)                     hub "Center" + n-1 leaves; maximum matching size 1.
// Wheel(n)                    C_{n-1} + hub "Center", n ≥ 4.
// Complete(n)                 K_n, n ≥ 1.
// CompleteBipartite(n1, n2)   K_{n1,n2} with cfg prefixes.
// Grid(rows, cols)            4-neighborhood grid, ids "r,c".
// RandomSparse(n, p)          G(n, p); needs an RNG for 0 < p < 1.
// RandomRegular(n, d)         d-regular via stub matching; needs an RNG.
// PlatonicSolid(name, hub)    the five Platonic shells, optional hub.
// Petersen()                  the Petersen graph: 3-regular, perfect matching, odd cycles everywhere.
