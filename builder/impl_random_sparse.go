// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model: Erdos-Renyi G(n, p): each unordered pair {i, j}, i < j, is an edge
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - 0 < p < 1 needs cfg.rng (else ErrNeedRandSource); p ∈ {0, 1} is deterministic.
//
// Determinism: trials run in (i asc, j asc) order, so a fixed seed yields a
// fixed graph.
//
// Complexity: O(n²) trials.

package builder

import "github.com/cockroachdb/errors"

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < MinRandomVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodRandomSparse, n, MinRandomVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [%.1f,%.1f]",
				MethodRandomSparse, p, MinProbability, MaxProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return errors.Wrapf(ErrNeedRandSource, "%s: p=%.6f", MethodRandomSparse, p)
		}

		for i := 0; i < n; i++ {
			c.addVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == MaxProbability:
					keep = true
				case p == MinProbability:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				v := cfg.idFn(j)
				if err := c.addEdge(u, v); err != nil {
					return wrapEdge(err, MethodRandomSparse, u, v)
				}
			}
		}

		return nil
	}
}
