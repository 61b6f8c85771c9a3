// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_random_regular.go - RandomRegular(n, d) constructor.
//
// Model: stub matching. Every vertex contributes d stubs; the stubs are
// shuffled and paired consecutively. A pairing with a loop or a repeated
// pair is rejected as a whole and reshuffled, up to maxStubMatchingAttempts.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   - cfg.rng required (else ErrNeedRandSource).
//   - ErrConstructFailed once the attempts are exhausted.
//
// Matching note: by Petersen's theorem every connected 3-regular bridgeless
// graph has a perfect matching; random cubic graphs make good stress input.
//
// Complexity: O(n·d) per attempt.

package builder

import "github.com/cockroachdb/errors"

// RandomRegular returns a Constructor that samples a d-regular simple graph.
func RandomRegular(n, d int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < MinRandomVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodRandomRegular, n, MinRandomVertices)
		}
		if d < 0 || d >= n {
			return errors.Wrapf(ErrTooFewVertices, "%s: degree must be in [0,%d), got %d", MethodRandomRegular, n, d)
		}
		if (n*d)%2 != 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: n*d must be even (n=%d, d=%d)", MethodRandomRegular, n, d)
		}
		if cfg.rng == nil {
			return errors.Wrapf(ErrNeedRandSource, "%s", MethodRandomRegular)
		}

		for i := 0; i < n; i++ {
			c.addVertex(cfg.idFn(i))
		}
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				u, v := cfg.idFn(stubs[i]), cfg.idFn(stubs[i+1])
				if err := c.addEdge(u, v); err != nil {
					return wrapEdge(err, MethodRandomRegular, u, v)
				}
			}
			return nil
		}

		return errors.Wrapf(ErrConstructFailed, "%s: no simple pairing after %d attempts",
			MethodRandomRegular, maxStubMatchingAttempts)
	}
}

// simplePairing reports whether consecutive stub pairs form no loop and no
// repeated pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
