// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs (nil
//     functions, nil RNG). Constructors themselves never panic.
//   - Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption mutates a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets the bipartite side labels. Empty values mean
// "use the default" rather than an error.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
