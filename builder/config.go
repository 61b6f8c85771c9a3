// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn        = DefaultIDFn        ("0","1","2",...)
//   - rng         = nil                (pure/deterministic unless seeded)
//   - left/right  = "L" / "R"

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand

	// Bipartite ID prefixes. Empty resolves to defaults.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults, last one wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		rng:         nil,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
