// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil   (pure/deterministic unless seeded)
//   • permute = false (vertex numbering as documented per constructor)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// permute relabels the final graph with a random permutation from rng.
	permute bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
