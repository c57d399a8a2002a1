// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil   (no randomness unless seeded)
//   • weightFn  = ConstantWeightFn(DefaultEdgeWeight)
//   • connected = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by the populate functions.
// It is passed by value.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for weighted graphs.
	weightFn WeightFn
	// Lay a spanning path before random edges.
	connected bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		weightFn:  DefaultWeightFn,
		connected: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
