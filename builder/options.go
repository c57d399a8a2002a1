// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs (nil RNG,
//     nil weight function). Populate functions never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes population by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConnected lays the path 0-1-…-(V-1) before drawing random edges,
// so the populated graph is connected. Requires edgeCount ≥ V−1.
func WithConnected() BuilderOption {
	return func(c *builderConfig) {
		c.connected = true
	}
}
