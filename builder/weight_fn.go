// SPDX-License-Identifier: MIT
// Package builder provides helper functions for edge-weight distributions.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no WeightFn is given.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if max < min. With a nil rng it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		span := uint64(max - min)
		if span == ^uint64(0) {
			return int64(rng.Uint64())
		}

		return min + int64(randUint64n(rng, span+1))
	}
}

// randUint64n returns a uniform value in [0, n) for n > 0.
func randUint64n(rng *rand.Rand, n uint64) uint64 {
	if n <= 1<<62 {
		return uint64(rng.Int63n(int64(n)))
	}
	// Rejection sampling for spans beyond Int63n's range.
	limit := ^uint64(0) - (^uint64(0) % n)
	for {
		x := rng.Uint64()
		if x < limit {
			return x % n
		}
	}
}
