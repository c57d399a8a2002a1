// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; option constructors panic on
//     meaningless input, populate functions never panic.

package builder

import "errors"

// ErrTooFewVertices indicates a negative vertex count, or a request for edges on
// a graph with fewer than two vertices.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooManyEdges indicates edgeCount exceeds V·(V−1)/2, the size of a simple graph.
var ErrTooManyEdges = errors.New("builder: too many edges for a simple graph")

// ErrTooFewEdges indicates edgeCount is negative, or smaller than V−1 under WithConnected.
var ErrTooFewEdges = errors.New("builder: too few edges")

// ErrNeedRandSource indicates a random draw was needed but no RNG was configured
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
