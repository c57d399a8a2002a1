// SPDX-License-Identifier: MIT
// Package builder populates graphs with seeded random edges so that the
// representations in core can be compared on identical inputs, and the MST
// algorithms can be cross-checked on reproducible fixtures.
//
// Entry points:
//
//	Populate(s core.Store, edgeCount, opts...)                 : unweighted stores.
//	PopulateWeighted(g *core.WeightedGraph, edgeCount, opts...): weighted graphs.
//
// Both draw the same sequence of distinct, loop-free vertex pairs for the same
// vertex count, edge count and options, so a list, a set and a matrix filled
// with the same seed hold identical edge sets.
//
// Options:
//
//	WithSeed(seed)         deterministic *rand.Rand.
//	WithRand(r)            caller-supplied RNG (panics on nil).
//	WithWeightFn(fn)       per-edge weight generator (panics on nil).
//	WithConnected()        lay a path 0-1-…-(V-1) first, so the result is connected.
//
// Errors (sentinels, wrapped with %w):
//
//	ErrTooFewVertices, ErrTooManyEdges, ErrTooFewEdges, ErrNeedRandSource.
package builder
