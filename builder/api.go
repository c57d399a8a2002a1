// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// api.go: public entry points for random population.
//
// Canonical model:
//   - Optional spanning path 0-1-…-(V-1) (WithConnected).
//   - Then distinct unordered pairs {u,v}, u≠v, not yet drawn, until edgeCount.
//   - Sparse requests use rejection sampling; dense requests (more than half of
//     the remaining pairs) shuffle the full remaining pair list instead.
//
// Determinism:
//   - Same V, edgeCount and options ⇒ same pair sequence, whatever the target.
//   - Weighted population draws all pairs first, then one weight per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

const (
	methodPopulate         = "Populate"
	methodPopulateWeighted = "PopulateWeighted"
)

// Populate connects edgeCount distinct random pairs into s.
// s is expected to be empty; existing edges are not taken into account.
//
// Complexity: O(V + E) expected for sparse requests, O(V²) for dense ones.
func Populate(s core.Store, edgeCount int, opts ...BuilderOption) error {
	cfg := newBuilderConfig(opts...)
	pairs, err := samplePairs(s.VertexCount(), edgeCount, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", methodPopulate, err)
	}
	for _, p := range pairs {
		if err = s.Connect(p.U, p.V); err != nil {
			return fmt.Errorf("%s: Connect(%d,%d): %w", methodPopulate, p.U, p.V, err)
		}
	}

	return nil
}

// PopulateWeighted connects edgeCount distinct random pairs into g with weights
// drawn from the configured WeightFn.
func PopulateWeighted(g *core.WeightedGraph, edgeCount int, opts ...BuilderOption) error {
	cfg := newBuilderConfig(opts...)
	pairs, err := samplePairs(g.VertexCount(), edgeCount, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", methodPopulateWeighted, err)
	}
	for _, p := range pairs {
		w := cfg.weightFn(cfg.rng)
		if err = g.Connect(p.U, p.V, w); err != nil {
			return fmt.Errorf("%s: Connect(%d,%d): %w", methodPopulateWeighted, p.U, p.V, err)
		}
	}

	return nil
}

// samplePairs draws edgeCount distinct canonical pairs over n vertices.
func samplePairs(n, edgeCount int, cfg builderConfig) ([]core.Edge, error) {
	// 1) Validate domains.
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrTooFewVertices)
	}
	if edgeCount < 0 {
		return nil, fmt.Errorf("edgeCount=%d: %w", edgeCount, ErrTooFewEdges)
	}
	if edgeCount == 0 {
		return nil, nil
	}
	if n < 2 {
		return nil, fmt.Errorf("n=%d with %d edges: %w", n, edgeCount, ErrTooFewVertices)
	}
	maxEdges := n * (n - 1) / 2
	if edgeCount > maxEdges {
		return nil, fmt.Errorf("edgeCount=%d > %d: %w", edgeCount, maxEdges, ErrTooManyEdges)
	}
	if cfg.connected && edgeCount < n-1 {
		return nil, fmt.Errorf("edgeCount=%d < %d for a connected graph: %w", edgeCount, n-1, ErrTooFewEdges)
	}

	out := make([]core.Edge, 0, edgeCount)
	seen := make(map[core.Edge]struct{}, edgeCount)

	// 2) Spanning path first.
	if cfg.connected {
		for i := 1; i < n; i++ {
			e := core.Edge{U: i - 1, V: i}
			out = append(out, e)
			seen[e] = struct{}{}
		}
	}

	remaining := edgeCount - len(out)
	if remaining == 0 {
		return out, nil
	}
	free := maxEdges - len(out)
	if remaining == free {
		// Every free pair is taken; no randomness involved.
		return appendFree(out, n, seen), nil
	}
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	// 3) Dense: shuffle the free pairs and take a prefix.
	if remaining > free/2 {
		all := appendFree(nil, n, seen)
		cfg.rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

		return append(out, all[:remaining]...), nil
	}

	// 4) Sparse: rejection sampling.
	for remaining > 0 {
		u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		e := core.Edge{U: u, V: v}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
		remaining--
	}

	return out, nil
}

// appendFree appends every canonical pair not in seen to dst, in (u, v) ascending order.
func appendFree(dst []core.Edge, n int, seen map[core.Edge]struct{}) []core.Edge {
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			e := core.Edge{U: u, V: v}
			if _, ok := seen[e]; !ok {
				dst = append(dst, e)
			}
		}
	}

	return dst
}
