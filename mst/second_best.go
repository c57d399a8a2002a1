package mst

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/dfs"
)

// SecondBest finds the cheapest single edge swap on tree, a minimum spanning
// tree (or forest) of g, and returns the resulting tree.
//
// Steps, for each tree edge (u,v,w) in tree.WeightedEdges() order:
//  1. Remove (u,v) from a private working copy of tree.
//  2. Label the working copy; u and v now carry different labels.
//  3. Among g's edges whose endpoints carry different labels, excluding (u,v)
//     itself, keep the strictly lightest (first seen wins ties).
//  4. Its delta is weight − w. Keep the swap with the smallest delta seen so far.
//  5. Put (u,v) back.
//
// The chosen swap is applied to a fresh copy of tree; tree itself is never
// modified. When tree has fewer than two edges, or no replacement edge exists
// for any tree edge, the result holds an unchanged copy of tree together with
// ErrNoSwapPossible. A zero-cost swap returns Delta == 0 and a nil error.
//
// Complexity: O(V · (V + E)).
func SecondBest(g, tree *core.WeightedGraph) (*Swap, error) {
	if g == nil || tree == nil {
		return nil, ErrGraphNil
	}
	if g.VertexCount() != tree.VertexCount() {
		return nil, fmt.Errorf("graph %d, tree %d: %w", g.VertexCount(), tree.VertexCount(), ErrVertexCountMismatch)
	}

	treeEdges := tree.WeightedEdges()
	if len(treeEdges) < 2 {
		return unchanged(tree), ErrNoSwapPossible
	}

	var (
		work  = tree.Clone()
		edges = g.WeightedEdges()
		found bool
		best  Swap
	)
	for _, te := range treeEdges {
		if err := work.Disconnect(te.U, te.V); err != nil {
			return nil, fmt.Errorf("second best: Disconnect(%d,%d): %w", te.U, te.V, err)
		}
		lab, err := dfs.Components(work)
		if err != nil {
			return nil, fmt.Errorf("second best: %w", err)
		}

		cand := -1
		for i, e := range edges {
			if lab.Same(e.U, e.V) || (e.U == te.U && e.V == te.V) {
				continue
			}
			if cand < 0 || e.Weight < edges[cand].Weight {
				cand = i
			}
		}
		if cand >= 0 {
			delta := core.SaturatingSub(edges[cand].Weight, te.Weight)
			if !found || delta < best.Delta {
				found = true
				best = Swap{Removed: te, Added: edges[cand], Delta: delta}
			}
		}

		if err = work.Connect(te.U, te.V, te.Weight); err != nil {
			return nil, fmt.Errorf("second best: Connect(%d,%d): %w", te.U, te.V, err)
		}
	}
	if !found {
		return unchanged(tree), ErrNoSwapPossible
	}

	out := tree.Clone()
	if err := out.Disconnect(best.Removed.U, best.Removed.V); err != nil {
		return nil, err
	}
	if err := out.Connect(best.Added.U, best.Added.V, best.Added.Weight); err != nil {
		return nil, err
	}
	best.Tree = out
	best.Weight = out.TotalWeight()

	return &best, nil
}

// unchanged wraps a copy of tree as a no-swap result.
func unchanged(tree *core.WeightedGraph) *Swap {
	return &Swap{Tree: tree.Clone(), Weight: tree.TotalWeight()}
}
