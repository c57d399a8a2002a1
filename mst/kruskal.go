package mst

import (
	"sort"

	"github.com/katalvlaran/spanforest/core"
)

// Kruskal computes the Minimum Spanning Tree of g with a disjoint-set
// (union-find) using path halving and union by rank.
//
// Error Conditions:
//   - ErrGraphNil     : g is nil.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and g is not connected.
//
// Steps:
//  1. Validate g; |V| == 1 yields an empty tree.
//  2. Stable-sort g.WeightedEdges() by weight so equal weights keep enumeration order.
//  3. Take each edge whose endpoints have different roots, merging them.
//  4. Stop at |V|-1 edges; fewer means g is disconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.WeightedGraph) ([]core.WeightedEdge, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.WeightedEdge{}, 0, nil
	}

	edges := g.WeightedEdges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	tree := make([]core.WeightedEdge, 0, n-1)
	var total int64
	for _, e := range edges {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		// Attach smaller-rank tree under larger-rank root.
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		tree = append(tree, e)
		total = core.SaturatingAdd(total, e.Weight)
		if len(tree) == n-1 {
			break
		}
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
