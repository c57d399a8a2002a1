package mst

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/dfs"
)

// Boruvka computes a minimum spanning forest of g.
//
// Steps:
//  1. Start with an empty forest over g's vertices.
//  2. Label the forest's components; stop when at most one remains.
//  3. Scan g.WeightedEdges() once. For each edge whose endpoints carry different
//     labels, make it the candidate of both labels if it is strictly lighter than
//     the current candidate (so the first edge seen wins ties).
//  4. Connect every candidate into the forest in ascending label order.
//     An edge chosen by both of its components is connected once.
//  5. Stop when a round adds no edge: the remaining components have no
//     outgoing edges in g.
//
// A disconnected g is not an error: the result is a spanning forest and
// Forest.Components reports how many trees it holds.
//
// Complexity: O(log V) rounds of O(V + E) each.
func Boruvka(g *core.WeightedGraph) (*Forest, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	forest, err := core.NewWeightedGraph(n, n)
	if err != nil {
		return nil, err
	}
	edges := g.WeightedEdges() // fixed enumeration order for tie-breaking
	res := &Forest{Graph: forest}

	for {
		lab, err := dfs.Components(forest)
		if err != nil {
			return nil, fmt.Errorf("boruvka: round %d: %w", res.Rounds, err)
		}
		res.Components = lab.Count
		if lab.Count <= 1 {
			break
		}

		// cheapest[c] indexes the candidate edge of component c, -1 if none.
		cheapest := make([]int, lab.Count)
		for i := range cheapest {
			cheapest[i] = -1
		}
		for i, e := range edges {
			lu, lv := lab.Labels[e.U], lab.Labels[e.V]
			if lu == lv {
				continue
			}
			if cheapest[lu] < 0 || e.Weight < edges[cheapest[lu]].Weight {
				cheapest[lu] = i
			}
			if cheapest[lv] < 0 || e.Weight < edges[cheapest[lv]].Weight {
				cheapest[lv] = i
			}
		}

		before := forest.EdgeCount()
		for _, i := range cheapest {
			if i < 0 {
				continue
			}
			e := edges[i]
			if err = forest.Connect(e.U, e.V, e.Weight); err != nil {
				return nil, fmt.Errorf("boruvka: Connect(%d,%d): %w", e.U, e.V, err)
			}
		}
		if forest.EdgeCount() == before {
			break
		}
		res.Rounds++
	}
	res.Weight = forest.TotalWeight()

	return res, nil
}
