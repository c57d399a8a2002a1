package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// Prim computes the Minimum Spanning Tree of g by growing outwards from root
// using a min-heap of candidate edges.
//
// Error Conditions:
//   - ErrGraphNil           : g is nil.
//   - core.ErrInvalidVertex : root is outside [0, V) (checked when |V| > 0).
//   - ErrDisconnected       : |V| == 0, or |V| > 1 and g is not connected.
//
// Edges are returned in the order Prim discovers them, each in canonical
// (lower, higher) form.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.WeightedGraph, root int) ([]core.WeightedEdge, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("prim: root %d: %w", root, core.ErrInvalidVertex)
	}

	visited := make([]bool, n)
	tree := make([]core.WeightedEdge, 0, n-1)
	var total int64
	pq := &edgePQ{}
	heap.Init(pq)

	push := func(u int) error {
		nbrs, err := g.WeightedNeighbors(u)
		if err != nil {
			return err
		}
		for _, nb := range nbrs {
			if !visited[nb.To] {
				heap.Push(pq, arc{from: u, to: nb.To, weight: nb.Weight})
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(tree) < n-1 {
		a := heap.Pop(pq).(arc)
		if visited[a.to] {
			continue
		}
		visited[a.to] = true
		u, v := a.from, a.to
		if u > v {
			u, v = v, u
		}
		tree = append(tree, core.WeightedEdge{U: u, V: v, Weight: a.weight})
		total = core.SaturatingAdd(total, a.weight)
		if err := push(a.to); err != nil {
			return nil, 0, err
		}
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// arc is a directed view of a candidate edge leaving the tree.
type arc struct {
	from, to int
	weight   int64
}

// edgePQ implements heap.Interface for a min-heap of arcs ordered by weight.
type edgePQ []arc

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(arc)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	a := old[n-1]
	*pq = old[:n-1]

	return a
}
