// SPDX-License-Identifier: MIT
// Package core provides the AdjacencyList representation.
//
// Each vertex owns a slice of neighbor ids in insertion order. Connect appends
// unconditionally, so repeating Connect(u,v) stores duplicate entries;
// Disconnect removes all of them.
package core

// AdjacencyList stores an undirected graph as one neighbor slice per vertex.
type AdjacencyList struct {
	data [][]int
}

// NewAdjacencyList creates an AdjacencyList over vertexCount vertices.
// edgeHint preallocates neighbor slices and is otherwise ignored.
//
// Complexity: O(V)
func NewAdjacencyList(vertexCount, edgeHint int) (*AdjacencyList, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}
	hint := perVertexHint(vertexCount, edgeHint)
	data := make([][]int, vertexCount)
	if hint > 0 {
		for i := range data {
			data[i] = make([]int, 0, hint)
		}
	}

	return &AdjacencyList{data: data}, nil
}

// VertexCount returns the number of vertices.
func (g *AdjacencyList) VertexCount() int { return len(g.data) }

// Connect appends v to u's list and u to v's list. Duplicates are kept.
//
// Complexity: O(1) amortized.
func (g *AdjacencyList) Connect(u, v int) error {
	if err := checkPair(u, v, len(g.data)); err != nil {
		return err
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	g.data[u] = append(g.data[u], v)
	g.data[v] = append(g.data[v], u)

	return nil
}

// Disconnect removes every occurrence of v from u's list and of u from v's list.
//
// Complexity: O(deg(u) + deg(v)).
func (g *AdjacencyList) Disconnect(u, v int) error {
	if err := checkPair(u, v, len(g.data)); err != nil {
		return err
	}
	g.data[u] = removeAll(g.data[u], v)
	g.data[v] = removeAll(g.data[v], u)

	return nil
}

// HasEdge scans u's list for v.
//
// Complexity: O(deg(u)).
func (g *AdjacencyList) HasEdge(u, v int) (bool, error) {
	if err := checkPair(u, v, len(g.data)); err != nil {
		return false, err
	}
	for _, x := range g.data[u] {
		if x == v {
			return true, nil
		}
	}

	return false, nil
}

// Neighbors returns a copy of u's list in insertion order.
func (g *AdjacencyList) Neighbors(u int) ([]int, error) {
	if err := checkVertex(u, len(g.data)); err != nil {
		return nil, err
	}
	out := make([]int, len(g.data[u]))
	copy(out, g.data[u])

	return out, nil
}

// Edges returns each edge once with U < V. Duplicate entries left by repeated
// Connect calls are reported a single time.
//
// Complexity: O(V + E)
func (g *AdjacencyList) Edges() []Edge {
	var out []Edge
	// lastFrom[v] == u+1 marks that (u,v) was already emitted while scanning u.
	lastFrom := make([]int, len(g.data))
	for u, nbrs := range g.data {
		for _, v := range nbrs {
			if u < v && lastFrom[v] != u+1 {
				lastFrom[v] = u + 1
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// MemoryUsage is one container header per vertex plus one word per stored entry.
func (g *AdjacencyList) MemoryUsage() int {
	entries := 0
	for _, nbrs := range g.data {
		entries += len(nbrs)
	}

	return len(g.data)*containerHeader + entries*wordSize
}

// removeAll filters x out of s in place.
func removeAll(s []int, x int) []int {
	kept := s[:0]
	for _, y := range s {
		if y != x {
			kept = append(kept, y)
		}
	}

	return kept
}
