// SPDX-License-Identifier: MIT

package core

// AdjacencySet stores an undirected graph as one hash set of neighbors per vertex.
// Connect is naturally idempotent; membership tests are expected O(1).
// Neighbor enumeration order is unspecified.
type AdjacencySet struct {
	data []map[int]struct{}
}

// NewAdjacencySet creates an AdjacencySet over vertexCount vertices.
//
// Complexity: O(V)
func NewAdjacencySet(vertexCount, edgeHint int) (*AdjacencySet, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}
	hint := perVertexHint(vertexCount, edgeHint)
	data := make([]map[int]struct{}, vertexCount)
	for i := range data {
		data[i] = make(map[int]struct{}, hint)
	}

	return &AdjacencySet{data: data}, nil
}

// VertexCount returns the number of vertices.
func (g *AdjacencySet) VertexCount() int { return len(g.data) }

// Connect inserts v into u's set and u into v's set.
func (g *AdjacencySet) Connect(u, v int) error {
	if err := checkPair(u, v, len(g.data)); err != nil {
		return err
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	g.data[u][v] = struct{}{}
	g.data[v][u] = struct{}{}

	return nil
}

// Disconnect deletes v from u's set and u from v's set.
func (g *AdjacencySet) Disconnect(u, v int) error {
	if err := checkPair(u, v, len(g.data)); err != nil {
		return err
	}
	delete(g.data[u], v)
	delete(g.data[v], u)

	return nil
}

// HasEdge reports set membership of v in u's set.
func (g *AdjacencySet) HasEdge(u, v int) (bool, error) {
	if err := checkPair(u, v, len(g.data)); err != nil {
		return false, err
	}
	_, ok := g.data[u][v]

	return ok, nil
}

// Neighbors returns u's neighbors in map iteration order.
func (g *AdjacencySet) Neighbors(u int) ([]int, error) {
	if err := checkVertex(u, len(g.data)); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(g.data[u]))
	for v := range g.data[u] {
		out = append(out, v)
	}

	return out, nil
}

// Edges returns each edge once with U < V. Order within a vertex is unspecified.
func (g *AdjacencySet) Edges() []Edge {
	var out []Edge
	for u, nbrs := range g.data {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// MemoryUsage is one container header per vertex plus one word per set entry.
func (g *AdjacencySet) MemoryUsage() int {
	entries := 0
	for _, nbrs := range g.data {
		entries += len(nbrs)
	}

	return len(g.data)*containerHeader + entries*wordSize
}
