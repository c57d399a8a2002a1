// SPDX-License-Identifier: MIT
// File: adjacency_matrix.go
// Role: Dense V×V adjacency matrix of single-byte cells.
// Determinism:
//   - Neighbors() and Edges() are in ascending id order.
// AI-HINT (file):
//   - MemoryUsage() is V² regardless of edge count; it is the only
//     representation whose footprint does not grow with E.

package core

// AdjacencyMatrix stores an undirected graph as a row-major V×V byte matrix.
// cells[u*n+v] == 1 iff u and v are adjacent.
type AdjacencyMatrix struct {
	n     int     // vertex count
	cells []uint8 // flat backing storage, length == n*n
}

// NewAdjacencyMatrix creates an all-zero AdjacencyMatrix over vertexCount vertices.
// The matrix is fully allocated up front, so edgeHint is unused.
//
// Complexity: O(V²) time and memory.
func NewAdjacencyMatrix(vertexCount, _ int) (*AdjacencyMatrix, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}

	return &AdjacencyMatrix{n: vertexCount, cells: make([]uint8, vertexCount*vertexCount)}, nil
}

// VertexCount returns the number of vertices.
func (g *AdjacencyMatrix) VertexCount() int { return g.n }

// Connect sets cells (u,v) and (v,u). Idempotent.
// Complexity: O(1).
func (g *AdjacencyMatrix) Connect(u, v int) error {
	if err := checkPair(u, v, g.n); err != nil {
		return err
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	g.cells[u*g.n+v] = 1
	g.cells[v*g.n+u] = 1

	return nil
}

// Disconnect clears cells (u,v) and (v,u).
// Complexity: O(1).
func (g *AdjacencyMatrix) Disconnect(u, v int) error {
	if err := checkPair(u, v, g.n); err != nil {
		return err
	}
	g.cells[u*g.n+v] = 0
	g.cells[v*g.n+u] = 0

	return nil
}

// HasEdge reads cell (u,v).
// Complexity: O(1).
func (g *AdjacencyMatrix) HasEdge(u, v int) (bool, error) {
	if err := checkPair(u, v, g.n); err != nil {
		return false, err
	}

	return g.cells[u*g.n+v] == 1, nil
}

// Neighbors scans row u and returns the set columns in ascending order.
// Complexity: O(V).
func (g *AdjacencyMatrix) Neighbors(u int) ([]int, error) {
	if err := checkVertex(u, g.n); err != nil {
		return nil, err
	}
	var out []int
	row := g.cells[u*g.n : (u+1)*g.n]
	for v, c := range row {
		if c == 1 {
			out = append(out, v)
		}
	}

	return out, nil
}

// Edges scans the upper triangle, row by row.
// Complexity: O(V²).
func (g *AdjacencyMatrix) Edges() []Edge {
	var out []Edge
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if g.cells[u*g.n+v] == 1 {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// MemoryUsage returns V² (one byte per cell).
func (g *AdjacencyMatrix) MemoryUsage() int { return len(g.cells) }
