// SPDX-License-Identifier: MIT
// File: api.go
// Role: Shared capability set (Graph, Store), representation kinds, and the
//       uniform constructor NewStore.
// Determinism:
//   - Edges() enumerates u ascending, then each container's own neighbor order.
// AI-HINT (file):
//   - Algorithms (dfs, mst) accept Graph so they stay representation-agnostic.
//   - Store adds the unweighted Connect; WeightedGraph adds a weighted Connect.

package core

import (
	"fmt"
	"strconv"
)

// wordSize is the size in bytes of one machine word (an int on this platform).
const wordSize = strconv.IntSize / 8

// containerHeader approximates the fixed per-vertex cost of one neighbor
// container (a slice header or a map handle plus bookkeeping).
const containerHeader = 3 * wordSize

// Graph is the capability set shared by every representation in this module.
//
// Vertex ids are dense integers in [0, VertexCount()). Every method that takes
// an id returns an error wrapping ErrInvalidVertex for ids outside that range.
type Graph interface {
	// VertexCount returns the fixed number of vertices.
	VertexCount() int

	// Neighbors returns the ids adjacent to u. The returned slice is owned by the caller.
	Neighbors(u int) ([]int, error)

	// HasEdge reports whether u and v are adjacent.
	HasEdge(u, v int) (bool, error)

	// Disconnect removes every stored entry of the undirected edge {u,v}.
	// Removing an absent edge is a no-op.
	Disconnect(u, v int) error

	// Edges returns each undirected edge exactly once, lower id first.
	Edges() []Edge

	// MemoryUsage returns an approximate byte footprint of the representation.
	MemoryUsage() int
}

// Store is an unweighted Graph that can be mutated with Connect.
type Store interface {
	Graph

	// Connect inserts the undirected edge {u,v}.
	Connect(u, v int) error
}

// Kind selects one of the unweighted representations.
type Kind int

const (
	// KindList is the array-of-neighbor-lists representation (AdjacencyList).
	KindList Kind = iota
	// KindSet is the hash-set-of-neighbor-sets representation (AdjacencySet).
	KindSet
	// KindMatrix is the dense adjacency matrix representation (AdjacencyMatrix).
	KindMatrix
)

// Kinds lists every Kind in declaration order.
func Kinds() []Kind { return []Kind{KindList, KindSet, KindMatrix} }

// String returns a short lowercase name for k.
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMatrix:
		return "matrix"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind maps a name produced by Kind.String back to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// NewStore constructs an empty Store of the given kind with vertexCount vertices.
// edgeHint only sizes initial allocations; it never limits the number of edges.
//
// Complexity: O(V) for list/set, O(V²) for matrix.
func NewStore(kind Kind, vertexCount, edgeHint int) (Store, error) {
	switch kind {
	case KindList:
		return NewAdjacencyList(vertexCount, edgeHint)
	case KindSet:
		return NewAdjacencySet(vertexCount, edgeHint)
	case KindMatrix:
		return NewAdjacencyMatrix(vertexCount, edgeHint)
	default:
		return nil, fmt.Errorf("NewStore(%d): %w", int(kind), ErrUnknownKind)
	}
}

// perVertexHint spreads an edge hint across vertices: each undirected edge
// occupies two adjacency slots.
func perVertexHint(vertexCount, edgeHint int) int {
	if vertexCount == 0 || edgeHint <= 0 {
		return 0
	}

	return 2 * edgeHint / vertexCount
}
