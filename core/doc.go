// Package core provides interchangeable in-memory representations of an
// undirected simple graph over dense integer vertex ids, plus the weighted
// graph used by the MST algorithms.
//
// Every representation implements the Graph capability set:
//
//	VertexCount() int
//	Neighbors(u int) ([]int, error)
//	HasEdge(u, v int) (bool, error)
//	Disconnect(u, v int) error
//	Edges() []Edge
//	MemoryUsage() int
//
// Unweighted representations (Store, adds Connect(u, v)):
//
//	- AdjacencyList  : neighbor slices; HasEdge O(deg), duplicates kept on repeated Connect.
//	- AdjacencySet   : neighbor hash sets; HasEdge expected O(1), Neighbors order unspecified.
//	- AdjacencyMatrix: V×V byte cells; HasEdge O(1), memory V² independent of E.
//
// Weighted representation:
//
//	- WeightedGraph: (neighbor, weight) slices; Connect(u, v, w) is a no-op
//	  when the edge already exists (checked on the lower id's side), SetWeight updates.
//
// Vertex count is fixed at construction. Ids outside [0, V) yield errors
// wrapping ErrInvalidVertex; nothing panics on bad ids.
//
// Memory model of MemoryUsage (diagnostic only):
//
//	list, set: V·header + entries·word
//	weighted:  V·header + entries·2·word
//	matrix:    V² bytes
//
// None of the types are safe for concurrent mutation. Concurrent reads
// between mutations are fine.
package core
