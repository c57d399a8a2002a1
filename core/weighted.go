// SPDX-License-Identifier: MIT
// File: weighted.go
// Role: WeightedGraph, the array-of-(neighbor,weight) substrate for MST work.
// Determinism:
//   - WeightedEdges() enumerates u ascending, then adjacency-insertion order.
//     Boruvka and SecondBest tie-breaking depends on this order.
// AI-HINT (file):
//   - Connect checks existence on the lower id's side only and no-ops on an existing
//     edge even when the weight differs. Use SetWeight to change a weight.
//   - Clone is a deep copy; mutating the clone never affects the source.

package core

import "fmt"

// WeightedGraph is an undirected simple graph with int64 edge weights,
// stored as one (neighbor, weight) slice per vertex.
type WeightedGraph struct {
	links [][]Neighbor
	edges int
}

// NewWeightedGraph creates an empty WeightedGraph over vertexCount vertices.
// edgeHint preallocates adjacency slices only.
//
// Complexity: O(V)
func NewWeightedGraph(vertexCount, edgeHint int) (*WeightedGraph, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}
	hint := perVertexHint(vertexCount, edgeHint)
	links := make([][]Neighbor, vertexCount)
	if hint > 0 {
		for i := range links {
			links[i] = make([]Neighbor, 0, hint)
		}
	}

	return &WeightedGraph{links: links}, nil
}

// VertexCount returns the number of vertices.
func (g *WeightedGraph) VertexCount() int { return len(g.links) }

// EdgeCount returns the number of undirected edges.
func (g *WeightedGraph) EdgeCount() int { return g.edges }

// Connect adds the undirected edge {u,v} with the given weight.
// If the lower id's adjacency already holds the other endpoint the call is a
// no-op, even if weight differs from the stored value.
//
// Complexity: O(deg(min(u,v))).
func (g *WeightedGraph) Connect(u, v int, weight int64) error {
	if err := checkPair(u, v, len(g.links)); err != nil {
		return err
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	lo, hi := u, v
	if lo > hi {
		lo, hi = hi, lo
	}
	if indexOf(g.links[lo], hi) >= 0 {
		return nil
	}
	g.links[u] = append(g.links[u], Neighbor{To: v, Weight: weight})
	g.links[v] = append(g.links[v], Neighbor{To: u, Weight: weight})
	g.edges++

	return nil
}

// SetWeight overwrites the weight of an existing edge on both sides.
// Returns ErrEdgeNotFound if u and v are not adjacent.
func (g *WeightedGraph) SetWeight(u, v int, weight int64) error {
	if err := checkPair(u, v, len(g.links)); err != nil {
		return err
	}
	i, j := indexOf(g.links[u], v), indexOf(g.links[v], u)
	if i < 0 || j < 0 {
		return fmt.Errorf("SetWeight(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	g.links[u][i].Weight = weight
	g.links[v][j].Weight = weight

	return nil
}

// Disconnect removes {u,v} from both adjacency slices. Absent edges are a no-op.
//
// Complexity: O(deg(u) + deg(v)).
func (g *WeightedGraph) Disconnect(u, v int) error {
	if err := checkPair(u, v, len(g.links)); err != nil {
		return err
	}
	var removed bool
	g.links[u], removed = removeNeighbor(g.links[u], v)
	g.links[v], _ = removeNeighbor(g.links[v], u)
	if removed {
		g.edges--
	}

	return nil
}

// HasEdge reports whether v appears in u's adjacency.
func (g *WeightedGraph) HasEdge(u, v int) (bool, error) {
	if err := checkPair(u, v, len(g.links)); err != nil {
		return false, err
	}

	return indexOf(g.links[u], v) >= 0, nil
}

// Weight returns the weight stored for {u,v}, or ErrEdgeNotFound.
func (g *WeightedGraph) Weight(u, v int) (int64, error) {
	if err := checkPair(u, v, len(g.links)); err != nil {
		return 0, err
	}
	i := indexOf(g.links[u], v)
	if i < 0 {
		return 0, fmt.Errorf("Weight(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	return g.links[u][i].Weight, nil
}

// Neighbors returns the ids adjacent to u in insertion order.
func (g *WeightedGraph) Neighbors(u int) ([]int, error) {
	if err := checkVertex(u, len(g.links)); err != nil {
		return nil, err
	}
	out := make([]int, len(g.links[u]))
	for i, nb := range g.links[u] {
		out[i] = nb.To
	}

	return out, nil
}

// WeightedNeighbors returns a copy of u's (neighbor, weight) entries in insertion order.
func (g *WeightedGraph) WeightedNeighbors(u int) ([]Neighbor, error) {
	if err := checkVertex(u, len(g.links)); err != nil {
		return nil, err
	}
	out := make([]Neighbor, len(g.links[u]))
	copy(out, g.links[u])

	return out, nil
}

// WeightedEdges returns every edge once as (lower, higher, weight),
// u ascending then adjacency-insertion order.
//
// Complexity: O(V + E)
func (g *WeightedGraph) WeightedEdges() []WeightedEdge {
	out := make([]WeightedEdge, 0, g.edges)
	for u, nbrs := range g.links {
		for _, nb := range nbrs {
			if u < nb.To {
				out = append(out, WeightedEdge{U: u, V: nb.To, Weight: nb.Weight})
			}
		}
	}

	return out
}

// Edges returns every edge once without weights, in WeightedEdges order.
func (g *WeightedGraph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, e := range g.WeightedEdges() {
		out = append(out, e.Unweighted())
	}

	return out
}

// TotalWeight sums every edge weight, saturating at the int64 bounds.
func (g *WeightedGraph) TotalWeight() int64 {
	var total int64
	for _, e := range g.WeightedEdges() {
		total = SaturatingAdd(total, e.Weight)
	}

	return total
}

// MemoryUsage is one container header per vertex plus two words
// (neighbor and weight) per stored entry.
func (g *WeightedGraph) MemoryUsage() int {
	entries := 0
	for _, nbrs := range g.links {
		entries += len(nbrs)
	}

	return len(g.links)*containerHeader + entries*2*wordSize
}

// Clone returns a deep copy sharing no storage with g.
//
// Complexity: O(V + E)
func (g *WeightedGraph) Clone() *WeightedGraph {
	links := make([][]Neighbor, len(g.links))
	for i, nbrs := range g.links {
		if len(nbrs) > 0 {
			links[i] = append([]Neighbor(nil), nbrs...)
		}
	}

	return &WeightedGraph{links: links, edges: g.edges}
}

// indexOf returns the position of id in nbrs, or -1.
func indexOf(nbrs []Neighbor, id int) int {
	for i, nb := range nbrs {
		if nb.To == id {
			return i
		}
	}

	return -1
}

// removeNeighbor filters id out of nbrs in place and reports whether anything was removed.
func removeNeighbor(nbrs []Neighbor, id int) ([]Neighbor, bool) {
	kept := nbrs[:0]
	for _, nb := range nbrs {
		if nb.To != id {
			kept = append(kept, nb)
		}
	}

	return kept, len(kept) != len(nbrs)
}
