// Package mst computes minimum spanning forests on an undirected, weighted
// *core.WeightedGraph with Boruvka's algorithm, and the second-best spanning
// tree by single-edge-swap sensitivity analysis. Kruskal and Prim are provided
// as independent reference algorithms.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E
//     that connects all vertices with minimum total weight. On a disconnected graph the
//     analogue is a minimum spanning forest: one tree per connected component.
//
//   - What is the second-best tree?
//     The cheapest spanning tree reachable from the MST by removing one tree edge and
//     adding one non-tree edge across the resulting cut. Its weight minus the MST
//     weight tells how sensitive the optimum is to losing any single link.
//
// Algorithms Provided
//
//   - Boruvka(g) (*Forest, error)
//     Rounds of "every component picks its cheapest outgoing edge". Components are
//     recomputed each round with dfs.Components. Candidates are compared with a strict
//     less-than over g.WeightedEdges() order, so the first edge seen wins ties and the
//     output is reproducible. A round that adds nothing ends the loop, so isolated
//     subgraphs terminate with a forest instead of spinning.
//     Time: O(log V) rounds × O(V + E).
//
//   - SecondBest(g, tree) (*Swap, error)
//     For every tree edge: cut it in a working copy, label both sides, take the lightest
//     crossing edge of g, and keep the swap with the smallest weight delta (saturating).
//     Time: O(V · (V + E)).
//
//   - Kruskal(g), Prim(g, root)
//     Classic sort + union-find and heap-driven growth, used to cross-check Boruvka.
//
// Error Conditions
//
//   - ErrGraphNil           : nil input.
//   - ErrDisconnected       : Kruskal/Prim/Compute on a graph without a spanning tree.
//     Boruvka reports disconnection through Forest.Components instead.
//   - ErrVertexCountMismatch: SecondBest with a tree over a different vertex set.
//   - ErrNoSwapPossible     : SecondBest found no alternative tree; the returned Swap
//     still carries an unchanged copy of the tree.
//   - ErrUnknownMethod      : Compute with an unsupported Method.
//
// Determinism
//
//   - g.WeightedEdges() enumerates u ascending, then adjacency insertion order.
//     Boruvka, SecondBest and Kruskal's stable sort all break ties by that order.
package mst
