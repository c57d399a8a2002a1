// Package dfs implements iterative depth-first traversal and connected
// component labeling over any core.Graph.
//
// What:
//
//   - DFS: single-source depth-first traversal with an optional pre-order
//     hook and depth limit. Reports discovery order, depth and parent per vertex.
//   - Components: labels every vertex with a connected-component id. Roots are
//     scanned in ascending id order; each root's reachable set shares one label.
//
// Both walk with an explicit frame stack (vertex + next-neighbor cursor), so
// the visiting order equals that of the recursive algorithm while deep graphs
// cannot exhaust the goroutine stack.
//
// Determinism:
//
//   - Membership of each component depends only on the graph's edges.
//   - Label numbering and Order follow the graph's Neighbors order. For
//     AdjacencySet (map iteration) numbering of components is stable because
//     roots are chosen by ascending id, but Order may vary between runs.
//     Callers must treat labels as opaque across calls.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of Neighbors (O(V) per call for AdjacencyMatrix).
//   - Memory: O(V) for labels and the frame stack.
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  DFS start outside [0, V)
//   - hook errors             propagated from OnVisit, wrapped
//
// Neither function mutates the graph; both can be called repeatedly.
package dfs
