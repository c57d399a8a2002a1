// Package spanforest is an in-memory toolkit for comparing graph
// representations and computing minimum spanning forests.
//
// Under the hood, everything is organized under four subpackages:
//
//	core/   : vertex-indexed stores (adjacency list, set, matrix) behind one
//	           Graph capability, plus the weighted graph used for MST work
//	dfs/    : iterative depth-first search and connected-component labeling
//	mst/    : Boruvka spanning forests, second-best trees by edge swap,
//	           Kruskal and Prim as reference algorithms
//	builder/: seeded random population of any store
//
// The spantree command (cmd/spantree) compares the stores on the same random
// graph and runs the MST algorithms on YAML graph files.
//
// Quick start:
//
//	g, _ := core.NewWeightedGraph(3, 3)
//	_ = g.Connect(0, 1, 4)
//	_ = g.Connect(1, 2, 1)
//	_ = g.Connect(0, 2, 2)
//	f, _ := mst.Boruvka(g)             // f.Weight == 3
//	s, _ := mst.SecondBest(g, f.Graph) // s.Weight == 5
package spanforest
