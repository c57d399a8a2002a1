// Package mst defines result types, options and sentinel errors for spanning
// tree computation. It supports selecting between Boruvka, Kruskal and Prim
// via Options and Compute.
package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// ErrGraphNil indicates that a nil *core.WeightedGraph was passed in.
var ErrGraphNil = errors.New("mst: graph is nil")

// ErrDisconnected indicates that the graph is not connected, so a single
// spanning tree covering all vertices cannot be formed. Boruvka never returns
// it; it reports the component count on the Forest instead.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrVertexCountMismatch indicates that a tree and its source graph disagree
// on the number of vertices.
var ErrVertexCountMismatch = errors.New("mst: tree and graph vertex counts differ")

// ErrNoSwapPossible indicates that no single edge swap yields another spanning
// tree: the tree has fewer than two edges, or no non-tree edge reconnects any cut.
// SecondBest still returns a Swap holding an unchanged copy of the tree.
var ErrNoSwapPossible = errors.New("mst: no edge swap possible")

// ErrUnknownMethod indicates Compute received an unsupported Method.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodBoruvka selects Boruvka's algorithm (parallel cheapest outgoing edges per component).
const MethodBoruvka = "boruvka"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// Forest is the output of Boruvka: a minimum spanning forest of the input.
type Forest struct {
	// Graph holds the forest edges over the input's vertex set.
	Graph *core.WeightedGraph

	// Components is the number of trees in the forest, equal to the number of
	// connected components of the input.
	Components int

	// Rounds counts the rounds that added at least one edge.
	Rounds int

	// Weight is the saturating sum of the forest's edge weights.
	Weight int64
}

// Spanning reports whether the forest is a single spanning tree.
func (f *Forest) Spanning() bool { return f.Components == 1 }

// Swap is the output of SecondBest.
type Swap struct {
	// Tree is the spanning tree after the swap, or an unchanged copy of the
	// input tree when no swap is possible.
	Tree *core.WeightedGraph

	// Weight is the total weight of Tree.
	Weight int64

	// Removed is the tree edge taken out.
	Removed core.WeightedEdge

	// Added is the non-tree edge put in.
	Added core.WeightedEdge

	// Delta is Added.Weight - Removed.Weight, saturating.
	Delta int64
}

// Options configures which MST algorithm Compute runs and, for Prim, where it starts.
type Options struct {
	// Method to use: MethodBoruvka, MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by the others.
	Root int
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim.
func WithRoot(root int) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// DefaultOptions returns Options for Boruvka rooted at vertex 0.
func DefaultOptions() Options {
	return Options{
		Method: MethodBoruvka,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm named by the options and
// returns the tree edges with their total weight.
//
//	- MethodBoruvka: Boruvka(g); ErrDisconnected unless the forest is a single tree.
//	- MethodKruskal: Kruskal(g).
//	- MethodPrim:    Prim(g, Root).
//	- Otherwise:     ErrUnknownMethod.
func Compute(g *core.WeightedGraph, opts ...Option) ([]core.WeightedEdge, int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case MethodBoruvka:
		f, err := Boruvka(g)
		if err != nil {
			return nil, 0, err
		}
		if !f.Spanning() {
			return nil, 0, fmt.Errorf("boruvka: %d components: %w", f.Components, ErrDisconnected)
		}
		return f.Graph.WeightedEdges(), f.Weight, nil
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return nil, 0, fmt.Errorf("%q: %w", o.Method, ErrUnknownMethod)
	}
}

// TotalWeight sums edge weights, saturating at the int64 bounds.
func TotalWeight(edges []core.WeightedEdge) int64 {
	var total int64
	for _, e := range edges {
		total = core.SaturatingAdd(total, e.Weight)
	}

	return total
}
