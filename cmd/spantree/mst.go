// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/mst"
)

type mstOptions struct {
	file   string
	method string
	root   int
	second bool
}

func newMSTCmd(ctx context.Context) *cobra.Command {
	opts := &mstOptions{}

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Compute the minimum spanning tree of a graph and its cheapest single-edge alternative.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g := demoGraph()
			if opts.file != "" {
				log.Debugf("Reading graph from %s", opts.file)
				var err error
				if g, err = loadGraph(opts.file); err != nil {
					return err
				}
			}

			return runMST(cmd.OutOrStdout(), g, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "path to a YAML graph file (default: built-in demo graph)")
	cmd.Flags().StringVarP(&opts.method, "method", "m", mst.MethodBoruvka, "algorithm: boruvka, kruskal or prim")
	cmd.Flags().IntVar(&opts.root, "root", 0, "start vertex for prim")
	cmd.Flags().BoolVar(&opts.second, "second", true, "also report the second-best spanning tree")

	return cmd
}

func runMST(w io.Writer, g *core.WeightedGraph, opts *mstOptions) error {
	log.WithFields(log.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"method":   opts.method,
	}).Debug("computing spanning tree")

	tree, err := spanningTree(w, g, opts)
	if err != nil {
		return err
	}
	if !opts.second {
		return nil
	}

	s, err := mst.SecondBest(g, tree)
	switch {
	case errors.Is(err, mst.ErrNoSwapPossible):
		fmt.Fprintln(w, "second best: no single edge swap possible")
		return nil
	case err != nil:
		return errors.Wrap(err, "second best")
	}
	fmt.Fprintf(w, "second best: weight=%d delta=%d remove=%s add=%s\n",
		s.Weight, s.Delta, formatEdge(s.Removed), formatEdge(s.Added))
	printEdges(w, s.Tree.WeightedEdges())

	return nil
}

// spanningTree runs the selected method, prints its result and returns the
// tree as a graph over g's vertices.
func spanningTree(w io.Writer, g *core.WeightedGraph, opts *mstOptions) (*core.WeightedGraph, error) {
	if opts.method == mst.MethodBoruvka {
		f, err := mst.Boruvka(g)
		if err != nil {
			return nil, errors.Wrap(err, "boruvka")
		}
		fmt.Fprintf(w, "boruvka: weight=%d components=%d rounds=%d\n", f.Weight, f.Components, f.Rounds)
		printEdges(w, f.Graph.WeightedEdges())

		return f.Graph, nil
	}

	edges, total, err := mst.Compute(g, mst.WithMethod(opts.method), mst.WithRoot(opts.root))
	if err != nil {
		return nil, errors.Wrap(err, opts.method)
	}
	fmt.Fprintf(w, "%s: weight=%d\n", opts.method, total)
	printEdges(w, edges)

	tree, err := core.NewWeightedGraph(g.VertexCount(), len(edges))
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = tree.Connect(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

func printEdges(w io.Writer, edges []core.WeightedEdge) {
	for _, e := range edges {
		fmt.Fprintf(w, "  %s\n", formatEdge(e))
	}
}

func formatEdge(e core.WeightedEdge) string {
	return fmt.Sprintf("%d-%d(%d)", e.U, e.V, e.Weight)
}
