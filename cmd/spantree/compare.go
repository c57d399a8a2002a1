// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/core"
)

type compareOptions struct {
	vertices int
	edges    int
	seed     int64
	probes   int
	kinds    kindsValue
}

// storeReport is one row of the compare table.
type storeReport struct {
	Kind     core.Kind
	Edges    int
	Hits     int
	Memory   int
	Populate time.Duration
	Probe    time.Duration
	Scan     time.Duration
}

func newCompareCmd(ctx context.Context) *cobra.Command {
	opts := &compareOptions{kinds: kindsValue(core.Kinds())}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Populate every store kind with the same random graph and compare cost and memory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := runCompare(ctx, opts)
			if err != nil {
				return err
			}

			return printReports(cmd.OutOrStdout(), reports)
		},
	}
	cmd.Flags().IntVar(&opts.vertices, "vertices", 1000, "number of vertices")
	cmd.Flags().IntVar(&opts.edges, "edges", 5000, "number of distinct random edges")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed shared by population and probes")
	cmd.Flags().IntVar(&opts.probes, "probes", 10000, "number of random HasEdge probes")
	cmd.Flags().Var(&opts.kinds, "kinds", "comma-separated store kinds (list,set,matrix)")

	return cmd
}

// runCompare builds the same graph in every requested store and measures it.
func runCompare(ctx context.Context, opts *compareOptions) ([]storeReport, error) {
	if opts.probes < 0 {
		return nil, errors.Errorf("probes must not be negative, got %d", opts.probes)
	}
	reports := make([]storeReport, 0, len(opts.kinds))
	for _, kind := range opts.kinds {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "compare interrupted")
		}
		r, err := measure(kind, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "store %s", kind)
		}
		log.WithFields(log.Fields{
			"kind":   kind.String(),
			"edges":  r.Edges,
			"memory": r.Memory,
		}).Debug("store measured")
		reports = append(reports, r)
	}

	return reports, nil
}

func measure(kind core.Kind, opts *compareOptions) (storeReport, error) {
	r := storeReport{Kind: kind}
	s, err := core.NewStore(kind, opts.vertices, opts.edges)
	if err != nil {
		return r, err
	}

	start := time.Now()
	if err = builder.Populate(s, opts.edges, builder.WithSeed(opts.seed)); err != nil {
		return r, err
	}
	r.Populate = time.Since(start)

	if opts.vertices > 0 {
		rng := rand.New(rand.NewSource(opts.seed))
		start = time.Now()
		for i := 0; i < opts.probes; i++ {
			ok, err := s.HasEdge(rng.Intn(opts.vertices), rng.Intn(opts.vertices))
			if err != nil {
				return r, err
			}
			if ok {
				r.Hits++
			}
		}
		r.Probe = time.Since(start)
	}

	start = time.Now()
	r.Edges = len(s.Edges())
	r.Scan = time.Since(start)
	r.Memory = s.MemoryUsage()

	return r, nil
}

func printReports(w io.Writer, reports []storeReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tEDGES\tHITS\tMEMORY\tPOPULATE\tPROBE\tSCAN")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
			r.Kind, r.Edges, r.Hits, r.Memory, r.Populate, r.Probe, r.Scan)
	}

	return tw.Flush()
}
