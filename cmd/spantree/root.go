// SPDX-License-Identifier: MIT
package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newRootCmd wires the spantree command tree. Each call returns fresh flag
// state so the tree can be executed more than once in-process.
func newRootCmd(ctx context.Context, version string) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "spantree",
		Short:        "Compare graph stores and compute minimum and second-best spanning trees.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newCompareCmd(ctx), newMSTCmd(ctx))

	return rootCmd
}
