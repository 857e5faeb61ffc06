package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/qualra/internal/cli"
	"github.com/pthm/qualra/pkg/loader"
)

var propagateCmd = &cobra.Command{
	Use:   "propagate <algebra> <network-file>",
	Short: "Run path consistency over a constraint network and print the result",
	Long: `Load an algebra (a shipped name or a file path) and a network
description over it, run path consistency to a fixed point, and print
the tightened edge set, or report that the network is inconsistent.`,
	Args: cobra.ExactArgs(2),
	Example: `  # Propagate a network over a shipped algebra
  qualra propagate linear_interval schedule.yaml

  # Show what narrowed, edge by edge
  qualra propagate linear_interval schedule.yaml --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		alg, err := resolveAlgebra(args[0])
		if err != nil {
			return cli.LoadError("loading algebra", err)
		}
		n, err := loader.LoadNetwork(args[1], alg)
		if err != nil {
			return cli.LoadError("loading network", err)
		}

		verbose := isVerbose(cfg.Propagate.Verbose)
		before := n.Copy()

		consistent, err := n.Propagate(cmd.Context())
		if err != nil {
			return cli.GeneralError("propagation was cancelled", err)
		}

		if !consistent {
			fmt.Println("inconsistent")
			return cli.InconsistentError("network has no consistent labelling")
		}

		fmt.Println("consistent")
		if verbose {
			changes := before.Diff(n)
			if len(changes) == 0 {
				fmt.Println("no edges narrowed")
			}
			for _, c := range changes {
				fmt.Printf("  %s -- %s: %s -> %s\n", c.U, c.V, c.Before, c.After)
			}
		}
		if !quiet {
			desc := n.Describe()
			for _, e := range desc.Edges {
				fmt.Printf("  %s %s %s\n", e.Source, e.Constraint, e.Target)
			}
		}
		return nil
	},
}
