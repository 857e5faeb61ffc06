package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/qualra/internal/cli"
	"github.com/pthm/qualra/pkg/loader"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an algebra or network description file",
	Long: `Load an algebra or network description file and report load-time
errors without running any further checks. Network files are validated
against the algebra their "algebra" field names (a shipped algebra name or
a file path).`,
	Args: cobra.ExactArgs(1),
	Example: `  # Validate an algebra description
  qualra validate myalgebra.yaml

  # Validate a network description
  qualra validate mynetwork.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if alg, err := loader.LoadAlgebra(path); err == nil {
			if !quiet {
				fmt.Printf("%s is a valid algebra: %q (%d relations)\n", path, alg.Name(), len(alg.Relations()))
			}
			return nil
		}

		netDesc, algErr := peekNetworkAlgebra(path)
		if algErr != nil {
			return cli.LoadError(fmt.Sprintf("loading %s", path), algErr)
		}
		alg, err := resolveAlgebra(netDesc)
		if err != nil {
			return cli.LoadError(fmt.Sprintf("resolving algebra %q referenced by %s", netDesc, path), err)
		}
		n, err := loader.LoadNetwork(path, alg)
		if err != nil {
			return cli.LoadError(fmt.Sprintf("loading %s", path), err)
		}
		if !quiet {
			fmt.Printf("%s is a valid network over %q (%d entities)\n", path, alg.Name(), len(n.Entities()))
		}
		return nil
	},
}
