package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/qualra/internal/cli"
	"github.com/pthm/qualra/pkg/loader"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Round-trip an algebra or network description",
	Long: `Load an algebra or network description file and re-save it,
exercising the load/save round trip (useful for normalizing a hand-written
file into the canonical compact composition-table form).`,
	Args: cobra.ExactArgs(2),
	Example: `  # Normalize an algebra description
  qualra convert draft-algebra.yaml clean-algebra.yaml

  # Round-trip a network description
  qualra convert draft-network.yaml clean-network.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]

		if alg, err := loader.LoadAlgebra(in); err == nil {
			if err := loader.SaveAlgebra(out, alg); err != nil {
				return cli.GeneralError(fmt.Sprintf("writing %s", out), err)
			}
			if !quiet {
				fmt.Printf("converted algebra %q -> %s\n", alg.Name(), out)
			}
			return nil
		}

		netAlgRef, err := peekNetworkAlgebra(in)
		if err != nil {
			return cli.LoadError(fmt.Sprintf("loading %s", in), err)
		}
		alg, err := resolveAlgebra(netAlgRef)
		if err != nil {
			return cli.LoadError(fmt.Sprintf("resolving algebra %q referenced by %s", netAlgRef, in), err)
		}
		n, err := loader.LoadNetwork(in, alg)
		if err != nil {
			return cli.LoadError(fmt.Sprintf("loading %s", in), err)
		}
		if err := loader.SaveNetwork(out, n, "", ""); err != nil {
			return cli.GeneralError(fmt.Sprintf("writing %s", out), err)
		}
		if !quiet {
			fmt.Printf("converted network (%d entities) -> %s\n", len(n.Entities()), out)
		}
		return nil
	},
}
