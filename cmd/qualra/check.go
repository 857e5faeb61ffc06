package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/qualra/internal/cli"
	"github.com/pthm/qualra/internal/diagnose"
)

var checkCmd = &cobra.Command{
	Use:   "check <algebra>",
	Short: "Run composition-identity and associativity self-checks on an algebra",
	Long: `Load an algebra (a shipped name such as "rcc8" or a file path) and run
its algebraic self-checks: composition identity (r;s = converse(converse(s);
converse(r))) and associativity of composition. Neither check can fail to
run; an unsound table is reported, not rejected.`,
	Args: cobra.ExactArgs(1),
	Example: `  # Check a shipped algebra
  qualra check rcc8

  # Check a local algebra description, with counterexamples
  qualra check myalgebra.yaml --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		alg, err := resolveAlgebra(args[0])
		if err != nil {
			return cli.LoadError("loading algebra", err)
		}

		report := diagnose.New(alg).Run()
		report.Print(os.Stdout, isVerbose(cfg.Diagnose.Verbose))

		if report.HasErrors() {
			return cli.GeneralError("algebra failed one or more self-checks", nil)
		}
		return nil
	},
}
