package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/pthm/qualra"
	"github.com/pthm/qualra/internal/cli"
)

var (
	deriveLessThan string
	deriveOutput   string
	deriveName     string
)

var deriveCmd = &cobra.Command{
	Use:   "derive <point-algebra>",
	Short: "Derive an interval algebra from a point algebra",
	Long: `Run the four/six-point-network derivation over a point algebra (a
shipped name or a file path), treating --lt as the point algebra's "strictly
before" relation set, and write the resulting interval algebra description.`,
	Args: cobra.ExactArgs(1),
	Example: `  # Derive the classical 13-relation Allen algebra from the linear point algebra
  qualra derive linear_point --lt "<" --output allen.yaml

  # Derive a branching-time interval algebra
  qualra derive left_branching_point --lt "<|l~" --output branching.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pointAlg, err := resolveAlgebra(args[0])
		if err != nil {
			return cli.LoadError("loading point algebra", err)
		}

		ltStr := resolveString(deriveLessThan, cfg.Derive.LessThan)
		lt, err := pointAlg.Parse(ltStr)
		if err != nil {
			return cli.LoadError(fmt.Sprintf("parsing --lt %q", ltStr), err)
		}

		name := deriveName
		if name == "" {
			name = pointAlg.Name() + "Interval"
		}
		desc, err := qualra.DeriveAlgebra(pointAlg, lt, name,
			fmt.Sprintf("derived from %s via lt=%s", pointAlg.Name(), ltStr))
		if err != nil {
			return cli.GeneralError("deriving interval algebra", err)
		}

		data, err := yaml.Marshal(desc)
		if err != nil {
			return cli.GeneralError("rendering derived algebra", err)
		}

		output := resolveString(deriveOutput, cfg.Derive.Output)
		if output == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return cli.GeneralError(fmt.Sprintf("writing %s", output), err)
		}
		if !quiet {
			fmt.Printf("wrote %d relations to %s\n", len(desc.Relations), output)
		}
		return nil
	},
}

func init() {
	deriveCmd.Flags().StringVar(&deriveLessThan, "lt", "", "the point algebra's strictly-before relation set (default: config derive.less_than, else \"<\")")
	deriveCmd.Flags().StringVar(&deriveOutput, "output", "", "output file path (default: stdout)")
	deriveCmd.Flags().StringVar(&deriveName, "name", "", "name for the derived algebra (default: the point algebra's name followed by \"Interval\")")
}
