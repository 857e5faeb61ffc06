package main

import (
	"github.com/spf13/cobra"

	"github.com/pthm/qualra/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "qualra",
	Short: "Qualitative constraint reasoning over binary relation algebras",
	Long: `qualra - Qualitative constraint reasoning

qualra loads binary relation algebras (Allen's interval algebra and its
point/branching-time relatives, RCC-8) and constraint networks over them,
runs path consistency, and reports the result.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

// Command group IDs
const (
	groupReasoning = "reasoning"
	groupData      = "data"
	groupUtility   = "utility"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover qualra.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupReasoning, Title: "Reasoning:"},
		&cobra.Group{ID: groupData, Title: "Data:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	// Reasoning commands
	checkCmd.GroupID = groupReasoning
	propagateCmd.GroupID = groupReasoning
	deriveCmd.GroupID = groupReasoning
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(propagateCmd)
	rootCmd.AddCommand(deriveCmd)

	// Data commands
	validateCmd.GroupID = groupData
	convertCmd.GroupID = groupData
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(convertCmd)

	// Utility commands
	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// isVerbose reports whether -v was passed at least once, or the command's
// own config section asked for verbose output by default.
func isVerbose(configVerbose bool) bool {
	return verbose > 0 || configVerbose
}
