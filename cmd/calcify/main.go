package main

import (
	"os"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	configPath string
	debug      bool
	logFormat  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:          "calcify",
		Short:        "Steady-state Ca2+ transport energetics of a calcifying cell",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with physical constants (defaults to E. huxleyi)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(runCmd(opts))
	rootCmd.AddCommand(sweepCmd(opts))
	rootCmd.AddCommand(validateCmd(opts))
	rootCmd.AddCommand(checkCmd(opts))
	rootCmd.AddCommand(defaultsCmd())

	return rootCmd
}

func runCmd(opts *globalOptions) *cobra.Command {
	var steps int
	var format string
	var plain bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Derive the model scalars and print the split sweep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runModel(cmd, opts, steps, format, plain)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 100, "number of split fractions in [0,1)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json or csv")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}

func sweepCmd(opts *globalOptions) *cobra.Command {
	var steps int
	var format string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Print only the swept energy series, for plotting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, opts, steps, format)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 100, "number of split fractions in [0,1)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
	return cmd
}

func validateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the constants without running the sweep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}
}

func checkCmd(opts *globalOptions) *cobra.Command {
	var steps int
	var printSystem bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Solve the compartment network numerically and compare with the closed form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts, steps, printSystem)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 100, "number of split fractions in [0,1)")
	cmd.Flags().BoolVar(&printSystem, "print-system", false, "dump the stamped nodal equations")
	return cmd
}

func defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default constants as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDefaults(cmd)
		},
	}
}
