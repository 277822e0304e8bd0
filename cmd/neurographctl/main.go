package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "neurographctl",
		Short: "Build, evaluate and animate small neuron graphs",
		Long: `neurographctl drives a small neuron/connection graph: it builds the
2-3-1 sample network, runs single-pass predictions, steps the activity
animation, lays neurons out on an orbit and renders the result as a
console dump, Graphviz DOT or JSON.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().Int64("seed", 0, "seed for bias and weight draws (0 uses config or time)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSampleCmd(),
		newPredictCmd(),
		newAnimateCmd(),
		newOrbitCmd(),
		newDumpCmd(),
		newDotCmd(),
		newFramesCmd(),
		newServeCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput(cmd) {
				return writeJSON(cmd, map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "neurographctl version %s\n", version)
			return nil
		},
	}
}
