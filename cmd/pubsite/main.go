package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pubsite",
		Short:         "Inspect, check, and preview the blog site configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the pubsite version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pubsite %s\n", version)
		},
	})

	return rootCmd
}
