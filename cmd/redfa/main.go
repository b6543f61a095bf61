// Package main provides the entry point for the redfa CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"redfa/cmd/redfa/commands"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "redfa",
		Short: "redfa - regular expressions to DFAs via the direct construction",
		Long: `redfa converts regular expressions over alphanumeric symbols into
deterministic finite automata and renders them with graphviz.

Commands:
  convert   Convert one pattern, print DOT or render an image
  batch     Run a job file of conversions
  serve     Run the web host`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewBatchCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "redfa %s\n", Version)
		},
	}
}
