// Package main provides the entry point for the complexityscope CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/complexityscope/complexityscope/cmd/complexityscope/commands"
	"github.com/complexityscope/complexityscope/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "complexityscope",
		Short: "Cyclomatic, Halstead and maintainability metrics for JavaScript",
		Long: `complexityscope computes cyclomatic complexity, Halstead software
science metrics and the maintainability index for JavaScript modules, and
builds the project-wide dependency graph (adjacency, visibility, change
cost, core size) across a tree of modules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to a .complexityscope.yaml config file")
	rootCmd.PersistentFlags().Bool("debug-trace", false, "force 100% trace sampling")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit JSON-formatted logs")

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "complexityscope %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
