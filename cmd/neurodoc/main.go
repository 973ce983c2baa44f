// Package main is the entry point for the neurodoc CLI, a client for
// the NeuroDoc document-processing API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neurodoc/neurodoc-go/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "neurodoc",
		Short: "NeuroDoc - document decision API client",
		Long: `neurodoc is a command-line client for the NeuroDoc API: upload
documents, query them for decisions, inspect clauses, and review the
audit trail.

Configuration is read from a .env file, environment variables
(NEURODOC_API_URL, NEURODOC_JWT_TOKEN, ...), or a YAML file passed
with --config.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().String("format", "text", "output format (text, json)")

	rootCmd.AddCommand(
		cli.NewHealthCmd(),
		cli.NewUploadCmd(),
		cli.NewQueryCmd(),
		cli.NewDocumentsCmd(),
		cli.NewClausesCmd(),
		cli.NewAuditCmd(),
		cli.NewBatchCmd(),
		cli.NewProcessCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("neurodoc %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
		},
	}
}
