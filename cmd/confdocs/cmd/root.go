// Package cmd implements the confdocs command tree.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zipo2008/confdocs/pkg/logging"
)

// Execute builds the command tree and runs it with the given context.
func Execute(ctx context.Context, version, commit, date string) error {
	root := NewRootCommand(version, commit, date)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewRootCommand creates the confdocs root command.
func NewRootCommand(version, commit, date string) *cobra.Command {
	root := &cobra.Command{
		Use:   "confdocs",
		Short: "Verify configuration documentation completeness",
		Long: `confdocs reconciles declared configuration options against the generated
reference documentation and reports every discrepancy: options that are not
documented, documentation for options that no longer exist, and entries whose
default value or description is stale.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			configureLogging(verbose)
			return nil
		},
	}

	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.PersistentFlags().String("config", "", "config file (default ~/.confdocs.yaml)")

	root.AddCommand(NewVerifyCommand())
	root.AddCommand(NewVersionCommand(version, commit, date))

	return root
}

// configureLogging applies the global log level.
func configureLogging(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logging.SetDefault(logging.Default().Level(zerolog.DebugLevel))
	}
}
