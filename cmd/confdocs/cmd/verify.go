package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zipo2008/confdocs"
	"github.com/zipo2008/confdocs/pkg/errors"
)

// NewVerifyCommand creates the verify subcommand.
func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify documentation against declared options",
		Long: `Verify that the generated reference documentation matches the declared
configuration options.

By default the full reference is checked: every declared option against every
generated configuration artifact. With --common, only the curated common
section is checked: declarations tagged for the common section against the
common-section artifact.

Success is silent. Any completeness gap fails the run with one aggregate
report listing every problem; an ambiguous declaration fails immediately.`,
		RunE: runVerify,
	}

	cmd.Flags().StringSlice("manifests", nil, "declaration manifest files or directories")
	cmd.Flags().String("generated", "", "directory holding generated documentation artifacts")
	cmd.Flags().Bool("common", false, "verify only the common section")
	cmd.Flags().String("section", "", "section tag used with --common (default \"common\")")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	manifests, _ := cmd.Flags().GetStringSlice("manifests")
	generated, _ := cmd.Flags().GetString("generated")
	verbose, _ := cmd.Flags().GetBool("verbose")
	config.UpdateFromFlags(manifests, generated, verbose)

	common, _ := cmd.Flags().GetBool("common")
	if section, _ := cmd.Flags().GetString("section"); section != "" {
		config.CommonSection = section
	}

	verifier, err := confdocs.New(
		confdocs.WithManifestPaths(config.ManifestPaths...),
		confdocs.WithGeneratedDir(config.GeneratedDir),
		confdocs.WithCommonSection(config.CommonSection, config.CommonFile),
	)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	scope := "full reference"
	if common {
		scope = config.CommonSection + " section"
		err = verifier.VerifyCommon(ctx)
	} else {
		err = verifier.VerifyFull(ctx)
	}

	title := cases.Title(language.English).String(scope)
	if err != nil {
		if errors.IsIncomplete(err) {
			fmt.Printf("❌ %s check failed:\n%s\n", title, err.Error())
			return errors.ErrIncompleteDocs
		}
		return err
	}

	fmt.Printf("✅ %s documentation is complete\n", title)
	return nil
}
