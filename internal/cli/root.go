// Package cli implements the autorel command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	apperrors "github.com/raveheart1/autorel/internal/errors"
)

var (
	// configFlag overrides the project config path for all commands.
	configFlag string
	// debugFlag enables debug logging from the git layer.
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "autorel",
	Short: "Automated semantic releases from conventional commits",
	Long: `autorel automates releases: it classifies the commits since the last
release tag under conventional-commit rules, derives the next semantic
version, prepends the release notes to the changelog, writes the new version
into configured project files, then tags and optionally publishes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to project config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output")
}

// Execute runs the root command and maps structured errors to exit codes.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if cliErr := apperrors.AsCLIError(err); cliErr != nil {
			apperrors.PrintError(cliErr)
			return exitCodeFor(cliErr.Category)
		}
		apperrors.PrintError(apperrors.Wrap(err, apperrors.Runtime))
		return ExitRuntime
	}
	return ExitSuccess
}

func exitCodeFor(category apperrors.ErrorCategory) int {
	switch category {
	case apperrors.Argument:
		return ExitInvalidArguments
	case apperrors.Configuration:
		return ExitConfigError
	case apperrors.Prerequisite:
		return ExitMissingPrerequisite
	case apperrors.Security:
		return ExitSecurityError
	default:
		return ExitRuntime
	}
}
