package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/autorel/internal/config"
	apperrors "github.com/raveheart1/autorel/internal/errors"
	"github.com/raveheart1/autorel/internal/health"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the repository is ready to release",
	Long: `Run release-readiness checks: the working directory must be a git
repository with commits, the configuration must load and validate, the
changelog output and every update target must have a safe path, and a
publish token must be available when publishing is enabled.

Examples:
  autorel doctor`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, cfgErr := config.Load(configFlag)

		report := health.RunHealthChecks(cfg, cfgErr)
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Passed {
			return apperrors.NewPrerequisiteError(
				"one or more release-readiness checks failed",
				"fix the failing checks above and re-run 'autorel doctor'")
		}

		fmt.Fprintln(cmd.OutOrStdout(), "\nAll checks passed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
