package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/autorel/internal/commit"
	"github.com/raveheart1/autorel/internal/config"
	apperrors "github.com/raveheart1/autorel/internal/errors"
	"github.com/raveheart1/autorel/internal/git"
	"github.com/raveheart1/autorel/internal/semver"
)

var nextBumpOnly bool

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next version implied by commits since the last release",
	Long: `Classify commits since the last release tag and print the next
semantic version without releasing anything.

Examples:
  autorel next           # e.g. "1.3.0"
  autorel next --bump    # e.g. "minor"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNext(cmd)
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
	nextCmd.Flags().BoolVar(&nextBumpOnly, "bump", false, "Print the bump level instead of the version")
}

func runNext(cmd *cobra.Command) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Configuration)
	}

	repo, err := git.Open("")
	if err != nil {
		return apperrors.NewPrerequisiteError("not inside a git repository")
	}

	commits, current, err := repo.CommitsSinceLastRelease(cfg.TagPrefix)
	if err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "collecting commits")
	}

	bump := commit.NewClassifier(cfg.Rules()).Classify(commits)
	if nextBumpOnly {
		fmt.Fprintln(cmd.OutOrStdout(), bump)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), semver.Next(current, bump))
	return nil
}
