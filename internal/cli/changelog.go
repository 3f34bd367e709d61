package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/autorel/internal/commit"
	"github.com/raveheart1/autorel/internal/config"
	apperrors "github.com/raveheart1/autorel/internal/errors"
	"github.com/raveheart1/autorel/internal/git"
	"github.com/raveheart1/autorel/internal/notes"
	"github.com/raveheart1/autorel/internal/semver"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Preview the release notes for the pending release",
	Long: `Render the release notes that the next release would prepend to the
changelog, without writing anything.

Example:
  autorel changelog`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelogPreview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(changelogCmd)
}

func runChangelogPreview(cmd *cobra.Command) error {
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

	rules := cfg.Rules()
	bump := commit.NewClassifier(rules).Classify(commits)
	if bump == commit.BumpNone {
		fmt.Fprintln(cmd.OutOrStdout(), "No release pending.")
		return nil
	}

	next := semver.Next(current, bump)
	fmt.Fprintf(cmd.OutOrStdout(), "# %s (pending)\n\n%s", next, notes.Render(commits, rules))
	return nil
}
