package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/autorel/internal/config"
	apperrors "github.com/raveheart1/autorel/internal/errors"
	"github.com/raveheart1/autorel/internal/git"
	"github.com/raveheart1/autorel/internal/progress"
	"github.com/raveheart1/autorel/internal/release"
)

var releaseDryRun bool

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Classify commits, compute the next version, and release",
	Long: `Run a full release: classify commits since the last release tag,
compute the next semantic version, prepend release notes to the changelog,
update configured version files, stage the results, and create the tag.

Examples:
  # Perform a release
  autorel release

  # Show what would be released without touching anything
  autorel release --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelease(cmd)
	},
}

func init() {
	rootCmd.AddCommand(releaseCmd)
	releaseCmd.Flags().BoolVar(&releaseDryRun, "dry-run", false, "Compute and report without modifying anything")
}

func runRelease(cmd *cobra.Command) error {
	runner, cfg, err := buildRunner(cmd)
	if err != nil {
		return err
	}

	display := progress.NewDisplay(cmd.OutOrStdout())
	display.StartPhase("releasing")

	res, err := runner.Run(cmd.Context(), releaseDryRun)
	if err != nil {
		display.FailPhase("release", err)
		return err
	}

	if !res.Released() {
		display.Stop()
		return nil
	}
	display.CompletePhase(fmt.Sprintf("%d commits classified", res.CommitCount))

	if releaseDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "\nWould release %s (tag %s):\n\n%s", res.Next, res.Tag, res.Notes)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nReleased %s (%s → %s)\n", res.Tag, res.Current, res.Next)
	if cfg.Publish.Enable && !res.Published {
		fmt.Fprintln(cmd.OutOrStdout(), "note: release was tagged but not published")
	}
	return nil
}

// buildRunner loads configuration, opens the repository, and wires the
// publisher. A missing repository is a fatal prerequisite failure.
func buildRunner(cmd *cobra.Command) (*release.Runner, *config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.Configuration,
			"run 'autorel config init' to create a default config",
			"check .autorel/config.yml for syntax errors")
	}

	if debugFlag {
		git.SetDebugLogger(func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		})
	}

	repo, err := git.Open("")
	if err != nil {
		return nil, nil, apperrors.NewPrerequisiteError(
			"not inside a git repository",
			"run autorel from within the repository to release")
	}

	var publisher release.Publisher
	if cfg.Publish.Enable {
		publisher = release.NewGitHubPublisher(cfg.Publish.Repository)
	}

	return release.NewRunner(cfg, repo, cmd.OutOrStdout(), publisher), cfg, nil
}
