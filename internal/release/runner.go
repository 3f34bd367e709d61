// Package release orchestrates a release run: classify commits since the
// last release, compute the next version, render and persist the changelog,
// update configured files, then tag and optionally publish. Execution is
// strictly sequential; commits, rules, and targets are processed in input
// order so output is deterministic.
package release

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/raveheart1/autorel/internal/commit"
	"github.com/raveheart1/autorel/internal/config"
	apperrors "github.com/raveheart1/autorel/internal/errors"
	"github.com/raveheart1/autorel/internal/git"
	"github.com/raveheart1/autorel/internal/notes"
	"github.com/raveheart1/autorel/internal/output"
	"github.com/raveheart1/autorel/internal/semver"
	"github.com/raveheart1/autorel/internal/update"
)

// Result summarizes one release run.
type Result struct {
	// Current is the bare version of the last release tag ("0.0.0" if none).
	Current string
	// Bump is the classified bump level for the commit range.
	Bump commit.BumpLevel
	// Next is the computed bare next version; empty when nothing to release.
	Next string
	// Tag is the prefixed tag name created for the release.
	Tag string
	// Notes is the rendered markdown release notes.
	Notes string
	// CommitCount is the number of commits considered.
	CommitCount int
	// Outcomes holds the per-target file update results, in target order.
	Outcomes []update.Outcome
	// Published reports whether a hosted release was created.
	Published bool
}

// Released reports whether the run produced a new version.
func (r *Result) Released() bool {
	return r.Next != ""
}

// Runner executes release runs against one repository with one immutable
// configuration. The configuration is threaded in explicitly; nothing reads
// process-wide state.
type Runner struct {
	cfg       *config.Configuration
	repo      *git.Repository
	out       io.Writer
	publisher Publisher
	now       func() time.Time
}

// NewRunner creates a Runner. Progress and per-target lines are written to
// out. The publisher may be nil when publishing is disabled.
func NewRunner(cfg *config.Configuration, repo *git.Repository, out io.Writer, publisher Publisher) *Runner {
	return &Runner{
		cfg:       cfg,
		repo:      repo,
		out:       out,
		publisher: publisher,
		now:       time.Now,
	}
}

// SetClock overrides the release timestamp source (used by tests for
// deterministic changelog headers).
func (r *Runner) SetClock(now func() time.Time) {
	r.now = now
}

// Run performs one release. When dryRun is set, the version and notes are
// computed and reported, but no file, tag, or release is created.
func (r *Runner) Run(ctx context.Context, dryRun bool) (*Result, error) {
	commits, current, err := r.repo.CommitsSinceLastRelease(r.cfg.TagPrefix)
	if err != nil {
		return nil, apperrors.WrapWithMessage(err, apperrors.Runtime, "collecting commits")
	}

	rules := r.cfg.Rules()
	classifier := commit.NewClassifier(rules)
	bump := classifier.Classify(commits)

	res := &Result{Current: current, Bump: bump, CommitCount: len(commits)}
	if bump == commit.BumpNone {
		output.PrintStep(r.out, fmt.Sprintf("no release needed (%d commits since %s)", len(commits), current))
		return res, nil
	}

	next := semver.Next(current, bump)
	res.Next = next.String()
	res.Tag = r.cfg.TagPrefix + res.Next
	res.Notes = notes.Render(commits, rules)

	output.PrintStep(r.out, fmt.Sprintf("%s bump: %s → %s (%d commits)", bump, current, res.Next, len(commits)))

	if dryRun {
		return res, nil
	}

	if err := r.writeChangelog(res); err != nil {
		return res, err
	}

	r.applyTargets(res)

	if err := r.repo.CreateTag(res.Tag); err != nil {
		return res, apperrors.WrapWithMessage(err, apperrors.Runtime, "creating release tag")
	}
	output.PrintSuccess(r.out, "tagged "+res.Tag)

	if err := r.publish(ctx, res); err != nil {
		return res, err
	}

	return res, nil
}

// writeChangelog prepends the release block and stages the changelog file.
func (r *Runner) writeChangelog(res *Result) error {
	if !r.cfg.Changelog.Enable {
		return nil
	}

	path := filepath.Join(r.repo.Root(), r.cfg.Changelog.Output)
	if err := notes.Write(path, res.Next, r.now(), res.Notes); err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "writing changelog")
	}
	if err := r.repo.Stage(r.cfg.Changelog.Output); err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "staging changelog")
	}

	output.PrintSuccess(r.out, "updated "+r.cfg.Changelog.Output)
	return nil
}

// applyTargets runs the file-update phase. A failed version-format pre-check
// aborts this phase only - it is reported as a security error and the run
// continues to tagging. Individual target failures never abort the batch;
// one progress line is printed per attempted target.
func (r *Runner) applyTargets(res *Result) {
	targets := r.cfg.UpdateTargets()
	if len(targets) == 0 {
		return
	}

	updater := update.New(r.repo.Root(), update.StagerFunc(r.repo.Stage))
	outcomes, err := updater.Apply(res.Next, targets)
	if err != nil {
		apperrors.FprintError(r.out, apperrors.Wrap(err, apperrors.Security,
			"no target files were modified",
			"check the computed version and the update targets in .autorel/config.yml"))
		return
	}

	res.Outcomes = outcomes
	for _, outcome := range outcomes {
		output.PrintTargetOutcome(r.out, outcome)
	}
}

// publish creates the hosted release when enabled.
func (r *Runner) publish(ctx context.Context, res *Result) error {
	if !r.cfg.Publish.Enable {
		return nil
	}
	if r.publisher == nil {
		return apperrors.NewPrerequisiteError(
			"publishing is enabled but no publisher is available",
			"set publish.repository in the configuration",
			"or disable publishing with publish.enable: false")
	}

	if err := r.publisher.Publish(ctx, res.Tag, res.Notes); err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "publishing release")
	}

	res.Published = true
	output.PrintSuccess(r.out, "published release "+res.Tag)
	return nil
}
