// Package health provides release-readiness checks for autorel. It validates
// that the working directory is a releasable repository and that the
// configuration points at real, safe files, returning structured reports used
// by the 'autorel doctor' command.
package health

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/raveheart1/autorel/internal/config"
	"github.com/raveheart1/autorel/internal/git"
	"github.com/raveheart1/autorel/internal/update"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// RunHealthChecks runs all release-readiness checks and returns a report.
// A nil configuration means the config itself failed to load; that failure
// is reported as a check rather than aborting the report.
func RunHealthChecks(cfg *config.Configuration, configErr error) *HealthReport {
	report := &HealthReport{Passed: true}

	add := func(check CheckResult) {
		report.Checks = append(report.Checks, check)
		if !check.Passed {
			report.Passed = false
		}
	}

	add(checkRepository())
	add(checkConfiguration(cfg, configErr))

	if cfg != nil {
		add(checkChangelogPath(cfg))
		for _, check := range checkTargets(cfg) {
			add(check)
		}
		if cfg.Publish.Enable {
			add(checkPublishToken())
		}
	}

	return report
}

// checkRepository verifies the working directory is inside a git repository
// with at least one commit.
func checkRepository() CheckResult {
	repo, err := git.Open("")
	if err != nil {
		return CheckResult{
			Name:    "Git repository",
			Passed:  false,
			Message: "not inside a git repository",
		}
	}

	if _, _, err := repo.CommitsSinceLastRelease(""); err != nil {
		return CheckResult{
			Name:    "Git repository",
			Passed:  false,
			Message: "repository has no commits yet",
		}
	}

	return CheckResult{
		Name:    "Git repository",
		Passed:  true,
		Message: "repository found at " + repo.Root(),
	}
}

// checkConfiguration reports whether the configuration loaded and validated.
func checkConfiguration(cfg *config.Configuration, configErr error) CheckResult {
	if configErr != nil {
		return CheckResult{
			Name:    "Configuration",
			Passed:  false,
			Message: configErr.Error(),
		}
	}

	rules := cfg.Rules()
	if len(rules) == 0 {
		return CheckResult{
			Name:    "Configuration",
			Passed:  false,
			Message: "no valid commit type rules configured",
		}
	}

	return CheckResult{
		Name:    "Configuration",
		Passed:  true,
		Message: fmt.Sprintf("%d commit type rules, %d update targets", len(rules), len(cfg.Targets)),
	}
}

// checkChangelogPath validates the changelog output path when enabled.
func checkChangelogPath(cfg *config.Configuration) CheckResult {
	if !cfg.Changelog.Enable {
		return CheckResult{
			Name:    "Changelog",
			Passed:  true,
			Message: "disabled",
		}
	}

	if err := update.ValidatePath(cfg.Changelog.Output); err != nil {
		return CheckResult{
			Name:    "Changelog",
			Passed:  false,
			Message: "unsafe output path: " + err.Error(),
		}
	}

	return CheckResult{
		Name:    "Changelog",
		Passed:  true,
		Message: "writes to " + cfg.Changelog.Output,
	}
}

// checkTargets validates each configured update target: the path must be
// safe, and the file should exist (a missing file is a warning-level failure
// since the release run would skip it).
func checkTargets(cfg *config.Configuration) []CheckResult {
	root := "."
	if repo, err := git.Open(""); err == nil {
		root = repo.Root()
	}

	var checks []CheckResult
	for _, target := range cfg.UpdateTargets() {
		name := "Target " + target.Path

		if err := update.ValidatePath(target.Path); err != nil {
			checks = append(checks, CheckResult{
				Name:    name,
				Passed:  false,
				Message: "unsafe path: " + err.Error(),
			})
			continue
		}

		if _, err := os.Stat(filepath.Join(root, target.Path)); err != nil {
			checks = append(checks, CheckResult{
				Name:    name,
				Passed:  false,
				Message: "file does not exist (target would be skipped)",
			})
			continue
		}

		checks = append(checks, CheckResult{
			Name:    name,
			Passed:  true,
			Message: string(target.Kind) + " update",
		})
	}
	return checks
}

// checkPublishToken verifies a token is available for hosted publishing.
func checkPublishToken() CheckResult {
	if os.Getenv("GITHUB_TOKEN") == "" {
		return CheckResult{
			Name:    "Publish token",
			Passed:  false,
			Message: "GITHUB_TOKEN is not set; release creation will be rejected",
		}
	}
	return CheckResult{
		Name:    "Publish token",
		Passed:  true,
		Message: "GITHUB_TOKEN is set",
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var output string
	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		} else {
			output += fmt.Sprintf("✗ %s: %s\n", check.Name, check.Message)
		}
	}
	return output
}
