package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/raveheart1/autorel/internal/errors"
)

// runCommand executes the root command in process with the given arguments,
// resetting flag state so tests stay independent.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFlag = ""
	debugFlag = false
	releaseDryRun = false
	nextBumpOnly = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// chdirToRepo creates a git repository with the given commits (in order) and
// makes it the working directory for the test.
func chdirToRepo(t *testing.T, messages ...string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	for i, message := range messages {
		name := filepath.Join(dir, "file-"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(name, []byte(message), 0o644))
		_, err = worktree.Add(filepath.Base(name))
		require.NoError(t, err)
		_, err = worktree.Commit(message, &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  "releaser",
				Email: "releaser@example.com",
				When:  time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
			},
		})
		require.NoError(t, err)
	}

	t.Chdir(dir)
	return dir
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "autorel")
}

func TestConfigInitCommand(t *testing.T) {
	chdirToRepo(t, "chore: init")

	out, err := runCommand(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, ".autorel/config.yml")
	assert.FileExists(t, filepath.Join(".autorel", "config.yml"))

	_, err = runCommand(t, "config", "init")
	require.Error(t, err, "refuses to overwrite an existing config")
}

func TestNextCommand(t *testing.T) {
	chdirToRepo(t, "feat: add export command")

	out, err := runCommand(t, "next")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0\n", out)

	out, err = runCommand(t, "next", "--bump")
	require.NoError(t, err)
	assert.Equal(t, "minor\n", out)
}

func TestNextCommand_OutsideRepository(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "next")
	require.Error(t, err)

	cliErr := apperrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, ExitMissingPrerequisite, exitCodeFor(cliErr.Category))
}

func TestReleaseCommand_DryRun(t *testing.T) {
	dir := chdirToRepo(t, "fix: pager off-by-one")

	out, err := runCommand(t, "release", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would release 0.0.1")
	assert.Contains(t, out, "pager off-by-one")
	assert.NoFileExists(t, filepath.Join(dir, "CHANGELOG.md"))
}

func TestReleaseCommand_FullRun(t *testing.T) {
	dir := chdirToRepo(t, "feat: add export command")

	out, err := runCommand(t, "release")
	require.NoError(t, err)
	assert.Contains(t, out, "Released v0.1.0")
	assert.FileExists(t, filepath.Join(dir, "CHANGELOG.md"))
}

func TestChangelogCommand_Preview(t *testing.T) {
	chdirToRepo(t, "feat: add export command")

	out, err := runCommand(t, "changelog")
	require.NoError(t, err)
	assert.Contains(t, out, "# 0.1.0 (pending)")
	assert.Contains(t, out, "add export command")
}

func TestChangelogCommand_NoReleasePending(t *testing.T) {
	chdirToRepo(t, "chore: tune CI")

	out, err := runCommand(t, "changelog")
	require.NoError(t, err)
	assert.Contains(t, out, "No release pending")
}

func TestDoctorCommand_OutsideRepository(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "doctor")
	require.Error(t, err)
	assert.Contains(t, out, "✗ Git repository")
}

func TestDoctorCommand_HealthyRepository(t *testing.T) {
	chdirToRepo(t, "chore: init")

	out, err := runCommand(t, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "All checks passed.")
}

func TestExitCodeMapping(t *testing.T) {
	tests := map[string]struct {
		category apperrors.ErrorCategory
		want     int
	}{
		"argument":      {apperrors.Argument, ExitInvalidArguments},
		"configuration": {apperrors.Configuration, ExitConfigError},
		"prerequisite":  {apperrors.Prerequisite, ExitMissingPrerequisite},
		"security":      {apperrors.Security, ExitSecurityError},
		"runtime":       {apperrors.Runtime, ExitRuntime},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.category))
		})
	}
}
