// Package git provides the repository collaborators for a release run:
// the commit source (messages since the last release tag), revision-control
// staging for updated files, and tag creation. It uses the go-git library
// exclusively, so no git CLI installation is required.
package git

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/raveheart1/autorel/internal/commit"
	"github.com/raveheart1/autorel/internal/semver"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default, it's a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repository wraps an opened git repository for release operations.
type Repository struct {
	repo *git.Repository
	root string
}

// Open opens the repository at path (or the current working directory when
// empty), traversing up the directory tree to find the repository root.
func Open(path string) (*Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &Repository{repo: repo, root: worktree.Filesystem.Root()}, nil
}

// Root returns the absolute path to the repository root.
func (r *Repository) Root() string {
	return r.root
}

// IsRepository checks if the given path is within a git repository.
func IsRepository(path string) bool {
	_, err := Open(path)
	result := err == nil
	logDebug("[git] IsRepository: %v", result)
	return result
}

// releaseTag is a resolved version tag: its parsed version and the commit
// it points at (peeled for annotated tags).
type releaseTag struct {
	version semver.Version
	hash    plumbing.Hash
}

// LatestVersionTag returns the highest semver tag carrying the given prefix
// and the commit hash it points at. Returns ok=false when the repository has
// no matching tags yet.
func (r *Repository) LatestVersionTag(prefix string) (string, bool, error) {
	tag, name, err := r.latestReleaseTag(prefix)
	if err != nil {
		return "", false, err
	}
	if tag == nil {
		return "", false, nil
	}
	logDebug("[git] LatestVersionTag: %s", name)
	return name, true, nil
}

func (r *Repository) latestReleaseTag(prefix string) (*releaseTag, string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, "", fmt.Errorf("listing tags: %w", err)
	}

	var best *releaseTag
	var bestName string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			return nil
		}
		bare := strings.TrimPrefix(name, prefix)
		if !looksLikeVersion(bare) {
			return nil
		}

		hash := ref.Hash()
		// Annotated tags point at a tag object, not the commit.
		if tagObj, tagErr := r.repo.TagObject(hash); tagErr == nil {
			hash = tagObj.Target
		}

		candidate := releaseTag{version: semver.Parse(bare), hash: hash}
		if best == nil || semver.Compare(candidate.version, best.version) > 0 {
			best = &candidate
			bestName = name
		}
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("iterating tags: %w", err)
	}

	return best, bestName, nil
}

// looksLikeVersion filters out tags that are clearly not release versions
// (the lax semver parser would otherwise coerce them all to 0.0.0).
func looksLikeVersion(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c >= '0' && c <= '9'
}

// CommitsSinceLastRelease returns commit records from HEAD back to (and
// excluding) the most recent version tag, oldest first. When no version tag
// exists, the full history is returned. The second return value is the bare
// version of the last release tag, "0.0.0" when there is none.
func (r *Repository) CommitsSinceLastRelease(prefix string) ([]commit.Record, string, error) {
	last, _, err := r.latestReleaseTag(prefix)
	if err != nil {
		return nil, "", err
	}

	current := "0.0.0"
	var stopAt plumbing.Hash
	if last != nil {
		current = last.version.String()
		stopAt = last.hash
	}

	head, err := r.repo.Head()
	if err != nil {
		return nil, "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, "", fmt.Errorf("reading commit log: %w", err)
	}

	var records []commit.Record
	stopErr := fmt.Errorf("reached last release")
	err = iter.ForEach(func(c *object.Commit) error {
		if last != nil && c.Hash == stopAt {
			return stopErr
		}
		records = append(records, toRecord(c))
		return nil
	})
	if err != nil && err != stopErr {
		return nil, "", fmt.Errorf("iterating commits: %w", err)
	}

	// Log order is newest first; reverse so downstream components see
	// commits in input (chronological) order.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	logDebug("[git] CommitsSinceLastRelease: %d commits since %s", len(records), current)
	return records, current, nil
}

// toRecord splits a commit message into subject and body.
func toRecord(c *object.Commit) commit.Record {
	subject, body, _ := strings.Cut(c.Message, "\n")
	return commit.Record{
		Subject: strings.TrimSpace(subject),
		Body:    strings.TrimSpace(body),
	}
}

// Stage marks a repo-relative file path for inclusion in the next commit.
func (r *Repository) Stage(path string) error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}
	if _, err := worktree.Add(path); err != nil {
		return fmt.Errorf("staging %s: %w", path, err)
	}
	logDebug("[git] Stage: %s", path)
	return nil
}

// CreateTag creates a lightweight tag at HEAD.
// Returns an error if the tag already exists.
func (r *Repository) CreateTag(name string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	if _, err := r.repo.CreateTag(name, head.Hash(), nil); err != nil {
		return fmt.Errorf("creating tag %q: %w", name, err)
	}

	logDebug("[git] CreateTag: %s", name)
	return nil
}
