// Package commit classifies conventional-commit messages against a
// configured rule set. It determines the release bump level implied by a
// commit range and exposes the matching primitives the changelog renderer
// reuses for section grouping.
package commit

import "strings"

// BumpLevel is the magnitude of version increment implied by a commit set.
// Levels are ordered: None < Patch < Minor < Major.
type BumpLevel int

const (
	BumpNone BumpLevel = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

// String returns the configuration token for the bump level.
func (b BumpLevel) String() string {
	switch b {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	case BumpNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseBump converts a configuration token into a BumpLevel.
// Returns false for anything outside {major, minor, patch, none}.
func ParseBump(s string) (BumpLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return BumpMajor, true
	case "minor":
		return BumpMinor, true
	case "patch":
		return BumpPatch, true
	case "none":
		return BumpNone, true
	default:
		return BumpNone, false
	}
}

// Record is a single commit message: the subject line plus an optional
// multi-line body. Records are immutable once captured.
type Record struct {
	Subject string
	Body    string
}

// Text returns the full message text (subject and body) for footer scanning.
func (r Record) Text() string {
	if r.Body == "" {
		return r.Subject
	}
	return r.Subject + "\n" + r.Body
}

// TypeRule maps a conventional-commit type token to a changelog section and
// a bump level. Rule order is preserved from configuration and determines
// changelog section order. Hidden rules still count for classification but
// never produce a rendered section.
type TypeRule struct {
	Type    string
	Section string
	Bump    BumpLevel
	Hidden  bool
}
