// Package semver implements the version transition function for releases.
// Parsing is deliberately lax: a leading "v" is tolerated, missing components
// default to zero, and non-numeric components coerce to zero. Tightening this
// to strict validation would change observable behavior for repositories with
// unconventional tags, so the laxity is kept and documented here.
package semver

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/raveheart1/autorel/internal/commit"
)

// Version is a parsed semantic version without prefix or pre-release parts.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the canonical "M.N.P" form. Tag prefixing is a caller concern.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// errorLogger receives non-fatal calculation errors. Defaults to stderr;
// swap via SetErrorLogger (mirrors the debug hook in the git package).
var errorLogger = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[semver] "+format+"\n", args...)
}

// SetErrorLogger replaces the logger for non-fatal calculation errors.
// Pass nil to silence them.
func SetErrorLogger(logger func(format string, args ...any)) {
	if logger == nil {
		logger = func(string, ...any) {}
	}
	errorLogger = logger
}

// Parse converts a version string into its components. One leading "v" or
// "V" is stripped; missing trailing components default to 0; non-numeric
// components coerce to 0.
func Parse(raw string) Version {
	s := strings.TrimSpace(raw)
	if len(s) > 0 && (s[0] == 'v' || s[0] == 'V') {
		s = s[1:]
	}

	var v Version
	parts := strings.Split(s, ".")
	nums := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, dst := range nums {
		if i >= len(parts) {
			break
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 {
			n = 0
		}
		*dst = n
	}
	return v
}

// Next applies the bump transition to the current version:
// major resets minor and patch, minor resets patch, patch increments patch,
// none leaves the version unchanged. An unknown bump value is logged as an
// error and leaves the version unchanged; it never fails the run.
func Next(current string, bump commit.BumpLevel) Version {
	v := Parse(current)
	switch bump {
	case commit.BumpMajor:
		return Version{Major: v.Major + 1}
	case commit.BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	case commit.BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	case commit.BumpNone:
		return v
	default:
		errorLogger("unknown bump level %d, version unchanged", int(bump))
		return v
	}
}

// Compare returns -1, 0, or 1 as a sorts before, equal to, or after b.
func Compare(a, b Version) int {
	pairs := [][2]int{{a.Major, b.Major}, {a.Minor, b.Minor}, {a.Patch, b.Patch}}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}
