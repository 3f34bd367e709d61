package update

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// versionFormatRE is the sole gate against characters that could enable
// command or content injection when the version is interpolated into
// patterns and documents downstream.
var versionFormatRE = regexp.MustCompile(`^[A-Za-z0-9.-]+$`)

// SecurityError is a failed security-validation check. The message always
// names the specific check that failed.
type SecurityError struct {
	Check   string
	Message string
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Check, e.Message)
}

// ValidateVersionFormat runs the global version pre-check.
func ValidateVersionFormat(version string) error {
	if !versionFormatRE.MatchString(version) {
		return &SecurityError{
			Check:   "version format",
			Message: fmt.Sprintf("version %q contains characters outside [A-Za-z0-9.-]", version),
		}
	}
	return nil
}

// Stager marks a file for inclusion in the next commit. It is the only
// side effect beyond file content.
type Stager interface {
	Stage(path string) error
}

// StagerFunc adapts a function to the Stager interface.
type StagerFunc func(path string) error

// Stage implements Stager.
func (f StagerFunc) Stage(path string) error { return f(path) }

// Updater applies a version to a set of targets rooted at a repository.
type Updater struct {
	root   string
	stager Stager
}

// New creates an Updater. Target paths are resolved relative to root. The
// stager may be nil, in which case successful updates are not staged.
func New(root string, stager Stager) *Updater {
	return &Updater{root: root, stager: stager}
}

// Apply writes newVersion into every target, best-effort: one target's
// failure never aborts processing of the rest. The single exception is the
// global version-format pre-check, which runs once before any target and on
// failure aborts the whole update phase with a SecurityError before any
// file is touched. Targets are processed in configured order and the
// returned outcomes match that order.
func (u *Updater) Apply(newVersion string, targets []Target) ([]Outcome, error) {
	if err := ValidateVersionFormat(newVersion); err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(targets))
	for _, target := range targets {
		outcomes = append(outcomes, u.applyOne(newVersion, target))
	}
	return outcomes, nil
}

// applyOne runs the per-target checks in order (path safety, existence),
// then dispatches on the target kind.
func (u *Updater) applyOne(version string, target Target) Outcome {
	if err := ValidatePath(target.Path); err != nil {
		return Outcome{Target: target, Status: StatusFailed, Reason: "unsafe path: " + err.Error()}
	}

	full := filepath.Join(u.root, target.Path)
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return Outcome{Target: target, Status: StatusSkipped, Reason: "file does not exist"}
		}
		return Outcome{Target: target, Status: StatusFailed, Reason: err.Error()}
	}

	if err := u.updateByKind(full, version, target); err != nil {
		status := StatusFailed
		if _, skip := err.(*skipError); skip {
			status = StatusSkipped
		}
		return Outcome{Target: target, Status: status, Reason: err.Error()}
	}

	if u.stager != nil {
		if err := u.stager.Stage(target.Path); err != nil {
			return Outcome{Target: target, Status: StatusFailed, Reason: "staging: " + err.Error()}
		}
	}

	return Outcome{Target: target, Status: StatusUpdated}
}

// skipError marks conditions that skip a target with a warning rather than
// count as an update failure.
type skipError struct{ msg string }

func (e *skipError) Error() string { return e.msg }

func (u *Updater) updateByKind(full, version string, target Target) error {
	switch target.Kind {
	case KindJSON:
		return updateJSON(full, version)
	case KindText:
		return updateText(full, version)
	case KindSourceConstant:
		return updateSourceConstant(full, version)
	case KindCustomPattern:
		if target.Pattern == "" {
			return &skipError{msg: "custom-pattern target has an empty pattern"}
		}
		sub, err := parseSubstitution(target.Pattern, version)
		if err != nil {
			return err
		}
		return updateCustomPattern(full, sub)
	default:
		return &skipError{msg: fmt.Sprintf("unknown target kind %q", string(target.Kind))}
	}
}
