// Package update applies a new version string to configured project files.
// Every target passes path-safety validation before it is touched, and the
// version itself is format-checked once before any target is processed; both
// gates exist to keep user-supplied patterns and computed versions from
// enabling path traversal or content injection.
package update

// Kind selects the per-target update strategy.
type Kind string

const (
	// KindJSON replaces the top-level "version" field of a JSON document,
	// preserving all other fields.
	KindJSON Kind = "json"
	// KindText overwrites the whole file with the bare version string.
	KindText Kind = "text"
	// KindSourceConstant rewrites the line assigning a recognized version
	// constant, preserving quote style.
	KindSourceConstant Kind = "source-constant"
	// KindCustomPattern applies a caller-supplied find/replace template with
	// a {{VERSION}} placeholder.
	KindCustomPattern Kind = "custom-pattern"
)

// Target is one file the new version is written into. Path is repo-relative
// and must resolve strictly within the repository root.
type Target struct {
	Path    string
	Kind    Kind
	Pattern string
}

// Status classifies the outcome of one target.
type Status string

const (
	StatusUpdated Status = "updated"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome reports what happened to one target. Reason is always set for
// skipped and failed targets and names the specific check that rejected the
// target, never a generic failure message.
type Outcome struct {
	Target Target
	Status Status
	Reason string
}

// Updated reports whether the target's file content was changed.
func (o Outcome) Updated() bool {
	return o.Status == StatusUpdated
}
