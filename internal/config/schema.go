package config

import (
	"github.com/raveheart1/autorel/internal/commit"
	"github.com/raveheart1/autorel/internal/update"
)

// CommitType configures one conventional-commit type rule.
// Entries missing their type token, or with an unrecognized bump value, are
// ignored at conversion time rather than failing the run.
type CommitType struct {
	// Type is the commit prefix token (e.g., "feat", "fix").
	Type string `koanf:"type"`
	// Section is the changelog section title for this type.
	Section string `koanf:"section"`
	// Bump is the version increment this type implies: major | minor | patch | none.
	Bump string `koanf:"bump"`
	// Hidden excludes the type from rendered release notes while keeping it
	// valid for classification.
	Hidden bool `koanf:"hidden"`
}

// FileTarget configures one file the new version is written into.
type FileTarget struct {
	// Path is the repo-relative file path.
	Path string `koanf:"path"`
	// Type is the update strategy: json | text | source-constant | custom-pattern.
	// Unknown values are skipped with a warning at update time, not rejected here.
	Type string `koanf:"type"`
	// Pattern is the find/replace template for custom-pattern targets, with a
	// {{VERSION}} placeholder in the replacement.
	Pattern string `koanf:"pattern"`
}

// ChangelogConfig controls changelog persistence.
type ChangelogConfig struct {
	Enable bool   `koanf:"enable"`
	Output string `koanf:"output" validate:"required"`
}

// PublishConfig controls hosted-release publishing.
type PublishConfig struct {
	// Enable turns on publishing after a successful tag.
	Enable bool `koanf:"enable"`
	// Repository is the "owner/name" slug the release is published to.
	Repository string `koanf:"repository"`
}

// Configuration is the immutable per-run configuration. It is loaded once
// and read-only for the remainder of the run; components receive it as an
// explicit value rather than through process-wide state.
type Configuration struct {
	// CommitTypes is the ordered rule set. Order determines changelog
	// section order. Empty means the built-in default table.
	CommitTypes []CommitType `koanf:"commit_types"`

	// Targets is the ordered list of files to update with the new version.
	Targets []FileTarget `koanf:"targets"`

	// Changelog controls rendering and persistence of release notes.
	Changelog ChangelogConfig `koanf:"changelog"`

	// TagPrefix is prepended to the computed version when tagging (the
	// version itself stays bare "M.N.P"). Default "v".
	TagPrefix string `koanf:"tag_prefix"`

	// Publish controls hosted-release publishing.
	Publish PublishConfig `koanf:"publish"`
}

// Rules converts the configured commit types into classifier rules,
// preserving order and dropping entries missing required fields. When no
// commit types are configured the default table applies.
func (c *Configuration) Rules() []commit.TypeRule {
	if len(c.CommitTypes) == 0 {
		return DefaultRules()
	}

	rules := make([]commit.TypeRule, 0, len(c.CommitTypes))
	for _, ct := range c.CommitTypes {
		if ct.Type == "" {
			continue
		}
		bump, ok := commit.ParseBump(ct.Bump)
		if !ok {
			continue
		}
		rules = append(rules, commit.TypeRule{
			Type:    ct.Type,
			Section: ct.Section,
			Bump:    bump,
			Hidden:  ct.Hidden,
		})
	}
	return rules
}

// UpdateTargets converts the configured targets, preserving order. Unknown
// type strings pass through so the updater can report them per target.
func (c *Configuration) UpdateTargets() []update.Target {
	targets := make([]update.Target, 0, len(c.Targets))
	for _, ft := range c.Targets {
		targets = append(targets, update.Target{
			Path:    ft.Path,
			Kind:    update.Kind(ft.Type),
			Pattern: ft.Pattern,
		})
	}
	return targets
}
