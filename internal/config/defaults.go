package config

import "github.com/raveheart1/autorel/internal/commit"

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Autorel Configuration
# See 'autorel config -h' for commands

# Tagging
tag_prefix: "v"                       # Prefix for release tags (version stays bare M.N.P)

# Changelog
changelog:
  enable: true                        # Render and prepend release notes
  output: CHANGELOG.md                # Changelog file path (repo-relative)

# Hosted release publishing
publish:
  enable: false                       # Publish a release after tagging
  repository: ""                      # "owner/name" slug (required when enabled)

# Commit type rules (omit to use the built-in conventional-commit table).
# Order here is changelog section order.
# commit_types:
#   - type: feat
#     section: Features
#     bump: minor
#   - type: fix
#     section: Bug Fixes
#     bump: patch
#   - type: chore
#     section: Chores
#     bump: none
#     hidden: true

# Files to update with the new version, in order.
# commit_types and targets are read once per run and immutable afterwards.
# targets:
#   - path: package.json
#     type: json
#   - path: VERSION
#     type: text
#   - path: src/mypkg/__init__.py
#     type: source-constant
#   - path: README.md
#     type: custom-pattern
#     pattern: "s/version-[0-9.]+/version-{{VERSION}}/"
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// tag_prefix: prepended to the computed version when creating the
		// release tag. The computed version itself never carries a prefix.
		"tag_prefix": "v",
		"changelog": map[string]interface{}{
			"enable": true,
			"output": "CHANGELOG.md",
		},
		// publish: hosted-release publishing is opt-in.
		"publish": map[string]interface{}{
			"enable": false,
		},
	}
}

// DefaultRules is the built-in conventional-commit rule table used when no
// commit_types are configured. feat and fix drive releases; the remaining
// types classify as no bump and stay out of rendered notes.
func DefaultRules() []commit.TypeRule {
	return []commit.TypeRule{
		{Type: "feat", Section: "Features", Bump: commit.BumpMinor},
		{Type: "fix", Section: "Bug Fixes", Bump: commit.BumpPatch},
		{Type: "perf", Section: "Performance Improvements", Bump: commit.BumpPatch},
		{Type: "revert", Section: "Reverts", Bump: commit.BumpPatch},
		{Type: "docs", Section: "Documentation", Bump: commit.BumpNone, Hidden: true},
		{Type: "style", Section: "Styles", Bump: commit.BumpNone, Hidden: true},
		{Type: "chore", Section: "Miscellaneous Chores", Bump: commit.BumpNone, Hidden: true},
		{Type: "refactor", Section: "Code Refactoring", Bump: commit.BumpNone, Hidden: true},
		{Type: "test", Section: "Tests", Bump: commit.BumpNone, Hidden: true},
		{Type: "build", Section: "Build System", Bump: commit.BumpNone, Hidden: true},
		{Type: "ci", Section: "Continuous Integration", Bump: commit.BumpNone, Hidden: true},
	}
}
