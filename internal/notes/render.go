// Package notes renders release notes from classified commits and persists
// them by prepending a release block to the changelog file.
package notes

import (
	"regexp"
	"strings"

	"github.com/raveheart1/autorel/internal/commit"
)

// BreakingSection is the title of the section listing incompatible changes.
// It always renders first when any breaking commits exist.
const BreakingSection = "Breaking Changes"

// Render produces the markdown body for a release. Section order is the
// breaking-change section (if any), then one section per non-hidden rule in
// configured order that has at least one matching commit. A commit that is
// both breaking and of a listed type appears in both places; that dual
// listing is intentional and not deduplicated. Bullets preserve commit
// input order. Output is deterministic for a given input.
func Render(commits []commit.Record, rules []commit.TypeRule) string {
	var b strings.Builder

	renderSection(&b, BreakingSection, breakingBullets(commits))

	for _, rule := range commit.ValidRules(rules) {
		if rule.Hidden {
			continue
		}
		renderSection(&b, sectionTitle(rule), ruleBullets(commits, rule))
	}

	return b.String()
}

// renderSection writes one titled bullet list. Sections with no bullets
// produce no output at all.
func renderSection(b *strings.Builder, title string, bullets []string) {
	if len(bullets) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString("## " + title + "\n\n")
	for _, bullet := range bullets {
		b.WriteString("- " + bullet + "\n")
	}
}

// breakingBullets collects breaking-change text in commit order, with the
// footer marker or bang prefix stripped.
func breakingBullets(commits []commit.Record) []string {
	var bullets []string
	for _, rec := range commits {
		if text, ok := commit.BreakingText(rec); ok {
			bullets = append(bullets, text)
		}
	}
	return bullets
}

// ruleBullets collects subjects matching a rule's type, prefix stripped,
// in commit order.
func ruleBullets(commits []commit.Record, rule commit.TypeRule) []string {
	re := commit.TypePattern(rule.Type)
	var bullets []string
	for _, rec := range commits {
		if stripped, ok := stripPrefix(re, rec.Subject); ok {
			bullets = append(bullets, stripped)
		}
	}
	return bullets
}

// sectionTitle falls back to the type token when no section title is set.
func sectionTitle(rule commit.TypeRule) string {
	if rule.Section != "" {
		return rule.Section
	}
	return rule.Type
}

func stripPrefix(re *regexp.Regexp, subject string) (string, bool) {
	loc := re.FindStringIndex(subject)
	if loc == nil {
		return "", false
	}
	return subject[loc[1]:], true
}
