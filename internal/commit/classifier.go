package commit

import (
	"regexp"
	"strings"
)

// BreakingFooter is the footer marker that flags an incompatible change.
const BreakingFooter = "BREAKING CHANGE"

// breakingSubjectRE matches bang syntax: "type(scope)!: subject" or "type!: subject".
var breakingSubjectRE = regexp.MustCompile(`^[A-Za-z]+(\([^)]*\))?!:\s*`)

// Classifier maps commit lists to bump levels. Patterns are compiled once at
// construction and reused across all commits.
type Classifier struct {
	rules    []TypeRule
	levelRes map[BumpLevel]*regexp.Regexp
}

// NewClassifier builds a classifier from the configured rule set.
// Rules with an empty type token are ignored rather than treated as fatal.
func NewClassifier(rules []TypeRule) *Classifier {
	c := &Classifier{
		rules:    ValidRules(rules),
		levelRes: make(map[BumpLevel]*regexp.Regexp),
	}

	for _, level := range []BumpLevel{BumpMajor, BumpMinor, BumpPatch} {
		var types []string
		for _, rule := range c.rules {
			if rule.Bump == level {
				types = append(types, rule.Type)
			}
		}
		if len(types) > 0 {
			c.levelRes[level] = TypePattern(types...)
		}
	}

	return c
}

// Classify returns the bump level implied by the commit set.
// Any breaking commit forces a major bump. Otherwise the highest configured
// level with at least one matching commit wins; level priority is fixed
// (major > minor > patch) and independent of which type matched or how many
// commits matched. Unrecognized prefixes contribute nothing.
func (c *Classifier) Classify(commits []Record) BumpLevel {
	for _, rec := range commits {
		if IsBreaking(rec) {
			return BumpMajor
		}
	}

	for _, level := range []BumpLevel{BumpMajor, BumpMinor, BumpPatch} {
		re, ok := c.levelRes[level]
		if !ok {
			continue
		}
		for _, rec := range commits {
			if re.MatchString(rec.Subject) {
				return level
			}
		}
	}

	return BumpNone
}

// Rules returns the validated rule set in configured order.
func (c *Classifier) Rules() []TypeRule {
	return c.rules
}

// ValidRules filters out rules missing their required type token and drops
// later duplicates of the same token, preserving configured order for the
// remainder. Type tokens are unique within a rule set.
func ValidRules(rules []TypeRule) []TypeRule {
	seen := make(map[string]bool, len(rules))
	valid := make([]TypeRule, 0, len(rules))
	for _, rule := range rules {
		if strings.TrimSpace(rule.Type) == "" || seen[rule.Type] {
			continue
		}
		seen[rule.Type] = true
		valid = append(valid, rule)
	}
	return valid
}

// TypePattern compiles the subject pattern for a set of type tokens:
// ^(t1|t2|...)(\(scope\))?!?: with the matched prefix as the full match.
// The optional bang keeps breaking commits matching their type, so they
// list in both the breaking section and their type section.
func TypePattern(types ...string) *regexp.Regexp {
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`^(?:` + strings.Join(quoted, "|") + `)(\([^)]*\))?!?:\s*`)
}

// IsBreaking reports whether a commit is marked as an incompatible change,
// either by a BREAKING CHANGE footer anywhere in the message or by bang
// syntax on the subject line.
func IsBreaking(r Record) bool {
	if breakingSubjectRE.MatchString(r.Subject) {
		return true
	}
	for _, line := range strings.Split(r.Text(), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), BreakingFooter) {
			return true
		}
	}
	return false
}

// BreakingText returns the text to emit for a breaking commit: the footer
// content with the marker stripped, or the subject with the bang prefix
// stripped. Returns false when the commit is not breaking.
func BreakingText(r Record) (string, bool) {
	for _, line := range strings.Split(r.Text(), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, BreakingFooter) {
			continue
		}
		rest := strings.TrimPrefix(trimmed, BreakingFooter)
		rest = strings.TrimPrefix(rest, "S") // plural footer form
		rest = strings.TrimLeft(rest, ": ")
		if rest != "" {
			return rest, true
		}
		// Marker with no inline text: fall back to the subject.
		return StripTypePrefix(r.Subject), true
	}

	if loc := breakingSubjectRE.FindStringIndex(r.Subject); loc != nil {
		return r.Subject[loc[1]:], true
	}

	return "", false
}

// StripTypePrefix removes a leading "type(scope):" or "type(scope)!:" prefix
// from a subject line, returning the free-text description.
var anyPrefixRE = regexp.MustCompile(`^[A-Za-z]+(\([^)]*\))?!?:\s*`)

func StripTypePrefix(subject string) string {
	return anyPrefixRE.ReplaceAllString(subject, "")
}
