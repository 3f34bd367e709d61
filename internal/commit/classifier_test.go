package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() []TypeRule {
	return []TypeRule{
		{Type: "feat", Section: "Features", Bump: BumpMinor},
		{Type: "fix", Section: "Bug Fixes", Bump: BumpPatch},
		{Type: "chore", Section: "Chores", Bump: BumpNone, Hidden: true},
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		commits []Record
		want    BumpLevel
	}{
		"bang syntax forces major regardless of other types": {
			commits: []Record{
				{Subject: "fix: null deref"},
				{Subject: "feat(api)!: drop v1 endpoints"},
				{Subject: "chore: tidy"},
			},
			want: BumpMajor,
		},
		"breaking footer forces major": {
			commits: []Record{
				{Subject: "fix: rework storage", Body: "BREAKING CHANGE: on-disk layout changed"},
			},
			want: BumpMajor,
		},
		"feature wins over fix": {
			commits: []Record{
				{Subject: "fix: typo"},
				{Subject: "feat: add export command"},
			},
			want: BumpMinor,
		},
		"fix alone is a patch": {
			commits: []Record{
				{Subject: "fix(parser): handle empty input"},
			},
			want: BumpPatch,
		},
		"hidden type still classifies by its bump": {
			commits: []Record{
				{Subject: "chore: bump deps"},
			},
			want: BumpNone,
		},
		"unrecognized prefixes contribute nothing": {
			commits: []Record{
				{Subject: "wip: experiments"},
				{Subject: "random commit message"},
			},
			want: BumpNone,
		},
		"empty commit list": {
			commits: nil,
			want:    BumpNone,
		},
		"scope does not affect matching": {
			commits: []Record{
				{Subject: "feat(core/engine): new pipeline"},
			},
			want: BumpMinor,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := NewClassifier(testRules())
			assert.Equal(t, tt.want, c.Classify(tt.commits))
		})
	}
}

func TestClassify_LevelPriorityIsFixed(t *testing.T) {
	t.Parallel()

	// Many patch commits never outweigh a single minor commit.
	commits := []Record{
		{Subject: "fix: one"},
		{Subject: "fix: two"},
		{Subject: "fix: three"},
		{Subject: "feat: the only feature"},
	}
	c := NewClassifier(testRules())
	assert.Equal(t, BumpMinor, c.Classify(commits))
}

func TestNewClassifier_IgnoresRulesMissingType(t *testing.T) {
	t.Parallel()

	rules := []TypeRule{
		{Type: "", Section: "Broken", Bump: BumpMajor},
		{Type: "fix", Section: "Bug Fixes", Bump: BumpPatch},
	}
	c := NewClassifier(rules)

	assert.Len(t, c.Rules(), 1)
	assert.Equal(t, BumpPatch, c.Classify([]Record{{Subject: "fix: it"}}))
}

func TestValidRules_DropsDuplicateTypes(t *testing.T) {
	t.Parallel()

	rules := ValidRules([]TypeRule{
		{Type: "feat", Section: "Features", Bump: BumpMinor},
		{Type: "feat", Section: "Also Features", Bump: BumpMajor},
		{Type: "fix", Section: "Bug Fixes", Bump: BumpPatch},
	})

	require.Len(t, rules, 2)
	assert.Equal(t, "Features", rules[0].Section, "first occurrence wins")
	assert.Equal(t, "fix", rules[1].Type)
}

func TestTypePattern(t *testing.T) {
	t.Parallel()

	re := TypePattern("feat", "fix")

	tests := map[string]struct {
		subject string
		want    bool
	}{
		"plain type":           {"feat: add thing", true},
		"scoped type":          {"fix(parser): handle empty input", true},
		"bang form":            {"feat!: drop legacy endpoints", true},
		"scoped bang form":     {"feat(api)!: drop legacy endpoints", true},
		"other type":           {"chore: tidy", false},
		"type not at start":    {"revert feat: add thing", false},
		"bang without a colon": {"feat! add thing", false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, re.MatchString(tt.subject))
		})
	}
}

func TestIsBreaking(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rec  Record
		want bool
	}{
		"bang with scope":        {Record{Subject: "feat(api)!: remove endpoint"}, true},
		"bang without scope":     {Record{Subject: "refactor!: new config format"}, true},
		"footer in body":         {Record{Subject: "fix: storage", Body: "BREAKING CHANGE: layout"}, true},
		"plural footer":          {Record{Subject: "fix: storage", Body: "BREAKING CHANGES: layout"}, true},
		"plain feature":          {Record{Subject: "feat: add thing"}, false},
		"bang not on the prefix": {Record{Subject: "feat: add thing!"}, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsBreaking(tt.rec))
		})
	}
}

func TestBreakingText(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rec    Record
		want   string
		wantOK bool
	}{
		"footer text wins": {
			rec:    Record{Subject: "feat: rework", Body: "BREAKING CHANGE: config keys renamed"},
			want:   "config keys renamed",
			wantOK: true,
		},
		"bang prefix stripped": {
			rec:    Record{Subject: "feat(api)!: drop v1 endpoints"},
			want:   "drop v1 endpoints",
			wantOK: true,
		},
		"footer with no text falls back to subject": {
			rec:    Record{Subject: "feat: rework storage", Body: "BREAKING CHANGE"},
			want:   "rework storage",
			wantOK: true,
		},
		"not breaking": {
			rec:    Record{Subject: "feat: add thing"},
			wantOK: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := BreakingText(tt.rec)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBump(t *testing.T) {
	t.Parallel()

	for token, want := range map[string]BumpLevel{
		"major": BumpMajor,
		"minor": BumpMinor,
		"patch": BumpPatch,
		"none":  BumpNone,
		"MAJOR": BumpMajor,
	} {
		got, ok := ParseBump(token)
		assert.True(t, ok, token)
		assert.Equal(t, want, got, token)
	}

	_, ok := ParseBump("gigantic")
	assert.False(t, ok)
}
