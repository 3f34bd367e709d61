package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raveheart1/autorel/internal/commit"
)

func testRules() []commit.TypeRule {
	return []commit.TypeRule{
		{Type: "feat", Section: "Features", Bump: commit.BumpMinor},
		{Type: "fix", Section: "Bug Fixes", Bump: commit.BumpPatch},
		{Type: "chore", Section: "Chores", Bump: commit.BumpNone, Hidden: true},
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		commits     []commit.Record
		contains    []string
		notContains []string
		exact       string
	}{
		"sections follow rule order with breaking first": {
			commits: []commit.Record{
				{Subject: "fix: off-by-one in pager"},
				{Subject: "feat: add export command"},
				{Subject: "feat(api)!: drop legacy endpoints"},
			},
			exact: "## Breaking Changes\n\n" +
				"- drop legacy endpoints\n" +
				"\n## Features\n\n" +
				"- add export command\n" +
				"- drop legacy endpoints\n" +
				"\n## Bug Fixes\n\n" +
				"- off-by-one in pager\n",
		},
		"hidden rules never render a section": {
			commits: []commit.Record{
				{Subject: "chore: bump deps"},
				{Subject: "fix: handle empty input"},
			},
			contains:    []string{"## Bug Fixes", "handle empty input"},
			notContains: []string{"Chores", "bump deps"},
		},
		"empty sections are omitted entirely": {
			commits: []commit.Record{
				{Subject: "feat: one thing"},
			},
			contains:    []string{"## Features"},
			notContains: []string{"Breaking Changes", "Bug Fixes"},
		},
		"footer text replaces subject in breaking section": {
			commits: []commit.Record{
				{Subject: "fix: rework storage", Body: "BREAKING CHANGE: on-disk layout changed"},
			},
			contains: []string{
				"## Breaking Changes\n\n- on-disk layout changed",
				"## Bug Fixes\n\n- rework storage",
			},
		},
		"unmatched commits render nothing": {
			commits: []commit.Record{
				{Subject: "wip: experiments"},
			},
			exact: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := Render(tt.commits, testRules())

			if tt.exact != "" || len(tt.contains) == 0 && len(tt.notContains) == 0 {
				assert.Equal(t, tt.exact, got)
			}
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, notWant := range tt.notContains {
				assert.NotContains(t, got, notWant)
			}
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	commits := []commit.Record{
		{Subject: "feat: a"},
		{Subject: "fix: b"},
		{Subject: "feat!: c"},
	}

	first := Render(commits, testRules())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Render(commits, testRules()))
	}
}

func TestRender_SectionTitleFallsBackToType(t *testing.T) {
	t.Parallel()

	rules := []commit.TypeRule{{Type: "feat", Bump: commit.BumpMinor}}
	got := Render([]commit.Record{{Subject: "feat: thing"}}, rules)

	assert.Contains(t, got, "## feat\n")
}

func TestRender_BreakingCommitAlsoListedInTypeSection(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rec      commit.Record
		breaking string
		typed    string
	}{
		"bang form": {
			rec:      commit.Record{Subject: "feat(api)!: drop legacy endpoints"},
			breaking: "## Breaking Changes\n\n- drop legacy endpoints\n",
			typed:    "## Features\n\n- drop legacy endpoints\n",
		},
		"footer form": {
			rec:      commit.Record{Subject: "fix: rework storage", Body: "BREAKING CHANGE: on-disk layout changed"},
			breaking: "## Breaking Changes\n\n- on-disk layout changed\n",
			typed:    "## Bug Fixes\n\n- rework storage\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := Render([]commit.Record{tt.rec}, testRules())
			assert.Contains(t, got, tt.breaking)
			assert.Contains(t, got, tt.typed)
		})
	}
}

func TestRender_BulletsPreserveCommitOrder(t *testing.T) {
	t.Parallel()

	commits := []commit.Record{
		{Subject: "fix: first"},
		{Subject: "fix: second"},
		{Subject: "fix: third"},
	}
	got := Render(commits, testRules())

	assert.Equal(t, "## Bug Fixes\n\n- first\n- second\n- third\n", got)
}
