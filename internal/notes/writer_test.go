package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_CreatesFileWhenMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	date := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	err := Write(path, "1.2.0", date, "## Features\n\n- add export command\n")
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# 1.2.0 (2026-03-14)\n\n## Features\n\n- add export command\n\n", string(got))
}

func TestWrite_PrependsToExistingContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	old := "# 1.1.0 (2026-01-02)\n\n## Bug Fixes\n\n- old fix\n\n"
	require.NoError(t, os.WriteFile(path, []byte(old), 0o644))

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	err := Write(path, "1.2.0", date, "## Features\n\n- new thing\n")
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(got)
	assert.True(t, strings.HasPrefix(content, "# 1.2.0 (2026-03-14)\n\n## Features\n\n- new thing\n\n"))
	assert.True(t, strings.HasSuffix(content, old), "existing content must follow the new block verbatim")
}

func TestWrite_CreatesParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docs", "CHANGELOG.md")
	err := Write(path, "0.1.0", time.Now(), "## Features\n\n- initial\n")
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestWrite_LeavesNoTempFileBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, Write(path, "0.1.0", time.Now(), "body\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CHANGELOG.md", entries[0].Name())
}

func TestReleaseBlock(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)

	tests := map[string]struct {
		version string
		body    string
		want    string
	}{
		"trailing newlines collapse to one blank line": {
			version: "2.0.0",
			body:    "## Breaking Changes\n\n- dropped v1\n\n\n",
			want:    "# 2.0.0 (2026-08-31)\n\n## Breaking Changes\n\n- dropped v1\n\n",
		},
		"body without trailing newline": {
			version: "1.0.1",
			body:    "## Bug Fixes\n\n- patched",
			want:    "# 1.0.1 (2026-08-31)\n\n## Bug Fixes\n\n- patched\n\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ReleaseBlock(tt.version, date, tt.body))
		})
	}
}
