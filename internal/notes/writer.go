package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Write prepends a release block to the changelog at path, creating the file
// if it does not exist. The block is the "# <version> (<date>)" header, a
// blank line, the rendered body, and a blank line; prior content follows
// verbatim. The file is replaced atomically (temp file + rename) so a crash
// never leaves a half-written changelog.
func Write(path, version string, date time.Time, body string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading changelog: %w", err)
	}

	block := ReleaseBlock(version, date, body)
	content := append([]byte(block), existing...)

	if err := atomicWrite(path, content); err != nil {
		return fmt.Errorf("writing changelog: %w", err)
	}
	return nil
}

// ReleaseBlock formats the block prepended for one release.
func ReleaseBlock(version string, date time.Time, body string) string {
	header := fmt.Sprintf("# %s (%s)", version, date.Format("2006-01-02"))
	return header + "\n\n" + strings.TrimRight(body, "\n") + "\n\n"
}

// atomicWrite writes data to path using the temp-file-then-rename pattern.
// Ensures no partial writes occur on crash.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
