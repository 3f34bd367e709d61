package update

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidatePath rejects target paths that could escape the repository root:
// absolute paths and paths containing a parent-traversal segment anywhere.
// The raw path is inspected segment by segment without cleaning first, so
// "a/../../b" is rejected even though it could lexically resolve.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") || strings.HasPrefix(path, "\\") {
		return fmt.Errorf("absolute path %q is not allowed", path)
	}

	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return fmt.Errorf("path %q contains a parent-directory segment", path)
		}
	}

	return nil
}
