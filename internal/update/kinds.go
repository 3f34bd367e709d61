package update

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// VersionPlaceholder is the token custom-pattern templates substitute with
// the new version (same placeholder convention as agent command templates).
const VersionPlaceholder = "{{VERSION}}"

// sourceConstantRE matches a line assigning a recognized version constant,
// capturing everything up to the opening quote and the quote character so the
// rewrite preserves indentation and quote style.
var sourceConstantRE = regexp.MustCompile(`^(\s*__version__\s*=\s*)(['"])[^'"]*(['"])(\s*)$`)

// updateJSON replaces the top-level "version" field, preserving all other
// fields, and writes the document atomically.
func updateJSON(path, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading JSON document: %w", err)
	}

	doc := make(map[string]any)
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing JSON document: %w", err)
	}
	doc["version"] = version

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing JSON document: %w", err)
	}
	out = append(out, '\n')

	return atomicWrite(path, out)
}

// updateText overwrites the file with the bare version string and a newline.
func updateText(path, version string) error {
	if err := os.WriteFile(path, []byte(version+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing version file: %w", err)
	}
	return nil
}

// updateSourceConstant rewrites the single line assigning the version
// constant, preserving quote style, and leaves the rest of the file intact.
func updateSourceConstant(path, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	replaced := false
	for i, line := range lines {
		m := sourceConstantRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lines[i] = m[1] + m[2] + version + m[3] + m[4]
		replaced = true
		break
	}
	if !replaced {
		return fmt.Errorf("no version constant assignment found")
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("writing source file: %w", err)
	}
	return nil
}

// substitution is a parsed custom-pattern template of form
// s<delim>find<delim>replace<delim>flags.
type substitution struct {
	find    *regexp.Regexp
	replace string
}

// parseSubstitution validates and compiles a custom-pattern template.
// Templates requesting an execute ("e") or write-to-external-file ("w" / "W")
// modifier are rejected outright: both would let a version bump run commands
// or write outside the target file.
func parseSubstitution(pattern, version string) (*substitution, error) {
	if len(pattern) < 2 || pattern[0] != 's' {
		return nil, fmt.Errorf("pattern must be a substitution of form s/find/replace/")
	}
	delim := string(pattern[1])
	parts := strings.Split(pattern[2:], delim)
	if len(parts) < 2 {
		return nil, fmt.Errorf("pattern is missing its replacement part")
	}

	find, replace := parts[0], parts[1]
	flags := ""
	if len(parts) > 2 {
		flags = parts[2]
	}

	for _, flag := range flags {
		switch flag {
		case 'e':
			return nil, &SecurityError{
				Check:   "pattern safety",
				Message: "pattern requests the unsafe execute modifier 'e'",
			}
		case 'w', 'W':
			return nil, &SecurityError{
				Check:   "pattern safety",
				Message: fmt.Sprintf("pattern requests the unsafe write-to-file modifier %q", string(flag)),
			}
		}
	}

	if !strings.Contains(replace, VersionPlaceholder) {
		return nil, fmt.Errorf("pattern replacement is missing the %s placeholder", VersionPlaceholder)
	}

	re, err := regexp.Compile(find)
	if err != nil {
		return nil, fmt.Errorf("pattern find expression is invalid: %w", err)
	}

	// The version already passed the global format pre-check, so a literal
	// substitution cannot smuggle replacement metacharacters.
	replaced := strings.ReplaceAll(replace, VersionPlaceholder, version)

	return &substitution{find: re, replace: replaced}, nil
}

// updateCustomPattern applies the compiled substitution as one global
// in-place text substitution.
func updateCustomPattern(path string, sub *substitution) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading target file: %w", err)
	}

	out := sub.find.ReplaceAllString(string(data), sub.replace)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing target file: %w", err)
	}
	return nil
}

// atomicWrite writes data using the temp-file-then-rename pattern.
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
