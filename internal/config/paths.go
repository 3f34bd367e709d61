package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/autorel/config.yml
// - macOS: ~/Library/Application Support/autorel/config.yml
// - Windows: %APPDATA%\autorel\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autorel", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .autorel/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".autorel", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".autorel"
}

// ProjectJSONConfigPath returns the path to the JSON form of the project
// config (.autorel/config.json). YAML takes priority when both exist.
func ProjectJSONConfigPath() string {
	return filepath.Join(".autorel", "config.json")
}
