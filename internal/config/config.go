// Package config provides hierarchical configuration management for autorel
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.autorel/config.yml or .autorel/config.json) > user config
// (~/.config/autorel/config.yml) > defaults, and is immutable after load.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
// An empty projectConfigPath means the default .autorel/config.yml (with
// .autorel/config.json as the JSON alternative).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	userPath, err := UserConfigPath()
	if err != nil {
		return nil // no resolvable user config dir, defaults apply
	}
	if !fileExists(userPath) {
		return nil
	}
	return loadYAMLConfig(k, userPath, "user")
}

// loadProjectConfig loads project-level config. A custom path override is
// parsed by extension; otherwise YAML is preferred over JSON.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		if strings.HasSuffix(customPath, ".json") {
			return loadJSONConfig(k, customPath, "project")
		}
		return loadYAMLConfig(k, customPath, "project")
	}

	yamlPath := ProjectConfigPath()
	jsonPath := ProjectJSONConfigPath()

	switch {
	case fileExists(yamlPath):
		return loadYAMLConfig(k, yamlPath, "project")
	case fileExists(jsonPath):
		return loadJSONConfig(k, jsonPath, "project")
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadJSONConfig loads a JSON config file.
func loadJSONConfig(k *koanf.Koanf, path, configType string) error {
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("AUTOREL_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: AUTOREL_TAG_PREFIX -> tag_prefix.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "AUTOREL_"))
}
