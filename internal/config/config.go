// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"syllabus-scan/internal/compliance"
	"syllabus-scan/internal/paths"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format           string `yaml:"format"`
		ConfidenceLevels string `yaml:"confidence_levels"`
		Fields           string `yaml:"fields"`
		Verbose          bool   `yaml:"verbose"`
		Debug            bool   `yaml:"debug"`
		NoColor          bool   `yaml:"no_color"`
		Recursive        bool   `yaml:"recursive"`
		Workers          int    `yaml:"workers"`
	} `yaml:"defaults"`

	// Compliance regimes. Empty means the built-in NECHE and UNH-Minimal
	// regimes apply.
	Regimes []compliance.Regime `yaml:"regimes"`

	// Waivers file override. Empty means the standard location.
	WaiversFile string `yaml:"waivers_file"`

	// Profiles for different scanning scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a scanning profile with specific settings
type Profile struct {
	Format           string `yaml:"format"`
	ConfidenceLevels string `yaml:"confidence_levels"`
	Fields           string `yaml:"fields"`
	Verbose          bool   `yaml:"verbose"`
	Debug            bool   `yaml:"debug"`
	NoColor          bool   `yaml:"no_color"`
	Recursive        bool   `yaml:"recursive"`
	Workers          int    `yaml:"workers"`
	Description      string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.ConfidenceLevels = "all"
	config.Defaults.Fields = "all"
	config.Defaults.Verbose = false
	config.Defaults.Debug = false
	config.Defaults.NoColor = false
	config.Defaults.Recursive = false
	config.Defaults.Workers = 4

	// Add default accreditation profile: machine-readable output, every
	// field, suitable for bulk compliance runs.
	config.Profiles["accreditation"] = Profile{
		Format:           "json",
		ConfidenceLevels: "all",
		Fields:           "all",
		NoColor:          true,
		Recursive:        true,
		Workers:          4,
		Description:      "Bulk accreditation review with JSON output and recursive directory scans",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// YAML unmarshaling zeroes absent numeric fields; restore the worker
	// default when the file never set it.
	if !containsField(data, "defaults", "workers") {
		config.Defaults.Workers = 4
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("syllabus-scan.yaml") {
		return "syllabus-scan.yaml"
	}
	if fileExists("syllabus-scan.yml") {
		return "syllabus-scan.yml"
	}

	// Check for .syllabus-scan.yaml in current directory (project-specific config)
	if fileExists(".syllabus-scan.yaml") {
		return ".syllabus-scan.yaml"
	}
	if fileExists(".syllabus-scan.yml") {
		return ".syllabus-scan.yml"
	}

	// Check standard location
	standardConfig := paths.GetConfigFile()
	if fileExists(standardConfig) {
		return standardConfig
	}

	// Check XDG config directory
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "syllabus-scan", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	xdgConfigFile = filepath.Join(xdgConfig, "syllabus-scan", "config.yml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// GetRegimes returns the configured compliance regimes, falling back to the
// built-in defaults when the config file defines none.
func (c *Config) GetRegimes() []compliance.Regime {
	if len(c.Regimes) > 0 {
		return c.Regimes
	}
	return compliance.DefaultRegimes
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(data, &yamlData)
	if err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			// Last key - check if it exists
			_, exists := current[key]
			return exists
		}
		// Intermediate key - navigate deeper
		if next, ok := current[key].(map[string]interface{}); ok {
			current = next
		} else {
			return false
		}
	}
	return false
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if config.Defaults.Workers < 0 {
		return fmt.Errorf("defaults.workers cannot be negative")
	}

	for _, regime := range config.Regimes {
		if regime.Name == "" {
			return fmt.Errorf("regime with empty name")
		}
		if len(regime.Required) == 0 {
			return fmt.Errorf("regime %q has no required fields", regime.Name)
		}
	}

	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration.
// This is the shared helper used by both the CLI and the web server.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults — callers should not crash on a missing/bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}
