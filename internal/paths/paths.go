// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package paths centralizes where syllabus-scan keeps its configuration
// files.
package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the syllabus-scan configuration directory. The
// SYLLABUS_SCAN_CONFIG_DIR environment variable overrides the default
// ~/.syllabus-scan location.
func GetConfigDir() string {
	if dir := os.Getenv("SYLLABUS_SCAN_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".syllabus-scan"
	}
	return filepath.Join(home, ".syllabus-scan")
}

// GetConfigFile returns the path to the main config file.
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetWaiversFile returns the path to the compliance waivers file.
func GetWaiversFile() string {
	return filepath.Join(GetConfigDir(), "waivers.yaml")
}

// ResolvePath resolves a path to its absolute, cleaned form. An empty path
// resolves to itself.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return filepath.Abs(filepath.Clean(path))
}
