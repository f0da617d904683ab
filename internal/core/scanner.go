// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"os"
	"strings"

	"syllabus-scan/internal/compliance"
	"syllabus-scan/internal/config"
	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/parallel"
	"syllabus-scan/internal/preprocessors"
	"syllabus-scan/internal/textnorm"
	"syllabus-scan/internal/waivers"
)

// ScanConfig holds configuration for scanning operations.
type ScanConfig struct {
	FilePath string
	Fields   []string
	Debug    bool
	Verbose  bool
	Workers  int
	Config   *config.Config
	Profile  *config.Profile
	// WaiverManager, when non-nil, excuses waived regime fields in the
	// compliance reports.
	WaiverManager *waivers.Manager
	// Registry routes files to text extractors. Nil means the default
	// preprocessor set.
	Registry *preprocessors.Registry
}

// DocumentResult holds one document's detector results and compliance
// reports.
type DocumentResult struct {
	FilePath   string                       `json:"file_path,omitempty"`
	Fields     map[string]detector.Result   `json:"fields"`
	Compliance map[string]compliance.Report `json:"compliance"`
}

// ScanText runs every enabled detector over the document text and collects
// results keyed by field name. Detectors recover their own faults, so a
// malfunctioning field shows up as not-found rather than aborting the scan.
func ScanText(text string, detectors map[string]detector.FieldDetector) map[string]detector.Result {
	normalized := textnorm.Normalize(text)

	results := make(map[string]detector.Result, len(detectors))
	for field, d := range detectors {
		results[field] = d.Detect(normalized)
	}
	return results
}

// ScanFile performs the core scanning logic shared by the CLI and the web
// server: extract text, run the detector battery, aggregate compliance.
func ScanFile(scanConfig ScanConfig) (*DocumentResult, error) {
	observer := buildObserver(scanConfig)

	registry := scanConfig.Registry
	if registry == nil {
		registry = preprocessors.NewRegistry()
		preprocessors.RegisterDefaults(registry)
	}
	registry.SetObserver(observer)

	if !registry.CanProcess(scanConfig.FilePath) {
		return nil, fmt.Errorf("file type not supported for processing: %s", scanConfig.FilePath)
	}

	text, err := registry.ExtractText(scanConfig.FilePath)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	enabledFields := ParseFieldsToRun(scanConfig.Fields)
	detectors := BuildDetectorSet(enabledFields, observer)
	results := ScanText(text, detectors)

	regimes := compliance.DefaultRegimes
	if scanConfig.Config != nil {
		regimes = scanConfig.Config.GetRegimes()
	}

	var checker compliance.WaiverChecker
	if scanConfig.WaiverManager != nil {
		checker = scanConfig.WaiverManager
	}

	return &DocumentResult{
		FilePath:   scanConfig.FilePath,
		Fields:     results,
		Compliance: compliance.Aggregate(results, regimes, checker),
	}, nil
}

// ScanFiles scans multiple files through the worker pool. Per-file errors
// are carried in the parallel results; one unreadable file never stops the
// batch.
func ScanFiles(filePaths []string, scanConfig ScanConfig, progress parallel.ProgressFunc) ([]*parallel.Result, parallel.Stats) {
	observer := buildObserver(scanConfig)

	workers := scanConfig.Workers
	if workers < 1 {
		workers = 4
	}

	process := func(filePath string) (interface{}, error) {
		perFile := scanConfig
		perFile.FilePath = filePath
		return ScanFile(perFile)
	}

	return parallel.ProcessFiles(filePaths, workers, process, observer, progress)
}

func buildObserver(scanConfig ScanConfig) *observability.StandardObserver {
	level := observability.ObservabilityMetrics
	if scanConfig.Debug {
		level = observability.ObservabilityDebug
	}
	return observability.NewStandardObserver(level, os.Stderr)
}

// ParseFieldsToRun converts a slice of field names into an enabled-fields
// map. An empty slice or ["all"] enables every field.
func ParseFieldsToRun(fields []string) map[string]bool {
	result := make(map[string]bool)
	for _, name := range AllFieldNames() {
		result[name] = false
	}

	if len(fields) == 0 || (len(fields) == 1 && fields[0] == "all") {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, field := range fields {
		if fieldStr := strings.ToLower(strings.TrimSpace(field)); fieldStr != "" {
			if _, exists := result[fieldStr]; exists {
				result[fieldStr] = true
			}
		}
	}

	return result
}

// ParseConfidenceLevels converts a comma-separated confidence level string into a map.
// "all" or empty string enables every level.
func ParseConfidenceLevels(levels string) map[string]bool {
	result := map[string]bool{
		"high":   false,
		"medium": false,
		"low":    false,
	}

	if levels == "all" || levels == "" {
		result["high"] = true
		result["medium"] = true
		result["low"] = true
		return result
	}

	for _, level := range strings.Split(levels, ",") {
		switch strings.ToLower(strings.TrimSpace(level)) {
		case "high", "medium", "low":
			result[strings.ToLower(strings.TrimSpace(level))] = true
		}
	}

	return result
}
