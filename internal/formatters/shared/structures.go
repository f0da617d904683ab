// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"sort"

	"syllabus-scan/internal/compliance"
	"syllabus-scan/internal/core"
	"syllabus-scan/internal/formatters"
)

// Response represents the top-level response structure for JSON/YAML output
type Response struct {
	Documents []DocumentReport `json:"documents" yaml:"documents"`
}

// DocumentReport represents one scanned document in JSON/YAML format
type DocumentReport struct {
	File       string              `json:"file,omitempty" yaml:"file,omitempty"`
	Fields     []FieldEntry        `json:"fields" yaml:"fields"`
	Compliance []compliance.Report `json:"compliance" yaml:"compliance"`
}

// FieldEntry represents a single field result in JSON/YAML format
type FieldEntry struct {
	Field           string            `json:"field" yaml:"field"`
	Found           bool              `json:"found" yaml:"found"`
	Content         string            `json:"content,omitempty" yaml:"content,omitempty"`
	Confidence      float64           `json:"confidence" yaml:"confidence"`
	ConfidenceLevel string            `json:"confidence_level" yaml:"confidence_level"`
	Line            int               `json:"line,omitempty" yaml:"line,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// GetConfidenceLevel returns the confidence level as a string
func GetConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 90:
		return "HIGH"
	case confidence >= 60:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// IncludeByConfidence reports whether a found field passes the confidence
// level filter. Not-found fields always pass: compliance readers need the
// misses.
func IncludeByConfidence(entry FieldEntry, options formatters.FormatterOptions) bool {
	if !entry.Found || options.ConfidenceLevel == nil {
		return true
	}
	switch {
	case entry.Confidence >= 90:
		return options.ConfidenceLevel["high"]
	case entry.Confidence >= 60:
		return options.ConfidenceLevel["medium"]
	default:
		return options.ConfidenceLevel["low"]
	}
}

// ConvertResults converts scanned documents to the shared output structure,
// with fields sorted by name and compliance reports by regime for stable
// output.
func ConvertResults(results []*core.DocumentResult, options formatters.FormatterOptions) Response {
	response := Response{Documents: make([]DocumentReport, 0, len(results))}

	for _, result := range results {
		if result == nil {
			continue
		}
		report := DocumentReport{File: result.FilePath}

		fieldNames := make([]string, 0, len(result.Fields))
		for name := range result.Fields {
			fieldNames = append(fieldNames, name)
		}
		sort.Strings(fieldNames)

		for _, name := range fieldNames {
			res := result.Fields[name]
			entry := FieldEntry{
				Field:           res.Field,
				Found:           res.Found,
				Content:         res.Content,
				Confidence:      res.Confidence,
				ConfidenceLevel: GetConfidenceLevel(res.Confidence),
				Line:            res.Line,
			}
			if options.Verbose {
				entry.Metadata = res.Metadata
			}
			if IncludeByConfidence(entry, options) {
				report.Fields = append(report.Fields, entry)
			}
		}

		regimeNames := make([]string, 0, len(result.Compliance))
		for name := range result.Compliance {
			regimeNames = append(regimeNames, name)
		}
		sort.Strings(regimeNames)
		for _, name := range regimeNames {
			report.Compliance = append(report.Compliance, result.Compliance[name])
		}

		response.Documents = append(response.Documents, report)
	}

	return response
}
