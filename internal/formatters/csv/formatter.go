// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/json"
	"fmt"
	"strings"

	"syllabus-scan/internal/compliance"
	"syllabus-scan/internal/core"
	"syllabus-scan/internal/formatters"
	"syllabus-scan/internal/formatters/shared"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(results []*core.DocumentResult, options formatters.FormatterOptions) (string, error) {
	response := shared.ConvertResults(results, options)

	headers := []string{"Filename", "Field", "Found", "Confidence Level", "Confidence %", "Line Number", "Content"}
	if options.Verbose {
		headers = append(headers, "Metadata")
	}

	// Field rows first, then one compliance row per regime
	csvRows := []string{strings.Join(headers, ",")}

	for _, document := range response.Documents {
		for _, entry := range document.Fields {
			csvRows = append(csvRows, f.createFieldRow(document.File, entry, options))
		}
		for _, report := range document.Compliance {
			csvRows = append(csvRows, f.createComplianceRow(document.File, report))
		}
	}

	return strings.Join(csvRows, "\n"), nil
}

// createFieldRow creates a CSV row for one field result
func (f *Formatter) createFieldRow(filename string, entry shared.FieldEntry, options formatters.FormatterOptions) string {
	row := []string{
		f.escapeCSVField(filename),
		f.escapeCSVField(entry.Field),
		fmt.Sprintf("%t", entry.Found),
		f.escapeCSVField(entry.ConfidenceLevel),
		fmt.Sprintf("%.1f", entry.Confidence),
		fmt.Sprintf("%d", entry.Line),
		f.escapeCSVField(entry.Content),
	}

	if options.Verbose {
		if entry.Metadata != nil {
			metadataJSON, err := json.Marshal(entry.Metadata)
			if err != nil {
				row = append(row, f.escapeCSVField("Error serializing metadata"))
			} else {
				row = append(row, f.escapeCSVField(string(metadataJSON)))
			}
		} else {
			row = append(row, "")
		}
	}

	return strings.Join(row, ",")
}

// createComplianceRow creates a CSV row summarizing one regime report. It
// reuses the field columns: "Field" carries the regime, "Found" carries OK,
// and "Content" carries the missing list.
func (f *Formatter) createComplianceRow(filename string, report compliance.Report) string {
	content := "all required fields present"
	if len(report.Missing) > 0 {
		content = "missing: " + strings.Join(report.Missing, "; ")
	}
	row := []string{
		f.escapeCSVField(filename),
		f.escapeCSVField("compliance/" + report.Regime),
		fmt.Sprintf("%t", report.OK),
		"", "", "",
		f.escapeCSVField(content),
	}
	return strings.Join(row, ",")
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	// Prevent CSV injection by sanitizing formula characters
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.Contains(field, ",") || strings.Contains(field, "\"") || strings.Contains(field, "\n") || strings.Contains(field, "\r") {
		// Escape internal quotes by doubling them
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		// Prefix with single quote to prevent formula execution
		return "'" + field
	}

	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
