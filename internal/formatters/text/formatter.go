// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"syllabus-scan/internal/core"
	"syllabus-scan/internal/formatters"
	"syllabus-scan/internal/formatters/shared"

	"github.com/fatih/color"
)

// contentPreviewLength caps how much of a multi-line field value the summary
// line shows.
const contentPreviewLength = 80

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []*core.DocumentResult, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	if len(results) == 0 {
		return "No documents scanned.", nil
	}

	response := shared.ConvertResults(results, options)

	var builder strings.Builder
	for i, document := range response.Documents {
		if i > 0 {
			builder.WriteString("\n")
		}
		f.appendDocument(&builder, document, options)
	}

	return builder.String(), nil
}

func (f *Formatter) appendDocument(builder *strings.Builder, document shared.DocumentReport, options formatters.FormatterOptions) {
	if document.File != "" {
		builder.WriteString(f.colors["white"].Sprintf("%s\n", document.File))
	}

	found, missing := splitFields(document.Fields)

	for _, entry := range found {
		f.appendFieldLine(builder, entry, options)
	}
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, entry := range missing {
			names = append(names, entry.Field)
		}
		sort.Strings(names)
		builder.WriteString(fmt.Sprintf("  not found: %s\n", strings.Join(names, ", ")))
	}

	for _, report := range document.Compliance {
		f.appendComplianceLine(builder, report.Regime, report.OK, report.Missing, report.Waived)
	}
}

func (f *Formatter) appendFieldLine(builder *strings.Builder, entry shared.FieldEntry, options formatters.FormatterOptions) {
	levelColor := f.confidenceColor(entry.ConfidenceLevel)

	line := fmt.Sprintf("  %-20s %-6s %5.1f%%  line %-4d %s\n",
		entry.Field, entry.ConfidenceLevel, entry.Confidence, entry.Line, preview(entry.Content))
	if !color.NoColor {
		line = fmt.Sprintf("  %-20s %s %5.1f%%  line %-4d %s\n",
			entry.Field, levelColor.Sprintf("%-6s", entry.ConfidenceLevel), entry.Confidence, entry.Line, preview(entry.Content))
	}
	builder.WriteString(line)

	if options.Verbose && len(entry.Metadata) > 0 {
		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			builder.WriteString(fmt.Sprintf("      %s: %s\n", k, entry.Metadata[k]))
		}
	}
}

func (f *Formatter) appendComplianceLine(builder *strings.Builder, regime string, ok bool, missing, waived []string) {
	status := f.colors["green"].Sprint("PASS")
	if !ok {
		status = f.colors["red"].Sprint("FAIL")
	}
	builder.WriteString(fmt.Sprintf("  %-20s %s", "["+regime+"]", status))
	if len(missing) > 0 {
		builder.WriteString(fmt.Sprintf("  missing: %s", strings.Join(missing, ", ")))
	}
	if len(waived) > 0 {
		builder.WriteString("  " + f.colors["yellow"].Sprintf("waived: %s", strings.Join(waived, ", ")))
	}
	builder.WriteString("\n")
}

func (f *Formatter) confidenceColor(level string) *color.Color {
	switch level {
	case "HIGH":
		return f.colors["green"]
	case "MEDIUM":
		return f.colors["yellow"]
	default:
		return f.colors["red"]
	}
}

// splitFields separates found from not-found entries, preserving order.
func splitFields(entries []shared.FieldEntry) (found, missing []shared.FieldEntry) {
	for _, entry := range entries {
		if entry.Found {
			found = append(found, entry)
		} else {
			missing = append(missing, entry)
		}
	}
	return found, missing
}

// preview flattens a field value to a single truncated line.
func preview(content string) string {
	flat := strings.Join(strings.Fields(content), " ")
	if len(flat) > contentPreviewLength {
		return flat[:contentPreviewLength-3] + "..."
	}
	return flat
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
