// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"syllabus-scan/internal/compliance"
	"syllabus-scan/internal/core"
	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/formatters"
)

func noColorOptions() formatters.FormatterOptions {
	return formatters.FormatterOptions{NoColor: true}
}

func sampleResult() *core.DocumentResult {
	return &core.DocumentResult{
		FilePath: "syllabus.txt",
		Fields: map[string]detector.Result{
			detector.FieldInstructor: {
				Field:      detector.FieldInstructor,
				Found:      true,
				Content:    "Jane Smith",
				Confidence: 95,
				Line:       2,
				Metadata:   map[string]string{"tier": "label_anchor"},
			},
			detector.FieldWorkload: {Field: detector.FieldWorkload, Found: false},
			detector.FieldSLOs:     {Field: detector.FieldSLOs, Found: false},
		},
		Compliance: map[string]compliance.Report{
			"UNH-Minimal": {
				Regime:  "UNH-Minimal",
				Missing: []string{detector.FieldSLOs},
				Waived:  []string{detector.FieldCreditHours},
				OK:      false,
			},
		},
	}
}

func TestFormat_NoDocuments(t *testing.T) {
	output, err := NewFormatter().Format(nil, noColorOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "No documents scanned." {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestFormat_DocumentSummary(t *testing.T) {
	output, err := NewFormatter().Format([]*core.DocumentResult{sampleResult()}, noColorOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(output, "syllabus.txt") {
		t.Error("expected file name in output")
	}
	if !strings.Contains(output, "instructor") {
		t.Error("expected found field line")
	}
	if !strings.Contains(output, "Jane Smith") {
		t.Error("expected field content preview")
	}
	if !strings.Contains(output, "not found: slos, workload") {
		t.Errorf("expected sorted not-found list, got:\n%s", output)
	}
	if !strings.Contains(output, "[UNH-Minimal]") {
		t.Error("expected compliance regime line")
	}
	if !strings.Contains(output, "FAIL") {
		t.Error("expected FAIL status")
	}
	if !strings.Contains(output, "missing: slos") {
		t.Error("expected missing field in compliance line")
	}
	if !strings.Contains(output, "waived: credit_hours") {
		t.Error("expected waived field in compliance line")
	}
}

func TestFormat_PassingCompliance(t *testing.T) {
	result := sampleResult()
	result.Compliance = map[string]compliance.Report{
		"UNH-Minimal": {Regime: "UNH-Minimal", OK: true},
	}

	output, err := NewFormatter().Format([]*core.DocumentResult{result}, noColorOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "PASS") {
		t.Error("expected PASS status")
	}
}

func TestFormat_VerboseShowsMetadata(t *testing.T) {
	options := noColorOptions()
	options.Verbose = true

	output, err := NewFormatter().Format([]*core.DocumentResult{sampleResult()}, options)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "tier: label_anchor") {
		t.Errorf("expected metadata line in verbose output, got:\n%s", output)
	}
}

func TestPreview_FlattensAndTruncates(t *testing.T) {
	multiline := "Grading Breakdown:\n- Exams   40%\n- Homework 30%"
	flat := preview(multiline)
	if strings.Contains(flat, "\n") {
		t.Error("expected preview to be a single line")
	}
	if flat != "Grading Breakdown: - Exams 40% - Homework 30%" {
		t.Errorf("unexpected preview: %q", flat)
	}

	long := strings.Repeat("outcome ", 30)
	truncated := preview(long)
	if len(truncated) != contentPreviewLength {
		t.Errorf("expected preview capped at %d chars, got %d", contentPreviewLength, len(truncated))
	}
	if !strings.HasSuffix(truncated, "...") {
		t.Error("expected ellipsis on truncated preview")
	}
}

func TestFormat_MultipleDocumentsSeparated(t *testing.T) {
	a := sampleResult()
	b := sampleResult()
	b.FilePath = "other.txt"

	output, err := NewFormatter().Format([]*core.DocumentResult{a, b}, noColorOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "syllabus.txt") || !strings.Contains(output, "other.txt") {
		t.Error("expected both documents in output")
	}
}
