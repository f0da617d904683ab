// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"strings"
	"testing"

	"syllabus-scan/internal/compliance"
	"syllabus-scan/internal/core"
	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/formatters"
)

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
			},
		},
		Compliance: map[string]compliance.Report{
			"UNH-Minimal": {
				Regime:  "UNH-Minimal",
				Missing: []string{detector.FieldSLOs, detector.FieldCreditHours},
				OK:      false,
			},
		},
	}
}

func TestFormat_HeaderAndRows(t *testing.T) {
	output, err := NewFormatter().Format([]*core.DocumentResult{sampleResult()}, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(output, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + field row + compliance row, got %d lines", len(lines))
	}
	if lines[0] != "Filename,Field,Found,Confidence Level,Confidence %,Line Number,Content" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "syllabus.txt,instructor,true,HIGH,95.0,2,Jane Smith" {
		t.Errorf("unexpected field row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "syllabus.txt,compliance/UNH-Minimal,false") {
		t.Errorf("unexpected compliance row: %q", lines[2])
	}
	if !strings.Contains(lines[2], "missing: slos; credit_hours") {
		t.Errorf("expected missing list in compliance row: %q", lines[2])
	}
}

func TestFormat_CompliantRow(t *testing.T) {
	result := sampleResult()
	result.Compliance = map[string]compliance.Report{
		"UNH-Minimal": {Regime: "UNH-Minimal", OK: true},
	}

	output, err := NewFormatter().Format([]*core.DocumentResult{result}, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "compliance/UNH-Minimal,true,,,,all required fields present") {
		t.Errorf("unexpected compliant row in:\n%s", output)
	}
}

func TestFormat_VerboseAddsMetadataColumn(t *testing.T) {
	result := sampleResult()
	field := result.Fields[detector.FieldInstructor]
	field.Metadata = map[string]string{"tier": "label_anchor"}
	result.Fields[detector.FieldInstructor] = field

	output, err := NewFormatter().Format([]*core.DocumentResult{result}, formatters.FormatterOptions{Verbose: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(output, "\n")
	if !strings.HasSuffix(lines[0], ",Metadata") {
		t.Errorf("expected Metadata header column: %q", lines[0])
	}
	if !strings.Contains(lines[1], "label_anchor") {
		t.Errorf("expected metadata JSON in field row: %q", lines[1])
	}
}

func TestEscapeCSVField(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"has,comma", `"has,comma"`},
		{`has "quote"`, `"has ""quote"""`},
		{"has\nnewline", "\"has\nnewline\""},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"@cmd", "'@cmd"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := f.escapeCSVField(tt.in); got != tt.want {
			t.Errorf("escapeCSVField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeCSVField_LeadingDashQuoted(t *testing.T) {
	// A bullet value starts with '-', which spreadsheets treat as a formula.
	got := NewFormatter().escapeCSVField("- Exams 40%")
	if got != "'- Exams 40%" {
		t.Errorf("unexpected escaping: %q", got)
	}
}
