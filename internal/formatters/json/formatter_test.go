// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
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
			detector.FieldWorkload: {Field: detector.FieldWorkload, Found: false},
		},
		Compliance: map[string]compliance.Report{
			"UNH-Minimal": {Regime: "UNH-Minimal", OK: true},
		},
	}
}

func TestFormat_Empty(t *testing.T) {
	output, err := NewFormatter().Format(nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != `{"documents": []}` {
		t.Errorf("unexpected empty output: %q", output)
	}
}

func TestFormat_ValidJSON(t *testing.T) {
	output, err := NewFormatter().Format([]*core.DocumentResult{sampleResult()}, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed struct {
		Documents []struct {
			File   string `json:"file"`
			Fields []struct {
				Field           string  `json:"field"`
				Found           bool    `json:"found"`
				Content         string  `json:"content"`
				Confidence      float64 `json:"confidence"`
				ConfidenceLevel string  `json:"confidence_level"`
			} `json:"fields"`
			Compliance []struct {
				Regime string `json:"regime"`
				OK     bool   `json:"ok"`
			} `json:"compliance"`
		} `json:"documents"`
	}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(parsed.Documents) != 1 {
		t.Fatalf("expected 1 document, got %d", len(parsed.Documents))
	}
	doc := parsed.Documents[0]
	if doc.File != "syllabus.txt" {
		t.Errorf("unexpected file: %q", doc.File)
	}
	if len(doc.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(doc.Fields))
	}
	if doc.Fields[0].Field != detector.FieldInstructor {
		t.Errorf("expected instructor first (sorted), got %q", doc.Fields[0].Field)
	}
	if doc.Fields[0].ConfidenceLevel != "HIGH" {
		t.Errorf("expected HIGH confidence level, got %q", doc.Fields[0].ConfidenceLevel)
	}
	if len(doc.Compliance) != 1 || doc.Compliance[0].Regime != "UNH-Minimal" || !doc.Compliance[0].OK {
		t.Errorf("unexpected compliance: %+v", doc.Compliance)
	}
}

func TestRegisteredInDefaultRegistry(t *testing.T) {
	f, ok := formatters.Get("json")
	if !ok {
		t.Fatal("json formatter not registered")
	}
	if f.FileExtension() != ".json" {
		t.Errorf("unexpected extension: %q", f.FileExtension())
	}
}
