// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"testing"

	goyaml "gopkg.in/yaml.v3"

	"syllabus-scan/internal/compliance"
	"syllabus-scan/internal/core"
	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/formatters"
)

func TestFormat_Empty(t *testing.T) {
	output, err := NewFormatter().Format(nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "documents: []\n" {
		t.Errorf("unexpected empty output: %q", output)
	}
}

func TestFormat_ValidYAML(t *testing.T) {
	results := []*core.DocumentResult{{
		FilePath: "syllabus.txt",
		Fields: map[string]detector.Result{
			detector.FieldEmail: {
				Field:      detector.FieldEmail,
				Found:      true,
				Content:    "jsmith@unh.edu",
				Confidence: 90,
				Line:       3,
			},
		},
		Compliance: map[string]compliance.Report{
			"UNH-Minimal": {Regime: "UNH-Minimal", Missing: []string{detector.FieldSLOs}, OK: false},
		},
	}}

	output, err := NewFormatter().Format(results, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed struct {
		Documents []struct {
			File   string `yaml:"file"`
			Fields []struct {
				Field           string  `yaml:"field"`
				Found           bool    `yaml:"found"`
				Confidence      float64 `yaml:"confidence"`
				ConfidenceLevel string  `yaml:"confidence_level"`
			} `yaml:"fields"`
			Compliance []struct {
				Regime  string   `yaml:"regime"`
				Missing []string `yaml:"missing"`
				OK      bool     `yaml:"ok"`
			} `yaml:"compliance"`
		} `yaml:"documents"`
	}
	if err := goyaml.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	if len(parsed.Documents) != 1 {
		t.Fatalf("expected 1 document, got %d", len(parsed.Documents))
	}
	doc := parsed.Documents[0]
	if doc.File != "syllabus.txt" {
		t.Errorf("unexpected file: %q", doc.File)
	}
	if len(doc.Fields) != 1 || doc.Fields[0].Field != detector.FieldEmail {
		t.Errorf("unexpected fields: %+v", doc.Fields)
	}
	if doc.Fields[0].ConfidenceLevel != "HIGH" {
		t.Errorf("unexpected confidence level: %q", doc.Fields[0].ConfidenceLevel)
	}
	if len(doc.Compliance) != 1 || doc.Compliance[0].OK {
		t.Errorf("unexpected compliance: %+v", doc.Compliance)
	}
}

func TestRegisteredInDefaultRegistry(t *testing.T) {
	f, ok := formatters.Get("yaml")
	if !ok {
		t.Fatal("yaml formatter not registered")
	}
	if f.FileExtension() != ".yaml" {
		t.Errorf("unexpected extension: %q", f.FileExtension())
	}
}
