// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sections

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want Context
	}{
		{"Class Location: Room 105", Class},
		{"We meet in the library annex", Class},
		{"Office Hours: Mon/Wed 2-4pm", Office},
		{"Tutoring Center, Smith Hall 12", Office},
		{"Required texts are listed below", Neutral},
	}

	for _, tt := range tests {
		if got := ClassifyLine(tt.line); got != tt.want {
			t.Errorf("ClassifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestClassifyLine_OfficeWinsOverClass(t *testing.T) {
	// Both keyword families present: precision bias means office wins.
	line := "Office hours are held in the classroom after lecture"
	if got := ClassifyLine(line); got != Office {
		t.Errorf("expected Office when both contexts appear, got %v", got)
	}
}

func TestClassify_UsesNearestNonNeutralLine(t *testing.T) {
	lines := []string{
		"Office Hours: by appointment",
		"Room 301, Conant Hall",
		"Class meets Tuesdays",
	}

	// Line 1 is neutral on its own; the office line at distance 1 decides
	// before the class line at the same distance is even considered only if
	// it comes first in scan order. Both are at distance 1; office is checked
	// on the earlier side first.
	if got := Classify(lines, 1, 2); got != Office {
		t.Errorf("expected Office from nearest context, got %v", got)
	}
}

func TestClassify_NeutralWhenWindowExhausted(t *testing.T) {
	lines := []string{"alpha", "beta", "gamma"}
	if got := Classify(lines, 1, 1); got != Neutral {
		t.Errorf("expected Neutral, got %v", got)
	}
}

func TestFindSection(t *testing.T) {
	lines := []string{
		"Course Policies",
		"Grading Scale",
		"A 93-100",
		"B 85-92",
		"",
		"Attendance",
	}

	span, ok := FindSection(lines, []string{"grading scale"}, 5)
	if !ok {
		t.Fatal("expected section to be found")
	}
	if span.Start != 1 {
		t.Errorf("expected section start at header line, got %d", span.Start)
	}
	if span.End != 4 {
		t.Errorf("expected section to stop at blank line, got end %d", span.End)
	}
}

func TestFindSection_NotFound(t *testing.T) {
	if _, ok := FindSection([]string{"nothing here"}, []string{"grading scale"}, 3); ok {
		t.Error("expected not found")
	}
}
