// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gradingprocess

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the grading-process
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "grading_process",
		ShortDescription: "Captures grading breakdowns that are not canonical A-F scales",
		DetailedDescription: `The grading-process detector captures weighted percent lists, point tables, and percentage clusters near assignment labels — everything that describes how grades are computed without being a canonical letter scale.

Lines are marked as percent, points, or numeric assignment-label signals; contiguous marked lines form windows broken by blank lines; windows are scored by signal density plus a bonus when grading anchor keywords appear nearby. The winning window is then trimmed to its signal lines plus one short context line each, with a detected heading prepended when present.`,
		Patterns: []string{
			`"Homework 30%", "Exams: 40%"`,
			`"Final project ... 150 points"`,
			`A percent cluster under a "Grade Breakdown:" heading`,
		},
		ConfidenceNotes: []string{
			"Windows need at least 2 signal lines",
			"Anchor keywords (grade, assessment) within 2 lines add a bonus",
			"Confidence grows with signal-line count, capped at 95",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields grading_process",
		},
	}
}
