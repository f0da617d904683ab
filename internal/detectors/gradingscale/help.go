// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gradingscale

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the grading-scale
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "grading_scale",
		ShortDescription: "Recognizes canonical A-F letter-to-range grading scales",
		DetailedDescription: `The grading-scale detector recognizes only canonical letter-to-numeric-range mappings (A, A-, B+, ... F) in five known forms: colon, equals, percent-range, F-threshold, and below-X forms.

A scale is accepted only when both A and F are present and at least four distinct letters were found. The output is a re-serialized canonical string in fixed letter order, not the raw matched text. Broad grading breakdowns that are not canonical scales belong to the grading_process detector.`,
		Patterns: []string{
			`"A: 93-100", "B+ = 87-89"`,
			`"90-100% = A"`,
			`"F: below 60", "Below 60 = F"`,
			`"A: 93 and above"`,
		},
		ConfidenceNotes: []string{
			"Requires both A and F plus at least 4 distinct letters",
			"First occurrence of each letter wins; duplicates ignored",
			"Accepted scales report a fixed confidence of 95",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields grading_scale",
		},
	}
}
