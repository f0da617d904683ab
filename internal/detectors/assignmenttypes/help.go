// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package assignmenttypes

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the assignment-types
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "assignment_types",
		ShortDescription: "Extracts the section describing the kinds of graded work",
		DetailedDescription: `The assignment-types detector locates a section heading naming the course's graded work (assignments, assessments, course requirements) and captures the block beneath it, using the shared title-block heuristics.`,
		Patterns: []string{
			`"Assignment Types:", "Course Requirements"`,
			`"ASSIGNMENTS AND ASSESSMENTS"`,
		},
		ConfidenceNotes: []string{
			"Shared title-block scoring with minimum heading score 5",
			`Generic "assignments" is listed last so more specific titles win`,
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields assignment_types",
		},
	}
}
