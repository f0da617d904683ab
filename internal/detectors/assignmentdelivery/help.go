// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package assignmentdelivery

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the assignment-delivery
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "assignment_delivery",
		ShortDescription: "Finds the platforms where graded work is submitted",
		DetailedDescription: `The assignment-delivery detector matches known LMS and homework platform names (Canvas, MyCourses, Blackboard, Gradescope, Mastering A&P, and so on) against an ordered pattern list where specific names are tried before the generic names they contain.

All distinct platforms in the document are reported as a single semicolon-joined list in alphabetical order, since courses routinely split delivery across an LMS and a publisher homework system.`,
		Patterns: []string{
			`"Submit homework on MyCourses"`,
			`"Labs are delivered through Gradescope"`,
			`"Canvas (MyCourses)" matched as one platform, not two`,
		},
		ConfidenceNotes: []string{
			"Submission verbs (submit, upload, turn in) near a match add confidence",
			"Assignment/submission section headers and early placement add confidence",
			"Multiple distinct platforms add confidence; any match reports at least 45",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields assignment_delivery",
		},
	}
}
