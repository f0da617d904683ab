// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package slo

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the SLO detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "slos",
		ShortDescription: "Extracts the student learning outcomes section",
		DetailedDescription: `The SLO detector locates a learning-outcomes section heading from a fixed list of approved titles and captures the block of lines beneath it.

A line qualifies only if it both contains an approved title and looks like a header (short with a colon, all-caps, exact title word count, or title-anchored). Matching headings are scored; prose mentions of "learning outcomes" inside paragraphs fall below the minimum score and are rejected.`,
		Patterns: []string{
			`"Student Learning Outcomes:"`,
			`"COURSE OBJECTIVES"`,
			`"Upon completion of this course, students will..."`,
		},
		ConfidenceNotes: []string{
			"Heading score: starts-with-title +4, short +2, colon +2, all-caps +2, long -3; minimum 5",
			"Captures up to 10 lines, stopping at the next section header",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields slos",
		},
	}
}
