// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classlocation

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the class-location
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "class_location",
		ShortDescription: "Extracts the room where the class meets, excluding office rooms",
		DetailedDescription: `The class-location detector extracts the physical room where the class itself meets.

Each line is classified as CLASS, OFFICE, or NEUTRAL context using the current line first and then a bounded window of surrounding lines; any room found in OFFICE context is rejected outright so office-hours rooms are never reported as classrooms. Room strings are extracted through an ordered pattern list where more explicit phrasings carry higher base confidence. Course codes ("COMP 405") and four-digit years are explicitly excluded.`,
		Patterns: []string{
			`"Classroom: 105", "Room 214", "Rm. 12B"`,
			`"Morse Hall 301", "Science Center Room 22"`,
			`"Location: K-112", "meets in HS 250"`,
		},
		ConfidenceNotes: []string{
			"Selection order: CLASS context, explicit label, header position, pattern confidence, earliest line",
			"OFFICE-context candidates are rejected, never demoted",
			"Department-prefixed three-digit codes are treated as course codes",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields class_location",
		},
	}
}
