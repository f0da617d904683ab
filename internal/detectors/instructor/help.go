// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package instructor

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the instructor
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "instructor",
		ShortDescription: "Extracts the instructor's name",
		DetailedDescription: `The instructor detector extracts the teaching instructor's name through a fallback chain of decreasing reliability.

It searches labeled lines first ("Instructor:", "Professor:", "Dr. ..."), then free-standing two/three-token title-case sequences in the document prefix, then names adjacent to email or office lines, and finally title-case pairs whose surname appears in an embedded common-surname dictionary. Every path applies the same strict validity predicate so section headings and course titles never pass as names.`,
		Patterns: []string{
			`"Instructor: Dr. Jane Doe"`,
			`"Professor Alan M. Turing"`,
			`A title-case pair on the line above an email address`,
		},
		ConfidenceNotes: []string{
			"Label-anchored names score 90, dictionary fallback 55",
			"Names must be 2-3 title-case alphabetic tokens, no stopwords, no ALL-CAPS, no apostrophes",
			"Fallback passes search only the first 40 lines",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields instructor",
		},
	}
}
