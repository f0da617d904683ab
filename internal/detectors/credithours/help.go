// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package credithours

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the credit-hours
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "credit_hours",
		ShortDescription: "Extracts the course credit-hour statement",
		DetailedDescription: `The credit-hours detector runs an ordered list of phrasing templates from most to least specific ("Credit Hours: 4" before a bare "4 credits"). The first template with any match wins at its earliest position in the document, so templates never compete on score.`,
		Patterns: []string{
			`"Credit Hours: 4"`,
			`"This is a 3-credit course"`,
			`"4 credits", "four credit hours"`,
		},
		ConfidenceNotes: []string{
			"Confidence is fixed per template, 95 for labeled forms down to 65 for spelled-out forms",
			"Earlier templates are more specific and preempt later ones",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields credit_hours",
		},
	}
}
