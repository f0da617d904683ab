// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preferredcontact

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the preferred-contact
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "preferred_contact",
		ShortDescription: "Extracts the instructor's stated preferred contact method",
		DetailedDescription: `The preferred-contact detector accepts a line only when a preference keyword (prefer, best way, please use) and a contact method (email, phone, Canvas message, office hours) appear together. A contact method listed without a stated preference is left to the email and office-information detectors.`,
		Patterns: []string{
			`"Preferred method of contact: email"`,
			`"The best way to reach me is through Canvas messages"`,
		},
		ConfidenceNotes: []string{
			"An explicit 'Preferred contact:' label adds 25",
			"First-person phrasing (reach me, I prefer) adds 10",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields preferred_contact",
		},
	}
}
