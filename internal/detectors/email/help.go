// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the email detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "email",
		ShortDescription: "Extracts the instructor's contact email address",
		DetailedDescription: `The email detector extracts the most plausible instructor email address from the document.

All address mentions are collected as candidates, then scored: .edu domains and addresses on labeled contact lines rank higher, addresses in the document header higher still, while office accounts (registrar@, helpdesk@) are demoted and placeholder addresses rejected.`,
		Patterns: []string{
			`"Email: jane.doe@unh.edu"`,
			`"Contact me at jdoe@cs.university.edu"`,
		},
		ConfidenceNotes: []string{
			".edu domain +20, contact label +15, header position +10",
			"Office accounts (registrar, helpdesk, ...) -25",
			"Placeholder domains (example.com, university.edu) rejected",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields email",
		},
	}
}
