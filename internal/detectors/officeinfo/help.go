// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package officeinfo

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the office-information
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "office_information",
		ShortDescription: "Extracts instructor office location, hours, and phone",
		DetailedDescription: `The office-information detector composes three independent sub-detectors: office location, office hours, and office phone.

Each sub-detector has its own ordered regex pattern list and its own validation rule. Phone candidates must normalize to exactly 7 or 10 digits. A "TBD"/"by appointment only" literal short-circuits hours detection before the generic patterns run. The composed result is found when any part is found.`,
		Patterns: []string{
			`"Office: Kingsbury W241", "My office is in Morse 112"`,
			`"Office Hours: MW 2:00-3:30 PM"`,
			`"Office Phone: (603) 862-1234", "862-1234"`,
		},
		ConfidenceNotes: []string{
			"Phone numbers must normalize to 7 or 10 digits",
			`"TBD" office hours are reported literally, not skipped`,
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields office_information",
		},
	}
}
