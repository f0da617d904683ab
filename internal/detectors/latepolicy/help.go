// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package latepolicy

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the late-policy
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "late_policy",
		ShortDescription: "Extracts the late-work / missed-work policy section",
		DetailedDescription: `The late-policy detector locates a late-work section heading from a fixed list of approved titles and captures the block of lines beneath it, using the shared title-block heuristics.`,
		Patterns: []string{
			`"Late Policy:", "Late Work", "LATE ASSIGNMENTS"`,
			`"Make-up Policy", "Missed Work"`,
		},
		ConfidenceNotes: []string{
			"Shared title-block scoring with minimum heading score 5",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields late_policy",
		},
	}
}
