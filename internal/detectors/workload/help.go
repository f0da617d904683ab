// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package workload

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the workload detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "workload",
		ShortDescription: "Extracts the expected weekly time-commitment statement",
		DetailedDescription: `The workload detector runs an ordered list of phrasing templates from most to least specific, starting with the federal-definition phrasing many syllabi quote ("minimum of 3 hours of engaged time per week per credit over a 15-week semester") down to a bare "X hours per week". The first template with any match wins at its earliest position.`,
		Patterns: []string{
			`"minimum of 3 hours of engaged time per week per credit"`,
			`"expect to spend 8-10 hours per week"`,
			`"Time commitment: 6 hours per week"`,
		},
		ConfidenceNotes: []string{
			"Confidence is fixed per template, 95 for the full engaged-time phrasing down to 60 for bare per-credit forms",
			"Earlier templates are more specific and preempt later ones",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields workload",
		},
	}
}
