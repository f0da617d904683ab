// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package responsetime

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the response-time
// detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "response_time",
		ShortDescription: "Extracts the instructor's stated reply-time commitment",
		DetailedDescription: `The response-time detector searches only inside merged text windows around contact keywords (email, respond, reach, questions), then requires an explicit numeric time unit on the matched line. Vague commitments ("may vary", "as soon as I can") are rejected.

A false-positive filter runs even inside contact windows: durations adjacent to assignment-deadline, crisis-hotline, or tech-support keywords are skipped, and digits embedded in email addresses or domains never count as durations.`,
		Patterns: []string{
			`"I respond to email within 24 hours"`,
			`"Expect a reply within 1-2 business days"`,
		},
		ConfidenceNotes: []string{
			"A reply verb on the matched line raises confidence to 85, otherwise 65",
			"Deadline, hotline, and tech-support contexts are excluded outright",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields response_time",
		},
	}
}
