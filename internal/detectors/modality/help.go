// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package modality

import "syllabus-scan/internal/help"

// GetFieldInfo returns standardized information about the modality detector.
func (d *Detector) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "modality",
		ShortDescription: "Classifies course delivery as Online, Hybrid, In-Person, or Unknown",
		DetailedDescription: `The modality detector classifies how the course is delivered using three phases of decreasing certainty.

Phase 1 scans for definitive declarative phrases ("100% online", "hybrid course") and returns immediately on the first match; hybrid phrases are checked before online ones so a hybrid course is never misread as fully online. Phase 2 separates the class-meeting section from the office-hours section before interpreting rooms or meeting links. Phase 3 accumulates weaker signals (day/time tokens, room numbers, Zoom/Teams mentions) into online and in-person buckets, combining them into a hybrid score when both carry weight.

If the winning bucket falls below the raw or normalized score floor, the detector reports Unknown rather than guess.`,
		Patterns: []string{
			`"100% online", "fully online", "location: online"`,
			`"hybrid course", "blended format", "HyFlex"`,
			`"meets in person", "face-to-face course"`,
			`Day/time tokens: "MWF 10:10-11:00 AM"`,
			`Meeting tools: Zoom, Microsoft Teams, WebEx`,
		},
		ConfidenceNotes: []string{
			"Definitive phrases return immediately at confidence 95",
			"Room found only in the office-hours window penalizes in-person",
			"Winning bucket must score at least 2.0 raw and 0.60 normalized",
			"Lines about online textbooks or materials are ignored",
		},
		Examples: []string{
			"syllabus-scan --file syllabus.pdf --fields modality",
		},
	}
}
