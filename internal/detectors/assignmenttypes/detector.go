// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package assignmenttypes extracts the section describing the kinds of
// graded work in the course (exams, projects, quizzes, papers).
package assignmenttypes

import (
	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/detectors/titleblock"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/score"
	"syllabus-scan/internal/textnorm"
)

const (
	maxInputChars  = 25000
	baseConfidence = 50.0
	scoreWeight    = 4.0
)

// Detector implements detector.FieldDetector for assignment types.
type Detector struct {
	extractor *titleblock.Extractor
	observer  *observability.StandardObserver
}

// NewDetector creates an assignment-types Detector with its approved
// section titles.
func NewDetector() *Detector {
	return &Detector{
		extractor: titleblock.New([]string{
			"assignment types",
			"types of assignments",
			"assignments and assessments",
			"assessments",
			"coursework",
			"course requirements",
			"graded work",
			"course assignments",
			"major assignments",
			"assignments",
		}),
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldAssignmentTypes }

// Detect extracts the assignment-types heading and its block.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldAssignmentTypes)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("assignmenttypes_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	block, ok := d.extractor.Extract(textnorm.Lines(text))

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"found": ok})
	}

	if !ok {
		return detector.NotFound(detector.FieldAssignmentTypes)
	}

	res = detector.Found(detector.FieldAssignmentTypes, block.Content,
		score.Clamp(baseConfidence+block.Score*scoreWeight), block.Line)
	res.Metadata = map[string]string{"heading": block.Heading}
	return res
}
