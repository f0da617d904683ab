// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package latepolicy extracts the late-work / missed-work policy section.
package latepolicy

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

// Detector implements detector.FieldDetector for the late-work policy.
type Detector struct {
	extractor *titleblock.Extractor
	observer  *observability.StandardObserver
}

// NewDetector creates a late-policy Detector with its approved section
// titles.
func NewDetector() *Detector {
	return &Detector{
		extractor: titleblock.New([]string{
			"late policy",
			"late work",
			"late work policy",
			"late assignments",
			"late assignment policy",
			"late submissions",
			"late submission policy",
			"missed work",
			"missed assignments",
			"makeup policy",
			"make-up policy",
			"make-up work",
		}),
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldLatePolicy }

// Detect extracts the late-policy heading and its block.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldLatePolicy)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("latepolicy_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	block, ok := d.extractor.Extract(textnorm.Lines(text))

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"found": ok})
	}

	if !ok {
		return detector.NotFound(detector.FieldLatePolicy)
	}

	res = detector.Found(detector.FieldLatePolicy, block.Content,
		score.Clamp(baseConfidence+block.Score*scoreWeight), block.Line)
	res.Metadata = map[string]string{"heading": block.Heading}
	return res
}
