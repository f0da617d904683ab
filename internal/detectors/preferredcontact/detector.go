// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preferredcontact extracts the instructor's stated preferred way of
// being reached. A statement is accepted only when a preference keyword and a
// contact method appear together, so a bare "Email: x@y.edu" line does not
// claim a preference it never stated.
package preferredcontact

import (
	"regexp"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/score"
	"syllabus-scan/internal/textnorm"
)

const (
	maxInputChars = 25000

	baseConfidence     = 60.0
	explicitLabelBoost = 25.0
	firstPersonBoost   = 10.0
)

// Detector implements detector.FieldDetector for preferred contact methods.
type Detector struct {
	labelRe       *regexp.Regexp
	preferenceRe  *regexp.Regexp
	methodRe      *regexp.Regexp
	firstPersonRe *regexp.Regexp

	observer *observability.StandardObserver
}

// NewDetector creates a preferred-contact Detector.
func NewDetector() *Detector {
	return &Detector{
		labelRe:       regexp.MustCompile(`(?i)\b(?:preferred|best)\s+(?:method\s+of\s+|way\s+(?:of|to)\s+|form\s+of\s+)?contact\s*[:\-]`),
		preferenceRe:  regexp.MustCompile(`(?i)\b(?:prefer(?:red|s)?|best\s+(?:way|reached)|easiest\s+way|quickest\s+way|please\s+(?:use|contact|email|message))\b`),
		methodRe:      regexp.MustCompile(`(?i)\b(?:e-?mail|phone|call|text(?:ing)?|canvas\s+messag\w*|mycourses\s+messag\w*|teams|slack|zoom|office\s+hours|discussion\s+board)\b`),
		firstPersonRe: regexp.MustCompile(`(?i)\b(?:i|me|my)\b`),
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldPreferredContact }

// Detect finds lines pairing a preference keyword with a contact method and
// returns the best-scoring one.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldPreferredContact)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("preferredcontact_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	lines := textnorm.Lines(text)

	var candidates []score.Candidate
	for i, line := range lines {
		if !d.methodRe.MatchString(line) {
			continue
		}
		labeled := d.labelRe.MatchString(line)
		if !labeled && !d.preferenceRe.MatchString(line) {
			continue
		}

		s := baseConfidence
		if labeled {
			s += explicitLabelBoost
		}
		if d.firstPersonRe.MatchString(line) {
			s += firstPersonBoost
		}
		c := score.NewCandidate(strings.TrimSpace(line), i+1)
		c.Score = s
		candidates = append(candidates, c)
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"candidates": len(candidates)})
	}

	best, ok := score.SelectBest(candidates)
	if !ok {
		return detector.NotFound(detector.FieldPreferredContact)
	}
	return detector.Found(detector.FieldPreferredContact, best.Text, score.Clamp(best.Score), best.Line)
}
