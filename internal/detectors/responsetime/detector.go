// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package responsetime extracts the instructor's stated reply-time commitment
// ("I respond to email within 24 hours"). Numeric durations are everywhere in
// a syllabus, so the search is restricted to merged text windows around
// contact keywords and an explicit false-positive filter rejects assignment
// deadlines, crisis hotlines, and tech-support SLAs even inside those
// windows.
package responsetime

import (
	"regexp"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/textnorm"
	"syllabus-scan/internal/textscan"
)

const (
	maxInputChars = 25000

	// Lines within this distance of a contact keyword form the search
	// window. Overlapping windows merge before scanning.
	contactWindow = 2
	mergeSlack    = 1

	replyVerbConfidence = 85.0
	baseConfidence      = 65.0
)

// Detector implements detector.FieldDetector for response-time commitments.
type Detector struct {
	contactRe  *regexp.Regexp
	durationRe *regexp.Regexp
	replyRe    *regexp.Regexp
	vagueRe    *regexp.Regexp

	deadlineRe *regexp.Regexp
	hotlineRe  *regexp.Regexp
	supportRe  *regexp.Regexp
	addressRe  *regexp.Regexp

	observer *observability.StandardObserver
}

// NewDetector creates a response-time Detector.
func NewDetector() *Detector {
	return &Detector{
		contactRe:  regexp.MustCompile(`(?i)\b(?:e-?mails?|contact(?:ing)?|respond|response|repl(?:y|ies)|reach|messages?|questions?|inquir(?:y|ies)|communicat\w*)\b`),
		durationRe: regexp.MustCompile(`(?i)\b(?:within\s+)?(\d{1,3}|one|two|three)\s*(?:-|–|to\s+)?\s*(\d{1,3})?\s*(hours?|hrs?\.?|business\s+days?|week\s*days?|days?)\b`),
		replyRe:    regexp.MustCompile(`(?i)\b(?:respond|response|repl(?:y|ies)|answer|get\s+back)\b`),
		vagueRe:    regexp.MustCompile(`(?i)\b(?:may\s+vary|varies|as\s+soon\s+as|when\s+(?:i\s+)?can|eventually)\b`),

		deadlineRe: regexp.MustCompile(`(?i)\b(?:due|deadline|late\s+(?:work|submissions?|penalt\w+)|submit(?:ted)?\s+(?:by|within)|extension)\b`),
		hotlineRe:  regexp.MustCompile(`(?i)\b(?:crisis|hotline|emergency|suicide|counseling\s+center|911|24/7)\b`),
		supportRe:  regexp.MustCompile(`(?i)\b(?:help\s*desk|tech(?:nical)?\s+support|it\s+support|service\s+desk|canvas\s+support)\b`),
		addressRe:  regexp.MustCompile(`\S*(?:@|\.(?:com|edu|org|net)/?)\S*`),
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldResponseTime }

// Detect scans the merged contact windows for an explicit numeric reply-time
// commitment.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldResponseTime)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("responsetime_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	lines := textnorm.Lines(text)

	var spans []textscan.Span
	for i, line := range lines {
		if d.contactRe.MatchString(line) {
			spans = append(spans, textscan.SpanAround(i, contactWindow, len(lines)))
		}
	}
	spans = textscan.MergeSpans(spans, mergeSlack)

	windowCount := len(spans)
	for _, span := range spans {
		for i := span.Start; i <= span.End && i < len(lines); i++ {
			line := lines[i]
			if !d.durationMatches(line) {
				continue
			}
			if d.vagueRe.MatchString(line) {
				continue
			}
			if d.falsePositive(lines, i) {
				continue
			}

			confidence := baseConfidence
			if d.replyRe.MatchString(line) {
				confidence = replyVerbConfidence
			}

			if finishTiming != nil {
				finishTiming(true, map[string]interface{}{"windows": windowCount, "found": true})
			}
			return detector.Found(detector.FieldResponseTime, strings.TrimSpace(line), confidence, i+1)
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"windows": windowCount, "found": false})
	}
	return detector.NotFound(detector.FieldResponseTime)
}

// durationMatches reports whether the line carries a numeric time unit that
// is not merely a digit embedded in an email address or domain (a collision
// like "support24@school.edu" must not count as "24 hours").
func (d *Detector) durationMatches(line string) bool {
	masked := d.addressRe.ReplaceAllStringFunc(line, func(s string) string {
		return strings.Repeat(" ", len(s))
	})
	return d.durationRe.MatchString(masked)
}

// falsePositive applies secondary keyword proximity checks: a duration that
// sits on or next to a deadline, hotline, or tech-support line is not a
// reply-time commitment even inside a contact window.
func (d *Detector) falsePositive(lines []string, index int) bool {
	lo, hi := index-1, index+1
	if lo < 0 {
		lo = 0
	}
	if hi >= len(lines) {
		hi = len(lines) - 1
	}
	for _, line := range lines[lo : hi+1] {
		if d.deadlineRe.MatchString(line) || d.hotlineRe.MatchString(line) || d.supportRe.MatchString(line) {
			return true
		}
	}
	return false
}
