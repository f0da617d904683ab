// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package assignmentdelivery identifies the platforms through which graded
// work is submitted (LMS and homework systems). Unlike the single-winner
// detectors it reports a deduplicated set: courses routinely split delivery
// across an LMS and a publisher homework platform.
package assignmentdelivery

import (
	"regexp"
	"sort"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/textnorm"
)

const (
	maxInputChars = 25000

	// Any match at all reports at least this confidence.
	minConfidenceFloor = 45.0

	baseScore          = 40.0
	deliveryVerbBonus  = 20.0
	sectionBonus       = 10.0
	earlyBonus         = 10.0
	multiPlatformBonus = 10.0

	earlyLineCount = 30
)

// platformPattern maps a recognition regex to the canonical platform name.
// The list is ordered so more specific names are matched before the generic
// names they contain ("Canvas (MyCourses)" before "Canvas").
type platformPattern struct {
	name  string
	regex *regexp.Regexp
}

// Detector implements detector.FieldDetector for assignment delivery.
type Detector struct {
	platforms []platformPattern

	deliveryVerbRe *regexp.Regexp
	sectionRe      *regexp.Regexp

	observer *observability.StandardObserver
}

// NewDetector creates an assignment-delivery Detector with its ordered
// platform patterns.
func NewDetector() *Detector {
	p := func(name, pattern string) platformPattern {
		return platformPattern{name: name, regex: regexp.MustCompile(`(?i)` + pattern)}
	}
	return &Detector{
		platforms: []platformPattern{
			p("Canvas (MyCourses)", `\bcanvas\s*\(\s*mycourses\s*\)`),
			p("MyCourses", `\bmycourses\b`),
			p("Mastering A&P", `\bmastering\s*a\s*&\s*p\b`),
			p("Mastering Biology", `\bmastering\s*biology\b`),
			p("Mastering Chemistry", `\bmastering\s*chemistry\b`),
			p("Mastering Physics", `\bmastering\s*physics\b`),
			p("McGraw Hill Connect", `\bmcgraw[- ]?hill\s+connect\b`),
			p("MyLab", `\bmylab\b`),
			p("Google Classroom", `\bgoogle\s+classroom\b`),
			p("Top Hat", `\btop\s*hat\b`),
			p("Brightspace", `\bbrightspace\b`),
			p("Blackboard", `\bblackboard\b`),
			p("Gradescope", `\bgradescope\b`),
			p("WebAssign", `\bwebassign\b`),
			p("Turnitin", `\bturnitin\b`),
			p("Packback", `\bpackback\b`),
			p("Perusall", `\bperusall\b`),
			p("zyBooks", `\bzybooks?\b`),
			p("iClicker", `\bi-?clicker\b`),
			p("Moodle", `\bmoodle\b`),
			p("Sakai", `\bsakai\b`),
			p("Schoology", `\bschoology\b`),
			p("D2L", `\bd2l\b`),
			p("Canvas", `\bcanvas\b`),
		},
		deliveryVerbRe: regexp.MustCompile(`(?i)\b(?:submit(?:ted)?|upload(?:ed)?|turn(?:ed)?\s+in|post(?:ed)?|due|deliver(?:ed)?|complete(?:d)?\s+(?:on|in|via|through))\b`),
		sectionRe:      regexp.MustCompile(`(?i)\b(?:assignments?|submissions?|homework|coursework|how to submit)\b\s*:`),
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldAssignmentDelivery }

// Detect returns the distinct delivery platforms found, semicolon-joined in
// alphabetical order, with a structural confidence floored at 45 whenever
// any platform matched.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldAssignmentDelivery)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("assignmentdelivery_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	lines := textnorm.Lines(text)

	found := make(map[string]bool)
	firstLine := 0
	hasVerb, hasSection, hasEarly := false, false, false

	for i, line := range lines {
		remaining := line
		for _, platform := range d.platforms {
			loc := platform.regex.FindStringIndex(remaining)
			if loc == nil {
				continue
			}
			// Blank the span so "Canvas (MyCourses)" is not re-matched by
			// the generic "Canvas" pattern below it.
			remaining = remaining[:loc[0]] + strings.Repeat(" ", loc[1]-loc[0]) + remaining[loc[1]:]

			if !found[platform.name] {
				found[platform.name] = true
				if firstLine == 0 {
					firstLine = i + 1
				}
			}
			hasVerb = hasVerb || d.deliveryVerbRe.MatchString(line)
			hasSection = hasSection || d.sectionNear(lines, i)
			hasEarly = hasEarly || i < earlyLineCount
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"platforms": len(found)})
	}

	if len(found) == 0 {
		return detector.NotFound(detector.FieldAssignmentDelivery)
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	confidence := baseScore
	if hasVerb {
		confidence += deliveryVerbBonus
	}
	if hasSection {
		confidence += sectionBonus
	}
	if hasEarly {
		confidence += earlyBonus
	}
	if len(found) > 1 {
		confidence += multiPlatformBonus
	}
	if confidence < minConfidenceFloor {
		confidence = minConfidenceFloor
	}
	if confidence > 100 {
		confidence = 100
	}

	res = detector.Found(detector.FieldAssignmentDelivery, strings.Join(names, "; "), confidence, firstLine)
	res.Metadata = map[string]string{"platforms": strings.Join(names, ",")}
	return res
}

// sectionNear reports whether an assignment/submission section label sits on
// or just above the line.
func (d *Detector) sectionNear(lines []string, index int) bool {
	for _, j := range []int{index, index - 1, index - 2} {
		if j < 0 {
			continue
		}
		if d.sectionRe.MatchString(lines[j]) {
			return true
		}
	}
	return false
}
