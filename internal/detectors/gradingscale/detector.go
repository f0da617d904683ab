// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package gradingscale recognizes canonical letter-to-numeric-range grading
// scales. It is deliberately strict: only A through F mappings in a handful
// of known forms are accepted, and a scale must include both A and F plus at
// least four distinct letters before it is reported at all. Partial or
// garbage scales are rejected, not repaired.
//
// Unlike most detectors, the output is a re-serialized canonical string in
// fixed letter order rather than a verbatim span.
package gradingscale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/textnorm"
)

const (
	maxInputChars = 25000

	// Acceptance invariants.
	minDistinctLetters = 4

	scaleConfidence = 95.0
)

// CanonicalOrder is the fixed serialization order for scale letters.
var CanonicalOrder = []string{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "D-", "F"}

const letterPattern = `([ABCD][+-]?|F)`

// Detector implements detector.FieldDetector for the grading scale.
type Detector struct {
	// The five alternative forms a scale row may take. Each regex yields
	// (letter, low, high) or (letter, threshold) submatches.
	colonForm     *regexp.Regexp // "A: 90-100" / "A = 90-100"
	rangeForm     *regexp.Regexp // "90-100% = A" / "90-100: A"
	thresholdForm *regexp.Regexp // "F: below 60" / "F = <60"
	belowForm     *regexp.Regexp // "below 60 = F"
	minimumForm   *regexp.Regexp // "A: 93 and above" / "93+ = A"

	observer *observability.StandardObserver
}

// NewDetector creates a grading-scale Detector.
func NewDetector() *Detector {
	return &Detector{
		colonForm:     regexp.MustCompile(`\b` + letterPattern + `\s*[:=]\s*(\d{1,3})\s*(?:-|–|to)\s*(\d{1,3})\s*%?`),
		rangeForm:     regexp.MustCompile(`\b(\d{1,3})\s*(?:-|–|to)\s*(\d{1,3})\s*%?\s*[:=]\s*` + letterPattern),
		thresholdForm: regexp.MustCompile(`\bF\s*[:=]\s*(?:below|under|<)\s*(\d{1,3})\s*%?`),
		belowForm:     regexp.MustCompile(`(?i)\bbelow\s+(\d{1,3})\s*%?\s*[:=]\s*F\b`),
		minimumForm:   regexp.MustCompile(`\b` + letterPattern + `\s*[:=]\s*(\d{1,3})\s*%?\s*(?:\+|and above|or above|or higher)`),
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldGradingScale }

// Detect scans for canonical scale rows and reports the re-serialized scale
// when the strictness invariants hold.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldGradingScale)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("gradingscale_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	lines := textnorm.Lines(text)

	entries := make(map[string]string)
	firstLine := 0

	record := func(letter, value string, line int) {
		if !canonicalLetter(letter) {
			return
		}
		if _, seen := entries[letter]; seen {
			return // first occurrence wins
		}
		entries[letter] = value
		if firstLine == 0 || line < firstLine {
			firstLine = line
		}
	}

	for i, line := range lines {
		for _, g := range d.colonForm.FindAllStringSubmatch(line, -1) {
			if validRange(g[2], g[3]) {
				record(g[1], g[2]+"-"+g[3], i+1)
			}
		}
		for _, g := range d.rangeForm.FindAllStringSubmatch(line, -1) {
			if validRange(g[1], g[2]) {
				record(g[3], g[1]+"-"+g[2], i+1)
			}
		}
		for _, g := range d.thresholdForm.FindAllStringSubmatch(line, -1) {
			if validPercent(g[1]) {
				record("F", "below "+g[1], i+1)
			}
		}
		for _, g := range d.belowForm.FindAllStringSubmatch(line, -1) {
			if validPercent(g[1]) {
				record("F", "below "+g[1], i+1)
			}
		}
		for _, g := range d.minimumForm.FindAllStringSubmatch(line, -1) {
			if validPercent(g[2]) {
				record(g[1], g[2]+" and above", i+1)
			}
		}
	}

	_, hasA := entries["A"]
	_, hasF := entries["F"]
	accepted := hasA && hasF && len(entries) >= minDistinctLetters

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"letters":  len(entries),
			"accepted": accepted,
		})
	}

	if !accepted {
		return detector.NotFound(detector.FieldGradingScale)
	}

	var parts []string
	for _, letter := range CanonicalOrder {
		if v, ok := entries[letter]; ok {
			parts = append(parts, letter+": "+v)
		}
	}

	res = detector.Found(detector.FieldGradingScale, strings.Join(parts, ", "), scaleConfidence, firstLine)
	res.Metadata = map[string]string{"letters": fmt.Sprintf("%d", len(entries))}
	return res
}

func canonicalLetter(letter string) bool {
	for _, l := range CanonicalOrder {
		if l == letter {
			return true
		}
	}
	return false
}

func validPercent(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 100
}

func validRange(low, high string) bool {
	l, err1 := strconv.Atoi(low)
	h, err2 := strconv.Atoi(high)
	return err1 == nil && err2 == nil && l <= h && l >= 0 && h <= 110
}
