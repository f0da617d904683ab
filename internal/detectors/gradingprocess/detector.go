// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package gradingprocess captures grading breakdowns that are not canonical
// A-F scales: weighted percent lists, point tables, and local percentage
// clusters near assignment labels. It complements the strict grading-scale
// detector.
//
// The algorithm is two-stage: first find the best rough window of contiguous
// signal lines, then trim that window down to the signal lines plus minimal
// context so a short inline breakdown is captured without dragging in the
// surrounding paragraph.
package gradingprocess

import (
	"fmt"
	"regexp"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/textnorm"
	"syllabus-scan/internal/textscan"
)

const (
	maxInputChars = 30000

	// A window needs at least this many percent/points lines.
	minSignalLines = 2

	// Bonus when an anchor keyword appears in or just around the window.
	anchorBonus  = 2.0
	anchorReach  = 2
	shortContext = 70 // max length of a kept adjacent context line

	baseConfidence  = 55.0
	perSignalWeight = 5.0
)

// Detector implements detector.FieldDetector for grading breakdowns.
type Detector struct {
	percentRe    *regexp.Regexp
	pointsRe     *regexp.Regexp
	assignmentRe *regexp.Regexp
	anchorRe     *regexp.Regexp
	headingRe    *regexp.Regexp

	observer *observability.StandardObserver
}

// NewDetector creates a grading-process Detector.
func NewDetector() *Detector {
	return &Detector{
		percentRe:    regexp.MustCompile(`\d{1,3}\s*%`),
		pointsRe:     regexp.MustCompile(`(?i)\b\d{1,4}\s*(?:points?|pts\.?)\b`),
		assignmentRe: regexp.MustCompile(`(?i)\b(?:exams?|quiz(?:zes)?|homework|projects?|papers?|participation|midterms?|finals?|labs?|discussions?|presentations?|portfolio|attendance)\b`),
		anchorRe:     regexp.MustCompile(`(?i)\b(?:grade|grading|graded|assessment|evaluation)\b`),
		headingRe:    regexp.MustCompile(`(?i)^[A-Za-z &/-]{3,50}:?\s*$`),
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldGradingProcess }

// Detect finds the densest cluster of grading-signal lines and returns the
// trimmed block.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldGradingProcess)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("gradingprocess_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	lines := textnorm.Lines(text)

	marked := d.markLines(lines)

	// Stage 1: rough windows of contiguous marked lines, blank lines break.
	blocks := textscan.SplitIntoBlocks(lines, func(line string) bool {
		return strings.TrimSpace(line) == ""
	})

	bestScore, bestSignals := 0.0, 0
	var bestBlock textscan.Block
	for _, block := range blocks {
		signals := 0
		for i := range block.Lines {
			if marked[block.Start+i] {
				signals++
			}
		}
		if signals < minSignalLines {
			continue
		}
		s := float64(signals)
		if d.anchorNear(lines, block.Start, block.Start+len(block.Lines)) {
			s += anchorBonus
		}
		if s > bestScore {
			bestScore, bestSignals, bestBlock = s, signals, block
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"windows": len(blocks),
			"found":   bestScore > 0,
		})
	}

	if bestScore == 0 {
		return detector.NotFound(detector.FieldGradingProcess)
	}

	// Stage 2: trim the window down to signal lines plus minimal context.
	content, line := d.trim(lines, bestBlock, marked)

	confidence := baseConfidence + float64(bestSignals)*perSignalWeight
	if confidence > 95 {
		confidence = 95
	}

	res = detector.Found(detector.FieldGradingProcess, content, confidence, line)
	res.Metadata = map[string]string{"signal_lines": fmt.Sprintf("%d", bestSignals)}
	return res
}

// markLines flags each line carrying a percent, points, or assignment-label
// signal. Assignment labels count only alongside a number so a prose mention
// of "homework" alone is not a signal.
func (d *Detector) markLines(lines []string) map[int]bool {
	marked := make(map[int]bool)
	for i, line := range lines {
		hasPercent := d.percentRe.MatchString(line)
		hasPoints := d.pointsRe.MatchString(line)
		if hasPercent || hasPoints {
			marked[i] = true
			continue
		}
		if d.assignmentRe.MatchString(line) && strings.ContainsAny(line, "0123456789") {
			marked[i] = true
		}
	}
	return marked
}

// anchorNear reports whether an anchor keyword appears inside the window or
// within anchorReach lines of it.
func (d *Detector) anchorNear(lines []string, start, end int) bool {
	lo, hi := start-anchorReach, end+anchorReach
	if lo < 0 {
		lo = 0
	}
	if hi > len(lines) {
		hi = len(lines)
	}
	for _, line := range lines[lo:hi] {
		if d.anchorRe.MatchString(line) {
			return true
		}
	}
	return false
}

// trim keeps only the signal lines of the winning window plus one short
// adjacent context line on each side of each signal run, then optionally
// prepends a heading line found directly above the window.
func (d *Detector) trim(lines []string, block textscan.Block, marked map[int]bool) (string, int) {
	keep := make(map[int]bool)
	for i := range block.Lines {
		idx := block.Start + i
		if !marked[idx] {
			continue
		}
		keep[idx] = true
		for _, adj := range []int{idx - 1, idx + 1} {
			if adj < block.Start || adj >= block.Start+len(block.Lines) {
				continue
			}
			trimmed := strings.TrimSpace(lines[adj])
			if trimmed != "" && len(trimmed) <= shortContext {
				keep[adj] = true
			}
		}
	}

	var kept []string
	first := 0
	for i := range block.Lines {
		idx := block.Start + i
		if keep[idx] {
			kept = append(kept, strings.TrimSpace(lines[idx]))
			if first == 0 {
				first = idx + 1
			}
		}
	}

	// A header-like line just above the window labels the whole block. Skip
	// over the blank line that terminated the previous block.
	for above := block.Start - 1; above >= 0 && above >= block.Start-2; above-- {
		heading := strings.TrimSpace(lines[above])
		if heading == "" {
			continue
		}
		if d.headingRe.MatchString(heading) {
			kept = append([]string{heading}, kept...)
			first = above + 1
		}
		break
	}

	return strings.Join(kept, "\n"), first
}
