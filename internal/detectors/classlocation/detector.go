// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classlocation extracts the room where the class itself meets.
// The central hazard is mistaking the instructor's office for the classroom,
// so every candidate line is classified as CLASS, OFFICE, or NEUTRAL context
// first and OFFICE candidates are rejected outright.
package classlocation

import (
	"regexp"
	"strconv"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/score"
	"syllabus-scan/internal/sections"
	"syllabus-scan/internal/textnorm"
)

const (
	maxInputChars = 25000

	// Lexicographic selection weights: context beats explicit label beats
	// header position beats pattern confidence. Each tier dominates the sum
	// of everything below it.
	classContextBoost  = 1000.0
	explicitLabelBoost = 200.0
	headerBoost        = 50.0

	// Lines within this prefix of the document count as header position.
	headerLineCount = 12

	contextWindow = 2
)

// roomPattern is one ordered extraction pattern with its base confidence.
type roomPattern struct {
	name       string
	regex      *regexp.Regexp
	confidence float64
	explicit   bool // carries its own "room"/"classroom" label
}

// Detector implements detector.FieldDetector for the class meeting room.
type Detector struct {
	patterns []roomPattern

	// Department prefixes that turn "XXXX 405" into a course code, not a room.
	coursePrefixes map[string]bool

	yearRe *regexp.Regexp

	observer *observability.StandardObserver
}

// NewDetector creates a class-location Detector with its ordered room
// patterns. More explicit phrasings are listed first and carry higher base
// confidence.
func NewDetector() *Detector {
	return &Detector{
		patterns: []roomPattern{
			{
				name:       "explicit_room_label",
				regex:      regexp.MustCompile(`(?i)\b((?:class\s*room|classroom|room|rm\.?)\s*[:#]?\s*[A-Za-z]{0,4}[- ]?\d{1,4}[A-Za-z]?)\b`),
				confidence: 90,
				explicit:   true,
			},
			{
				name:       "building_and_number",
				regex:      regexp.MustCompile(`\b([A-Z][a-z]+(?:\s[A-Z][a-z]+)?\s(?:Hall|Building|Center|Centre|Library|Annex|Tower)\s*,?\s*(?:Room\s*)?#?\d{1,4}[A-Za-z]?)\b`),
				confidence: 85,
				explicit:   false,
			},
			{
				name:       "location_label",
				regex:      regexp.MustCompile(`(?i)\b(?:location|meets? in|held in)\s*[:]?\s*([A-Za-z]{1,4}[- ]?\d{1,4}[A-Za-z]?)\b`),
				confidence: 75,
				explicit:   false,
			},
			{
				name:       "letter_digit_code",
				regex:      regexp.MustCompile(`\b([A-Z]{1,4}[- ]\d{2,4}[A-Z]?)\b`),
				confidence: 55,
				explicit:   false,
			},
		},
		coursePrefixes: map[string]bool{
			"COMP": true, "MATH": true, "ENGL": true, "BIOL": true,
			"CHEM": true, "PHYS": true, "PSYC": true, "HIST": true,
			"NURS": true, "ANTH": true, "SOCI": true, "ECON": true,
			"ARTS": true, "MUSI": true, "PHIL": true, "SPAN": true,
			"EDUC": true, "BUS": true, "MGT": true, "ACCT": true,
			"CS": true, "IT": true, "EE": true, "ME": true,
		},
		yearRe: regexp.MustCompile(`\b(19|20)\d{2}\b`),
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldClassLocation }

// Detect extracts the class meeting room. Selection order: CLASS context
// beats NEUTRAL, then explicit label, then header position, then pattern
// confidence, then earliest line.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldClassLocation)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("classlocation_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	lines := textnorm.Lines(text)

	var candidates []score.Candidate
	for i, line := range lines {
		ctx := sections.Classify(lines, i, contextWindow)
		if ctx == sections.Office {
			// Office-context rooms are rejected outright, not just demoted.
			continue
		}

		for _, pattern := range d.patterns {
			for _, groups := range pattern.regex.FindAllStringSubmatch(line, -1) {
				room := strings.TrimSpace(groups[1])
				if room == "" || d.isExcluded(room) {
					continue
				}

				c := score.NewCandidate(room, i+1)
				c.Score = pattern.confidence
				if ctx == sections.Class {
					c.Score += classContextBoost
					c.Tag("class_context")
				}
				if pattern.explicit {
					c.Score += explicitLabelBoost
					c.Tag("explicit_label")
				}
				if i < headerLineCount {
					c.Score += headerBoost
					c.Tag("header_position")
				}
				c.Tag(pattern.name)
				candidates = append(candidates, c)
			}
		}
	}

	best, ok := score.SelectBest(candidates)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"candidates": len(candidates),
			"found":      ok,
		})
	}

	if !ok {
		return detector.NotFound(detector.FieldClassLocation)
	}

	// Strip selection boosts back off to report the pattern confidence.
	confidence := best.Score
	if best.HasTag("class_context") {
		confidence -= classContextBoost
	}
	if best.HasTag("explicit_label") {
		confidence -= explicitLabelBoost
	}
	if best.HasTag("header_position") {
		confidence -= headerBoost
	}

	res = detector.Found(detector.FieldClassLocation, best.Text, score.Clamp(confidence), best.Line)
	res.Metadata = map[string]string{"context": tagSummary(best)}
	return res
}

// isExcluded rejects spans that look like course codes or calendar years.
// "COMP 405" names the course, not a room; "Fall 2025" is not a room either.
func (d *Detector) isExcluded(room string) bool {
	if d.yearRe.MatchString(room) {
		return true
	}

	fields := strings.FieldsFunc(room, func(r rune) bool { return r == ' ' || r == '-' })
	if len(fields) == 2 && d.coursePrefixes[strings.ToUpper(fields[0])] {
		if n, err := strconv.Atoi(fields[1]); err == nil && n >= 100 && n <= 999 {
			return true
		}
	}
	return false
}

func tagSummary(c score.Candidate) string {
	var tags []string
	for _, t := range []string{"class_context", "explicit_label", "header_position"} {
		if c.HasTag(t) {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return "neutral"
	}
	return strings.Join(tags, ",")
}
