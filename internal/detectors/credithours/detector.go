// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package credithours extracts the course credit-hour statement. Templates
// are ordered most specific first and the first template to match anywhere
// in the document wins at its earliest position, so no scoring pass is
// needed.
package credithours

import (
	"regexp"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/textnorm"
)

const maxInputChars = 25000

// template couples a credit-hours phrasing with the confidence it carries.
// More specific phrasings rank higher and are checked first.
type template struct {
	name       string
	regex      *regexp.Regexp
	confidence float64
}

// Detector implements detector.FieldDetector for credit hours.
type Detector struct {
	templates []template

	observer *observability.StandardObserver
}

// NewDetector creates a credit-hours Detector with its ordered templates.
func NewDetector() *Detector {
	t := func(name, pattern string, confidence float64) template {
		return template{name: name, regex: regexp.MustCompile(`(?i)` + pattern), confidence: confidence}
	}
	return &Detector{
		templates: []template{
			t("labeled_credit_hours", `\bcredit\s+hours?\s*[:=]\s*\d{1,2}(?:\.\d)?\b`, 95),
			t("number_credit_hours", `\b\d{1,2}(?:\.\d)?\s*credit\s+hours?\b`, 90),
			t("labeled_credits", `\bcredits?\s*[:=]\s*\d{1,2}(?:\.\d)?\b`, 85),
			t("hyphenated_credit", `\b\d{1,2}[- ]credit\s+(?:course|class|seminar|lab)\b`, 85),
			t("number_credits", `\b\d{1,2}(?:\.\d)?\s*credits?\b`, 75),
			t("worth_credits", `\bworth\s+\d{1,2}\s+(?:credit|semester|quarter)\s+hours?\b`, 75),
			t("spelled_credits", `\b(?:one|two|three|four|five|six)\s+credit(?:\s+hours?)?\b`, 65),
		},
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldCreditHours }

// Detect returns the earliest match of the highest-ranked template.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldCreditHours)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("credithours_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	normalized := textnorm.Normalize(text)

	for _, tmpl := range d.templates {
		loc := tmpl.regex.FindStringIndex(normalized)
		if loc == nil {
			continue
		}
		content := strings.TrimSpace(normalized[loc[0]:loc[1]])
		line := 1 + strings.Count(normalized[:loc[0]], "\n")

		if finishTiming != nil {
			finishTiming(true, map[string]interface{}{"template": tmpl.name})
		}

		res = detector.Found(detector.FieldCreditHours, content, tmpl.confidence, line)
		res.Metadata = map[string]string{"template": tmpl.name}
		return res
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"template": ""})
	}
	return detector.NotFound(detector.FieldCreditHours)
}
