// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package workload extracts the expected weekly time-commitment statement.
// Like credithours it uses an ordered template list, most specific phrasing
// first, with the first matching template winning at its earliest position.
package workload

import (
	"regexp"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/textnorm"
)

const maxInputChars = 25000

type template struct {
	name       string
	regex      *regexp.Regexp
	confidence float64
}

// Detector implements detector.FieldDetector for workload expectations.
type Detector struct {
	templates []template

	observer *observability.StandardObserver
}

// NewDetector creates a workload Detector with its ordered templates.
func NewDetector() *Detector {
	t := func(name, pattern string, confidence float64) template {
		return template{name: name, regex: regexp.MustCompile(`(?i)` + pattern), confidence: confidence}
	}
	return &Detector{
		templates: []template{
			// Federal-definition phrasing quoted by many syllabi.
			t("engaged_time_per_credit_semester", `\b(?:a\s+)?minimum\s+of\s+\d{1,2}\s+hours\s+of\s+(?:engaged|student)\s+(?:time|work|effort)\s+per\s+week\s+per\s+credit(?:\s+(?:hour\s+)?over\s+a\s+\d{1,2}[- ]week\s+(?:semester|term))?`, 95),
			t("hours_per_week_per_credit", `\b\d{1,2}\s+hours?\s+(?:of\s+\w+\s+)?per\s+week\s+per\s+credit(?:\s+hour)?\b`, 90),
			t("expect_hours_range", `\b(?:expect|plan)\s+(?:to\s+spend\s+)?(?:approximately\s+|about\s+|around\s+)?\d{1,2}\s*(?:-|–|to)\s*\d{1,2}\s+hours?\s+(?:per|a|each)\s+week\b`, 85),
			t("hours_range_per_week", `\b\d{1,2}\s*(?:-|–|to)\s*\d{1,2}\s+hours?\s+(?:per|a|each)\s+week\b`, 80),
			t("hours_per_week", `\b(?:approximately\s+|about\s+|around\s+|at\s+least\s+)?\d{1,2}\s+hours?\s+(?:per|a|each)\s+week\b`, 70),
			t("hours_per_credit", `\b\d{1,2}\s+hours?\s+per\s+credit(?:\s+hour)?\b`, 60),
			t("weekly_hours_label", `\b(?:weekly\s+)?(?:time\s+commitment|workload)\s*[:=]\s*\d{1,2}(?:\s*(?:-|–|to)\s*\d{1,2})?\s+hours?\b`, 85),
		},
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldWorkload }

// Detect returns the earliest match of the highest-ranked template.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldWorkload)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("workload_detector", "detect", "")
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

		res = detector.Found(detector.FieldWorkload, content, tmpl.confidence, line)
		res.Metadata = map[string]string{"template": tmpl.name}
		return res
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"template": ""})
	}
	return detector.NotFound(detector.FieldWorkload)
}
