// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package officeinfo extracts instructor office details: location, hours,
// and phone. The three sub-detectors are independent; each has its own
// ordered pattern list and validation rule, and the composed result is found
// when any sub-detector succeeds.
package officeinfo

import (
	"regexp"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/textnorm"
)

const (
	maxInputChars = 25000

	locationConfidence = 85.0
	hoursConfidence    = 85.0
	phoneConfidence    = 80.0
)

// Detector implements detector.FieldDetector for office information.
type Detector struct {
	locationPatterns []*regexp.Regexp
	hoursPatterns    []*regexp.Regexp
	phonePatterns    []*regexp.Regexp

	tbdRe      *regexp.Regexp
	nonDigitRe *regexp.Regexp

	observer *observability.StandardObserver
}

// NewDetector creates an office-information Detector with ordered pattern
// lists for each sub-detector.
func NewDetector() *Detector {
	return &Detector{
		locationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\boffice\s*(?:location)?\s*[:]\s*([A-Za-z][A-Za-z .']*?\s?#?[A-Za-z]?\d{1,4}[A-Za-z]?)\s*(?:$|[,;(])`),
			regexp.MustCompile(`(?i)\boffice\s+(?:is\s+)?(?:located\s+)?in\s+([A-Z][A-Za-z .']*?\s?\d{1,4}[A-Za-z]?)\b`),
			regexp.MustCompile(`(?i)\bmy\s+office\s*[:,]?\s*([A-Z][A-Za-z .']*?\s?\d{1,4}[A-Za-z]?)\b`),
		},
		hoursPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\boffice\s+hours?\s*[:]\s*(.+)$`),
			regexp.MustCompile(`(?i)\b(?:student|drop-?in)\s+hours?\s*[:]\s*(.+)$`),
			regexp.MustCompile(`(?i)\boffice\s+hours?\s+(?:are|will be)\s+(.+)$`),
		},
		phonePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:office\s+)?(?:phone|tel(?:ephone)?)\s*[:.]?\s*(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}|\d{3}[-.\s]?\d{4})`),
			regexp.MustCompile(`\b(\(\d{3}\)\s?\d{3}[-.\s]?\d{4})\b`),
			regexp.MustCompile(`\b(\d{3}[-.]\d{3}[-.]\d{4})\b`),
		},
		tbdRe:      regexp.MustCompile(`(?i)\boffice\s+hours?\s*[:]?\s*(?:tbd|tba|to be determined|to be announced|by appointment only)\b`),
		nonDigitRe: regexp.MustCompile(`\D`),
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldOfficeInformation }

// Detect composes the three sub-detectors into one result. The content is a
// semicolon-joined summary of whichever parts were found; each part is also
// reported separately in metadata.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldOfficeInformation)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("officeinfo_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	lines := textnorm.Lines(text)

	location, locLine := d.detectLocation(lines)
	hours, hoursLine := d.detectHours(lines)
	phone, phoneLine := d.detectPhone(lines)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"location_found": location != "",
			"hours_found":    hours != "",
			"phone_found":    phone != "",
		})
	}

	var parts []string
	metadata := make(map[string]string)
	confidence, line := 0.0, 0

	record := func(label, value string, conf float64, at int) {
		if value == "" {
			return
		}
		parts = append(parts, label+": "+value)
		metadata[label] = value
		if conf > confidence {
			confidence = conf
		}
		if line == 0 || (at > 0 && at < line) {
			line = at
		}
	}

	record("location", location, locationConfidence, locLine)
	record("hours", hours, hoursConfidence, hoursLine)
	record("phone", phone, phoneConfidence, phoneLine)

	if len(parts) == 0 {
		return detector.NotFound(detector.FieldOfficeInformation)
	}

	res = detector.Found(detector.FieldOfficeInformation, strings.Join(parts, "; "), confidence, line)
	res.Metadata = metadata
	return res
}

// detectLocation finds the office room via the ordered location patterns.
func (d *Detector) detectLocation(lines []string) (string, int) {
	for _, re := range d.locationPatterns {
		for i, line := range lines {
			if groups := re.FindStringSubmatch(line); groups != nil {
				loc := strings.TrimSpace(groups[1])
				if loc != "" {
					return loc, i + 1
				}
			}
		}
	}
	return "", 0
}

// detectHours finds office hours. A "TBD"-style literal short-circuits
// detection before the generic patterns run: the syllabus has an office-hours
// statement, but its value is the placeholder itself.
func (d *Detector) detectHours(lines []string) (string, int) {
	for i, line := range lines {
		if d.tbdRe.MatchString(line) {
			return "TBD", i + 1
		}
	}
	for _, re := range d.hoursPatterns {
		for i, line := range lines {
			if groups := re.FindStringSubmatch(line); groups != nil {
				hours := strings.TrimSpace(groups[1])
				if hours != "" {
					return hours, i + 1
				}
			}
		}
	}
	return "", 0
}

// detectPhone finds an office phone number. A candidate is accepted only if
// it normalizes to exactly 7 or 10 digits (11 with a leading 1).
func (d *Detector) detectPhone(lines []string) (string, int) {
	for _, re := range d.phonePatterns {
		for i, line := range lines {
			for _, groups := range re.FindAllStringSubmatch(line, -1) {
				raw := strings.TrimSpace(groups[1])
				if d.validPhone(raw) {
					return raw, i + 1
				}
			}
		}
	}
	return "", 0
}

func (d *Detector) validPhone(raw string) bool {
	digits := d.nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		digits = digits[1:]
	}
	return len(digits) == 7 || len(digits) == 10
}
