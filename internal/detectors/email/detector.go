// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package email extracts the instructor's contact email address.
package email

import (
	"regexp"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/score"
	"syllabus-scan/internal/textnorm"
)

const (
	maxInputChars = 20000

	baseConfidence = 60.0

	eduDomainBoost   = 20.0
	labelBoost       = 15.0
	headerBoost      = 10.0
	genericAccount   = -25.0
	placeholderScore = -100.0

	headerLineCount = 15
)

// Detector implements detector.FieldDetector for the instructor email.
type Detector struct {
	emailRe *regexp.Regexp
	labelRe *regexp.Regexp

	// Account names that belong to offices, not instructors.
	genericAccounts []string
	// Placeholder addresses that are never real contacts.
	placeholderParts []string

	observer *observability.StandardObserver
}

// NewDetector creates an email Detector.
func NewDetector() *Detector {
	return &Detector{
		emailRe: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		labelRe: regexp.MustCompile(`(?i)\b(?:e-?mail|contact|instructor|professor|mailto)\b`),
		genericAccounts: []string{
			"registrar", "admissions", "helpdesk", "help.desk", "support",
			"info", "noreply", "donotreply", "webmaster", "postmaster",
			"library", "bookstore", "disability", "title.ix", "titleix",
		},
		placeholderParts: []string{
			"example.com", "example.org", "test.com", "domain.com",
			"email.com", "university.edu", "school.edu", "yourname",
		},
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldEmail }

// Detect extracts the most plausible instructor email: .edu addresses and
// label-adjacent addresses outrank bare mentions, office accounts are
// demoted, placeholders rejected.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldEmail)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("email_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	lines := textnorm.Lines(text)

	var candidates []score.Candidate
	for i, line := range lines {
		for _, addr := range d.emailRe.FindAllString(line, -1) {
			c := score.NewCandidate(addr, i+1)
			c.Score = baseConfidence
			lower := strings.ToLower(addr)

			if d.isPlaceholder(lower) {
				c.Score += placeholderScore
			}
			if strings.HasSuffix(lower[strings.LastIndex(lower, "@"):], ".edu") {
				c.Score += eduDomainBoost
				c.Tag("edu_domain")
			}
			if d.labelRe.MatchString(line) {
				c.Score += labelBoost
				c.Tag("labeled")
			}
			if i < headerLineCount {
				c.Score += headerBoost
				c.Tag("header_position")
			}
			if d.isGenericAccount(lower) {
				c.Score += genericAccount
				c.Tag("generic_account")
			}

			if c.Score > 0 {
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
		return detector.NotFound(detector.FieldEmail)
	}

	res = detector.Found(detector.FieldEmail, best.Text, score.Clamp(best.Score), best.Line)
	return res
}

func (d *Detector) isPlaceholder(lower string) bool {
	for _, part := range d.placeholderParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

func (d *Detector) isGenericAccount(lower string) bool {
	account := lower
	if at := strings.Index(lower, "@"); at >= 0 {
		account = lower[:at]
	}
	for _, g := range d.genericAccounts {
		if strings.Contains(account, g) {
			return true
		}
	}
	return false
}
