// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package instructor extracts the instructor's name through a chain of
// fallbacks of decreasing reliability: label-anchored lines first, then
// free-standing title-case sequences, then proximity to email/office lines,
// then a common-surname dictionary. A strict name-validity predicate guards
// every path so section headings never pass as names.
package instructor

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

	labelConfidence      = 90.0
	titleCaseConfidence  = 60.0
	proximityConfidence  = 70.0
	dictionaryConfidence = 55.0

	// Only the document prefix is searched in the fallback passes; syllabi
	// name the instructor up front, and deep-document names are usually
	// authors or historical figures.
	fallbackLineLimit = 40
)

// Detector implements detector.FieldDetector for the instructor name.
type Detector struct {
	labelRe     *regexp.Regexp
	honorificRe *regexp.Regexp
	nameSeqRe   *regexp.Regexp
	surnameRe   *regexp.Regexp
	emailLineRe *regexp.Regexp
	officeRe    *regexp.Regexp

	// Words that disqualify a token sequence from being a personal name.
	stopwords map[string]bool

	observer *observability.StandardObserver
}

// NewDetector creates an instructor Detector.
func NewDetector() *Detector {
	return &Detector{
		labelRe:     regexp.MustCompile(`(?i)\b(?:instructor|professor|taught by|lecturer|faculty)\s*[:]\s*((?:Dr\.|Prof\.|Professor|Mr\.|Ms\.|Mrs\.)?\s*[A-Za-z .'-]+?)\s*(?:$|[,;(])`),
		honorificRe: regexp.MustCompile(`\b(?:Dr|Prof|Professor|Mr|Ms|Mrs)\.?\s+([A-Z][a-z]+(?:\s[A-Z][a-z]+){0,2})\b`),
		nameSeqRe:   regexp.MustCompile(`\b([A-Z][a-z]+(?:\s[A-Z]\.?)?(?:\s[A-Z][a-z]+){1,2})\b`),
		surnameRe:   regexp.MustCompile(`\b(?:Dr|Prof|Professor|Mr|Ms|Mrs)\.?\s+([A-Z][a-z]+)\b`),
		emailLineRe: regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		officeRe:    regexp.MustCompile(`(?i)\boffice\b`),
		stopwords: map[string]bool{
			"course": true, "syllabus": true, "university": true,
			"college": true, "department": true, "office": true,
			"hours": true, "spring": true, "fall": true, "summer": true,
			"winter": true, "semester": true, "online": true,
			"introduction": true, "advanced": true, "general": true,
			"learning": true, "outcomes": true, "grading": true,
			"policy": true, "policies": true, "academic": true,
			"integrity": true, "student": true, "students": true,
			"required": true, "textbook": true, "schedule": true,
			"location": true, "room": true, "hall": true, "center": true,
			"monday": true, "tuesday": true, "wednesday": true,
			"thursday": true, "friday": true, "saturday": true, "sunday": true,
		},
		observer: nil,
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldInstructor }

// Detect extracts the instructor name. Each fallback tier only runs when
// every earlier tier produced no valid candidate.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldInstructor)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("instructor_detector", "detect", "")
	}

	text = detector.Truncate(text, maxInputChars)
	lines := textnorm.Lines(text)

	tiers := []struct {
		name string
		run  func([]string) []score.Candidate
	}{
		{"label_anchor", d.labelCandidates},
		{"title_case", d.titleCaseCandidates},
		{"email_office_proximity", d.proximityCandidates},
		{"surname_dictionary", d.dictionaryCandidates},
	}

	var best score.Candidate
	var tier string
	found := false
	for _, t := range tiers {
		if c, ok := score.SelectBest(t.run(lines)); ok {
			best, tier, found = c, t.name, true
			break
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"found": found, "tier": tier})
	}

	if !found {
		return detector.NotFound(detector.FieldInstructor)
	}

	res = detector.Found(detector.FieldInstructor, best.Text, best.Score, best.Line)
	res.Metadata = map[string]string{"tier": tier}
	return res
}

// labelCandidates extracts names from explicitly labeled instructor lines
// and honorific-prefixed mentions.
func (d *Detector) labelCandidates(lines []string) []score.Candidate {
	var out []score.Candidate
	for i, line := range lines {
		if groups := d.labelRe.FindStringSubmatch(line); groups != nil {
			if name, ok := d.validName(groups[1]); ok {
				c := score.NewCandidate(name, i+1)
				c.Score = labelConfidence
				out = append(out, c)
			}
		}
		if groups := d.honorificRe.FindStringSubmatch(line); groups != nil {
			if name, ok := d.validName(groups[1]); ok {
				c := score.NewCandidate(name, i+1)
				c.Score = labelConfidence - 5
				out = append(out, c)
			}
		}
	}
	return out
}

// titleCaseCandidates finds free-standing two/three-token title-case lines
// in the document prefix. The line must consist of the name alone: names
// embedded in prose are left to the proximity and dictionary tiers, which
// demand corroborating evidence before trusting them.
func (d *Detector) titleCaseCandidates(lines []string) []score.Candidate {
	var out []score.Candidate
	for i, line := range lines {
		if i >= fallbackLineLimit {
			break
		}
		for _, groups := range d.nameSeqRe.FindAllStringSubmatch(line, -1) {
			if strings.TrimSpace(line) != groups[1] {
				continue
			}
			if name, ok := d.validName(groups[1]); ok {
				c := score.NewCandidate(name, i+1)
				c.Score = titleCaseConfidence
				out = append(out, c)
			}
		}
	}
	return out
}

// proximityCandidates looks for valid names on or adjacent to lines that
// carry an email address or office reference.
func (d *Detector) proximityCandidates(lines []string) []score.Candidate {
	var out []score.Candidate
	for i, line := range lines {
		if i >= fallbackLineLimit {
			break
		}
		if !d.emailLineRe.MatchString(line) && !d.officeRe.MatchString(line) {
			continue
		}
		for _, j := range []int{i, i - 1, i + 1} {
			if j < 0 || j >= len(lines) {
				continue
			}
			for _, groups := range d.nameSeqRe.FindAllStringSubmatch(lines[j], -1) {
				if name, ok := d.validName(groups[1]); ok {
					c := score.NewCandidate(name, j+1)
					c.Score = proximityConfidence
					out = append(out, c)
				}
			}
		}
	}
	return out
}

// dictionaryCandidates trusts the embedded common-surname list where the
// structural tiers refuse: in-prose title-case pairs whose final token is a
// known surname, and the honorific-plus-bare-surname form ("Prof. Garcia")
// that the name predicate rejects for having a single token.
func (d *Detector) dictionaryCandidates(lines []string) []score.Candidate {
	names := loadLastNames()
	var out []score.Candidate
	for i, line := range lines {
		if i >= fallbackLineLimit {
			break
		}
		for _, groups := range d.nameSeqRe.FindAllStringSubmatch(line, -1) {
			name, ok := d.validName(groups[1])
			if !ok {
				continue
			}
			tokens := strings.Fields(name)
			if names[strings.ToLower(tokens[len(tokens)-1])] {
				c := score.NewCandidate(name, i+1)
				c.Score = dictionaryConfidence
				out = append(out, c)
			}
		}
		for _, groups := range d.surnameRe.FindAllStringSubmatch(line, -1) {
			surname := groups[1]
			if d.stopwords[strings.ToLower(surname)] {
				continue
			}
			if names[strings.ToLower(surname)] {
				c := score.NewCandidate(surname, i+1)
				c.Score = dictionaryConfidence
				out = append(out, c)
			}
		}
	}
	return out
}

// validName applies the strict name-validity predicate: 2-3 title-case
// alphabetic tokens (a middle initial is allowed), no stopwords, no
// ALL-CAPS tokens, no apostrophes or digits. Honorifics are stripped before
// validation and not counted.
func (d *Detector) validName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	for _, prefix := range []string{"Dr.", "Dr", "Prof.", "Prof", "Professor", "Mr.", "Ms.", "Mrs."} {
		if strings.HasPrefix(name, prefix+" ") {
			name = strings.TrimSpace(strings.TrimPrefix(name, prefix+" "))
			break
		}
	}
	if strings.ContainsAny(name, "'’0123456789") {
		return "", false
	}

	tokens := strings.Fields(name)
	if len(tokens) < 2 || len(tokens) > 3 {
		return "", false
	}
	for _, tok := range tokens {
		if isMiddleInitial(tok) {
			continue
		}
		if d.stopwords[strings.ToLower(tok)] {
			return "", false
		}
		if tok == strings.ToUpper(tok) {
			return "", false // ALL-CAPS heading token
		}
		if !titleCaseAlpha(tok) {
			return "", false
		}
	}
	return name, true
}

func isMiddleInitial(tok string) bool {
	return len(tok) <= 2 && len(tok) >= 1 &&
		tok[0] >= 'A' && tok[0] <= 'Z' &&
		(len(tok) == 1 || tok[1] == '.')
}

func titleCaseAlpha(tok string) bool {
	if len(tok) < 2 || tok[0] < 'A' || tok[0] > 'Z' {
		return false
	}
	for _, r := range tok[1:] {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
