// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package titleblock implements the shared section-title detection used by
// the SLO, late-policy, and assignment-types detectors: find a line that
// looks like a heading for one of a fixed set of approved titles, score it
// for header-likeness, and capture the block of lines beneath it.
package titleblock

import (
	"regexp"
	"strings"

	"syllabus-scan/internal/score"
)

const (
	// A heading must reach this score; prose mentions of a title fall short.
	MinTitleScore = 5.0

	// Block capture stops after this many lines past the heading, or once
	// the accumulated content reaches the length cap.
	MaxBlockLines    = 10
	maxContentLength = 1200
	shortLineWords   = 8
	longLineWords    = 14
	anchorWordSlack  = 3
)

// Heading score components.
const (
	containsTitleScore   = 3.0
	startsWithTitleBonus = 4.0
	shortLineBonus       = 2.0
	colonBonus           = 2.0
	allCapsBonus         = 2.0
	longLinePenalty      = -3.0
)

var punctStripRe = regexp.MustCompile(`[^\w\s&/-]`)

// Extractor finds one approved-title section in a document.
type Extractor struct {
	titles []string
}

// New creates an Extractor for the given approved titles. Titles are
// matched case-insensitively after punctuation stripping.
func New(titles []string) *Extractor {
	lowered := make([]string, len(titles))
	for i, t := range titles {
		lowered[i] = strings.ToLower(t)
	}
	return &Extractor{titles: lowered}
}

// Block is a captured section: the heading line plus following content.
type Block struct {
	Heading string
	Content string
	Line    int // 1-based heading line
	Score   float64
}

// Extract locates the best approved-title heading and captures its block.
// ok is false when no line both contains an approved title and clears the
// header-likeness threshold.
func (e *Extractor) Extract(lines []string) (Block, bool) {
	var candidates []score.Candidate
	for i, line := range lines {
		title, ok := e.matchTitle(line)
		if !ok {
			continue
		}
		s := e.scoreHeading(line, title)
		if s < MinTitleScore {
			continue
		}
		c := score.NewCandidate(line, i+1)
		c.Score = s
		candidates = append(candidates, c)
	}

	best, ok := score.SelectBest(candidates)
	if !ok {
		return Block{}, false
	}

	heading := strings.TrimSpace(best.Text)
	body := e.captureBlock(lines, best.Line-1)

	content := heading
	if body != "" {
		content += "\n" + body
	}
	return Block{
		Heading: heading,
		Content: content,
		Line:    best.Line,
		Score:   best.Score,
	}, true
}

// matchTitle reports whether the line contains an approved title and
// satisfies at least one header-likeness heuristic.
func (e *Extractor) matchTitle(line string) (string, bool) {
	stripped := strings.TrimSpace(punctStripRe.ReplaceAllString(line, ""))
	lower := strings.ToLower(stripped)
	if lower == "" {
		return "", false
	}

	for _, title := range e.titles {
		if !strings.Contains(lower, title) {
			continue
		}
		if e.headerLike(line, stripped, lower, title) {
			return title, true
		}
	}
	return "", false
}

// headerLike applies the header heuristics: short line with a colon, OR
// all-caps, OR exact word-count match with no sentence-ending punctuation,
// OR the title anchored at line start/end within a small word-count slack.
func (e *Extractor) headerLike(original, stripped, lower, title string) bool {
	words := len(strings.Fields(stripped))
	titleWords := len(strings.Fields(title))

	if words <= shortLineWords && strings.Contains(original, ":") {
		return true
	}
	if isAllCaps(stripped) {
		return true
	}
	trimmed := strings.TrimSpace(original)
	if words == titleWords && !strings.ContainsAny(suffix(trimmed), ".!?") {
		return true
	}
	if (strings.HasPrefix(lower, title) || strings.HasSuffix(lower, title)) &&
		words <= titleWords+anchorWordSlack {
		return true
	}
	return false
}

// scoreHeading ranks a matching line for header quality.
func (e *Extractor) scoreHeading(line, title string) float64 {
	stripped := strings.TrimSpace(punctStripRe.ReplaceAllString(line, ""))
	lower := strings.ToLower(stripped)
	words := len(strings.Fields(stripped))

	s := containsTitleScore
	if strings.HasPrefix(lower, title) {
		s += startsWithTitleBonus
	}
	if words <= shortLineWords {
		s += shortLineBonus
	}
	if words > longLineWords {
		s += longLinePenalty
	}
	if strings.Contains(line, ":") {
		s += colonBonus
	}
	if isAllCaps(stripped) {
		s += allCapsBonus
	}
	return s
}

// captureBlock collects up to MaxBlockLines lines after the heading,
// stopping early at the content-length cap or the next recognized section
// header.
func (e *Extractor) captureBlock(lines []string, headingIdx int) string {
	var captured []string
	total := 0
	for i := headingIdx + 1; i < len(lines) && len(captured) < MaxBlockLines; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			if len(captured) > 0 {
				break
			}
			continue
		}
		if looksLikeSectionHeader(line) {
			break
		}
		total += len(line)
		if total > maxContentLength {
			break
		}
		captured = append(captured, line)
	}
	return strings.Join(captured, "\n")
}

// looksLikeSectionHeader recognizes the start of the next section: a short
// all-caps line, or a short line ending with a colon.
func looksLikeSectionHeader(line string) bool {
	words := len(strings.Fields(line))
	if words == 0 || words > shortLineWords {
		return false
	}
	if strings.HasSuffix(line, ":") {
		return true
	}
	return isAllCaps(line)
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func suffix(s string) string {
	if s == "" {
		return s
	}
	return s[len(s)-1:]
}
