// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sections classifies syllabus lines into class-meeting, office, or
// neutral contexts. The class/office distinction is the critical
// disambiguation shared by the modality and class-location detectors: an
// office-hours room is not a classroom, and a Zoom link under "office hours"
// says nothing about how the course itself is delivered.
package sections

import (
	"strings"

	"syllabus-scan/internal/textscan"
)

// Context is the classification of a line's surroundings.
type Context int

const (
	Neutral Context = iota
	Class
	Office
)

func (c Context) String() string {
	switch c {
	case Class:
		return "class"
	case Office:
		return "office"
	default:
		return "neutral"
	}
}

// ClassKeywords mark class-meeting contexts.
var ClassKeywords = []string{
	"class location", "class meets", "class meeting", "classroom",
	"meeting time", "meeting location", "meeting place", "lecture",
	"class time", "class schedule", "course meets", "we meet",
	"meets in", "held in", "section meets", "lab location", "lab meets",
	"class held", "course location",
}

// OfficeKeywords mark office and support-service contexts. A room extracted
// from one of these contexts must never be reported as the class location.
var OfficeKeywords = []string{
	"office hours", "office location", "office:", "my office",
	"instructor office", "faculty office", "office phone",
	"student hours", "drop-in hours", "drop in hours",
	"tutoring center", "tutoring", "writing center", "learning center",
	"advising", "counseling", "health services", "disability services",
	"accessibility services", "title ix", "help desk", "it support",
	"tech support", "dean of students",
}

// ClassifyLine classifies a single line in isolation. Office keywords win
// over class keywords when both appear, matching the precision bias of the
// detectors that consume this: rejecting a good candidate is cheaper than
// reporting an office room as a classroom.
func ClassifyLine(line string) Context {
	lower := strings.ToLower(line)
	for _, kw := range OfficeKeywords {
		if strings.Contains(lower, kw) {
			return Office
		}
	}
	for _, kw := range ClassKeywords {
		if strings.Contains(lower, kw) {
			return Class
		}
	}
	return Neutral
}

// Classify determines the context of line index using the current line first
// and, when that is neutral, a bounded window of surrounding lines. The
// nearest non-neutral line in the window decides.
func Classify(lines []string, index, window int) Context {
	if ctx := ClassifyLine(lines[index]); ctx != Neutral {
		return ctx
	}
	for dist := 1; dist <= window; dist++ {
		for _, i := range []int{index - dist, index + dist} {
			if i < 0 || i >= len(lines) {
				continue
			}
			if ctx := ClassifyLine(lines[i]); ctx != Neutral {
				return ctx
			}
		}
	}
	return Neutral
}

// FindSection locates the first line containing any of the given keywords
// and returns a span covering that line plus up to extent following lines,
// stopping early at the next blank line beyond the header. ok is false when
// no keyword appears.
func FindSection(lines []string, keywords []string, extent int) (textscan.Span, bool) {
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			end := i + 1
			for end < len(lines) && end <= i+extent {
				if strings.TrimSpace(lines[end]) == "" {
					break
				}
				end++
			}
			return textscan.Span{Start: i, End: end}, true
		}
	}
	return textscan.Span{}, false
}
