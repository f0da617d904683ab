// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package score implements the candidate-selection skeleton shared by most
// detectors: collect raw matches, filter by context, score with per-field
// weights, then pick the best candidate with an earliest-line tie-break.
package score

import "sort"

// Candidate is a provisional extracted span considered but not yet confirmed
// as a detector's output. It exists only within a single detector invocation.
type Candidate struct {
	Text  string
	Line  int
	Score float64
	Tags  map[string]bool
}

// NewCandidate builds a candidate for the given span and line.
func NewCandidate(text string, line int) Candidate {
	return Candidate{Text: text, Line: line, Tags: make(map[string]bool)}
}

// Tag records a context flag on the candidate.
func (c *Candidate) Tag(name string) {
	if c.Tags == nil {
		c.Tags = make(map[string]bool)
	}
	c.Tags[name] = true
}

// HasTag reports whether the candidate carries the given context flag.
func (c Candidate) HasTag(name string) bool {
	return c.Tags[name]
}

// Filter returns the candidates for which keep reports true.
func Filter(cands []Candidate, keep func(Candidate) bool) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// SelectBest returns the highest-scoring candidate. Ties break toward the
// earliest line, then toward the longer span. The second return is false
// when no candidates remain.
func SelectBest(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	sorted := make([]Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return len(sorted[i].Text) > len(sorted[j].Text)
	})
	return sorted[0], true
}

// Clamp bounds a confidence value to the 0-100 scale used throughout.
func Clamp(confidence float64) float64 {
	if confidence > 100 {
		return 100
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}
