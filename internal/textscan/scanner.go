// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package textscan provides shared line-window utilities used by detectors
// that need multi-line context: bounded windows around a match, grouping of
// contiguous matching lines into logical blocks, and merging of overlapping
// character spans.
package textscan

import "sort"

// Block is a run of contiguous lines starting at Start in the original slice.
type Block struct {
	Start int
	Lines []string
}

// Span is a half-open [Start, End) index range.
type Span struct {
	Start int
	End   int
}

// WindowAround returns the lines from index-before to index+after inclusive,
// clamped to the bounds of the slice. An out-of-range index yields nil.
func WindowAround(lines []string, index, before, after int) []string {
	if index < 0 || index >= len(lines) {
		return nil
	}
	start := index - before
	if start < 0 {
		start = 0
	}
	end := index + after + 1
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}

// SpanAround returns the inclusive line-index span [index-radius,
// index+radius] clamped to [0, limit-1]. Keyword-window detectors collect
// these spans and merge them before scanning.
func SpanAround(index, radius, limit int) Span {
	s := Span{Start: index - radius, End: index + radius}
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > limit-1 {
		s.End = limit - 1
	}
	return s
}

// SplitIntoBlocks groups contiguous lines into blocks, breaking wherever
// isBreak reports true. Break lines are not included in any block. Used to
// turn a multi-line grading breakdown or outcome list into one logical unit.
func SplitIntoBlocks(lines []string, isBreak func(string) bool) []Block {
	var blocks []Block
	var current *Block
	for i, line := range lines {
		if isBreak(line) {
			current = nil
			continue
		}
		if current == nil {
			blocks = append(blocks, Block{Start: i})
			current = &blocks[len(blocks)-1]
		}
		current.Lines = append(current.Lines, line)
	}
	return blocks
}

// MergeSpans sorts spans and merges any that overlap or sit within slack of
// each other. Detectors that search only near anchor keywords merge their
// keyword windows first so a phrase straddling two windows is seen once.
func MergeSpans(spans []Span, slack int) []Span {
	if len(spans) == 0 {
		return nil
	}
	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := []Span{sorted[0]}
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End+slack {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// Clamp restricts a span to [0, limit).
func Clamp(s Span, limit int) Span {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > limit {
		s.End = limit
	}
	if s.Start > s.End {
		s.Start = s.End
	}
	return s
}
