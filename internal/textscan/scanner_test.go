// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textscan

import (
	"reflect"
	"strings"
	"testing"
)

func TestWindowAround(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name   string
		index  int
		before int
		after  int
		want   []string
	}{
		{"middle", 2, 1, 1, []string{"b", "c", "d"}},
		{"clamped start", 0, 2, 1, []string{"a", "b"}},
		{"clamped end", 4, 1, 3, []string{"d", "e"}},
		{"whole slice", 2, 10, 10, lines},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowAround(lines, tt.index, tt.before, tt.after)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WindowAround(%d,%d,%d) = %v, want %v", tt.index, tt.before, tt.after, got, tt.want)
			}
		})
	}

	if WindowAround(lines, -1, 1, 1) != nil {
		t.Error("expected nil for negative index")
	}
	if WindowAround(lines, 5, 1, 1) != nil {
		t.Error("expected nil for out-of-range index")
	}
}

func TestSplitIntoBlocks(t *testing.T) {
	lines := []string{"A: 90", "B: 80", "", "C: 70", "", ""}
	isBlank := func(s string) bool { return strings.TrimSpace(s) == "" }

	blocks := SplitIntoBlocks(lines, isBlank)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Start != 0 || len(blocks[0].Lines) != 2 {
		t.Errorf("unexpected first block: %+v", blocks[0])
	}
	if blocks[1].Start != 3 || blocks[1].Lines[0] != "C: 70" {
		t.Errorf("unexpected second block: %+v", blocks[1])
	}
}

func TestSplitIntoBlocks_AllBreaks(t *testing.T) {
	blocks := SplitIntoBlocks([]string{"", ""}, func(s string) bool { return true })
	if len(blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(blocks))
	}
}

func TestMergeSpans(t *testing.T) {
	spans := []Span{{Start: 8, End: 10}, {Start: 0, End: 3}, {Start: 2, End: 5}}

	merged := MergeSpans(spans, 0)
	want := []Span{{Start: 0, End: 5}, {Start: 8, End: 10}}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("MergeSpans = %v, want %v", merged, want)
	}
}

func TestMergeSpans_Slack(t *testing.T) {
	spans := []Span{{Start: 0, End: 3}, {Start: 5, End: 7}}

	merged := MergeSpans(spans, 2)
	if len(merged) != 1 || merged[0] != (Span{Start: 0, End: 7}) {
		t.Errorf("expected slack merge into one span, got %v", merged)
	}

	merged = MergeSpans(spans, 1)
	if len(merged) != 2 {
		t.Errorf("expected spans beyond slack to stay separate, got %v", merged)
	}
}

func TestMergeSpans_Empty(t *testing.T) {
	if MergeSpans(nil, 1) != nil {
		t.Error("expected nil for empty input")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(Span{Start: -2, End: 12}, 10); got != (Span{Start: 0, End: 10}) {
		t.Errorf("unexpected clamp: %v", got)
	}
	if got := Clamp(Span{Start: 8, End: 4}, 10); got.Start != got.End {
		t.Errorf("inverted span should collapse, got %v", got)
	}
}
