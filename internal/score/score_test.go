// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package score

import "testing"

func TestSelectBest_HighestScore(t *testing.T) {
	cands := []Candidate{
		{Text: "low", Line: 1, Score: 40},
		{Text: "high", Line: 9, Score: 85},
		{Text: "mid", Line: 3, Score: 60},
	}

	best, ok := SelectBest(cands)
	if !ok {
		t.Fatal("expected a winner")
	}
	if best.Text != "high" {
		t.Errorf("expected highest score to win, got %q", best.Text)
	}
}

func TestSelectBest_TieBreaksToEarliestLine(t *testing.T) {
	cands := []Candidate{
		{Text: "later", Line: 20, Score: 70},
		{Text: "earlier", Line: 5, Score: 70},
	}

	best, _ := SelectBest(cands)
	if best.Text != "earlier" {
		t.Errorf("expected earliest line on tie, got %q", best.Text)
	}
}

func TestSelectBest_TieBreaksToLongerText(t *testing.T) {
	cands := []Candidate{
		{Text: "Rm 5", Line: 5, Score: 70},
		{Text: "Room 105, Science Hall", Line: 5, Score: 70},
	}

	best, _ := SelectBest(cands)
	if best.Text != "Room 105, Science Hall" {
		t.Errorf("expected longer span on full tie, got %q", best.Text)
	}
}

func TestSelectBest_Empty(t *testing.T) {
	if _, ok := SelectBest(nil); ok {
		t.Error("expected no winner from empty input")
	}
}

func TestSelectBest_DoesNotMutateInput(t *testing.T) {
	cands := []Candidate{
		{Text: "b", Line: 2, Score: 10},
		{Text: "a", Line: 1, Score: 90},
	}
	SelectBest(cands)
	if cands[0].Text != "b" {
		t.Error("input slice order changed")
	}
}

func TestFilter(t *testing.T) {
	cands := []Candidate{
		{Text: "keep", Score: 80},
		{Text: "drop", Score: 10},
	}
	kept := Filter(cands, func(c Candidate) bool { return c.Score >= 50 })
	if len(kept) != 1 || kept[0].Text != "keep" {
		t.Errorf("unexpected filter result: %v", kept)
	}
}

func TestTags(t *testing.T) {
	c := NewCandidate("x", 1)
	if c.HasTag("office") {
		t.Error("fresh candidate should carry no tags")
	}
	c.Tag("office")
	if !c.HasTag("office") {
		t.Error("tag not recorded")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(150) != 100 {
		t.Error("expected clamp to 100")
	}
	if Clamp(-5) != 0 {
		t.Error("expected clamp to 0")
	}
	if Clamp(72.5) != 72.5 {
		t.Error("in-range value should pass through")
	}
}
