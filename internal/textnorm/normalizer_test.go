// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textnorm

import (
	"strings"
	"testing"
)

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("expected empty output for empty input, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	input := "Oﬃce  Hours:\t Mon 2–4\r\n\r\n\r\n\r\n• Bring questions"
	once := Normalize(input)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("normalization not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestNormalize_Bullets(t *testing.T) {
	input := "• First\n▪ Second\n‣ Third\n◦ Fourth"
	got := Normalize(input)
	if strings.ContainsAny(got, "•▪‣◦") {
		t.Errorf("bullet glyphs survived normalization: %q", got)
	}
	if strings.Count(got, "- ") != 4 {
		t.Errorf("expected 4 dash bullets, got %q", got)
	}
}

func TestNormalize_CRLF(t *testing.T) {
	got := Normalize("line one\r\nline two\rline three")
	if strings.Contains(got, "\r") {
		t.Errorf("carriage returns survived: %q", got)
	}
	if len(strings.Split(got, "\n")) != 3 {
		t.Errorf("expected 3 lines, got %q", got)
	}
}

func TestNormalize_HorizontalWhitespace(t *testing.T) {
	got := Normalize("Instructor:\t\t  Dr. Smith")
	if got != "Instructor: Dr. Smith" {
		t.Errorf("expected collapsed whitespace, got %q", got)
	}
}

func TestNormalize_BlankRuns(t *testing.T) {
	got := Normalize("top\n\n\n\n\n\nbottom")
	if got != "top\n\nbottom" {
		t.Errorf("expected a single blank line, got %q", got)
	}
}

func TestNormalize_NFKC(t *testing.T) {
	// The "ﬁ" ligature decomposes under NFKC.
	got := Normalize("Oﬃce")
	if got != "Office" {
		t.Errorf("expected NFKC folding, got %q", got)
	}
}

func TestLines(t *testing.T) {
	lines := Lines("a\nb\nc")
	if len(lines) != 3 || lines[1] != "b" {
		t.Errorf("unexpected lines: %v", lines)
	}
	if Lines("") != nil {
		t.Error("expected nil for empty input")
	}
}
