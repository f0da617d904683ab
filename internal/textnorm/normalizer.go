// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Syllabi arrive from heterogeneous PDF/Word converters with inconsistent
// encodings, so every detector runs against the canonical form produced here.

var (
	bulletReplacer = strings.NewReplacer(
		"•", "-", // •
		"▪", "-", // ▪
		"‣", "-", // ‣
		"◦", "-", // ◦
		"·", "-", // ·
		"⁃", "-", // ⁃
	)

	horizontalSpaceRe = regexp.MustCompile(`[ \t\x{00a0}]+`)
	blankRunRe        = regexp.MustCompile(`\n{4,}`)
	trailingSpaceRe   = regexp.MustCompile(`[ \t]+\n`)
)

// Normalize canonicalizes document text: Unicode NFKC, bullet glyph variants
// to a single marker, CRLF to LF, runs of horizontal whitespace to one space,
// and runs of three or more blank lines to exactly one blank line.
// Empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = bulletReplacer.Replace(text)
	text = horizontalSpaceRe.ReplaceAllString(text, " ")
	text = trailingSpaceRe.ReplaceAllString(text, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// Lines normalizes text and splits it into lines. Most detectors operate
// line by line, so this is the common entry point.
func Lines(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, "\n")
}
