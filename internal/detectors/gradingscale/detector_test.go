// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gradingscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syllabus-scan/internal/detector"
)

func TestDetect_EmptyInput(t *testing.T) {
	res := NewDetector().Detect("")
	assert.False(t, res.Found)
	assert.Empty(t, res.Content)
}

func TestDetect_FullScale(t *testing.T) {
	text := "Grading Scale\n" +
		"A: 93-100\n" +
		"B: 85-92\n" +
		"C: 77-84\n" +
		"D: 70-76\n" +
		"F: below 70\n"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, "A: 93-100, B: 85-92, C: 77-84, D: 70-76, F: below 70", res.Content)
	assert.Equal(t, scaleConfidence, res.Confidence)
	assert.Equal(t, 2, res.Line)
}

func TestDetect_CanonicalOrderRegardlessOfInputOrder(t *testing.T) {
	// Rows listed F-first must still serialize A-first.
	text := "F = below 60\nD = 60-69\nC = 70-79\nB = 80-89\nA = 90-100"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, "A: 90-100, B: 80-89, C: 70-79, D: 60-69, F: below 60", res.Content)
}

func TestDetect_RangeFirstForm(t *testing.T) {
	text := "90-100% = A\n80-89% = B\n70-79% = C\nbelow 70 = F"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Contains(t, res.Content, "A: 90-100")
	assert.Contains(t, res.Content, "F: below 70")
}

func TestDetect_TwoLettersRejected(t *testing.T) {
	// A partial scale never passes the strictness invariants.
	text := "A: 90-100\nF: below 60"
	res := NewDetector().Detect(text)
	assert.False(t, res.Found)
}

func TestDetect_NoARejected(t *testing.T) {
	text := "B: 85-92\nC: 77-84\nD: 70-76\nF: below 70"
	res := NewDetector().Detect(text)
	assert.False(t, res.Found)
}

func TestDetect_NoFRejected(t *testing.T) {
	text := "A: 93-100\nB: 85-92\nC: 77-84\nD: 70-76"
	res := NewDetector().Detect(text)
	assert.False(t, res.Found)
}

func TestDetect_PlusMinusScale(t *testing.T) {
	text := "A: 93-100\nA-: 90-92\nB+: 87-89\nB: 83-86\nC: 73-79\nF: below 60"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, "A: 93-100, A-: 90-92, B+: 87-89, B: 83-86, C: 73-79, F: below 60", res.Content)
}

func TestDetect_InvalidRangeIgnored(t *testing.T) {
	// 900-1000 is not a percentage range.
	text := "A: 900-1000\nB: 85-92\nC: 77-84\nD: 70-76\nF: below 70"
	res := NewDetector().Detect(text)
	assert.False(t, res.Found) // A row invalid, so no A in the scale
}

func TestDetect_FirstOccurrenceWins(t *testing.T) {
	text := "A: 93-100\nA: 90-100\nB: 85-92\nC: 77-84\nF: below 70"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Contains(t, res.Content, "A: 93-100")
	assert.NotContains(t, res.Content, "A: 90-100")
}

func TestDetect_Idempotent(t *testing.T) {
	d := NewDetector()
	text := "A: 90-100\nB: 80-89\nC: 70-79\nF: below 70"
	assert.Equal(t, d.Detect(text), d.Detect(text))
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.FieldGradingScale, NewDetector().Name())
}
