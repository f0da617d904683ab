// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classlocation

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

func TestDetect_ClassRoomBeatsOfficeRoom(t *testing.T) {
	// The office room appears first but must never win.
	text := "Office Hours: Room 201\nClass Location: Room 105"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, "Room 105", res.Content)
	assert.Equal(t, 2, res.Line)
}

func TestDetect_OfficeRoomAloneIsRejected(t *testing.T) {
	text := "Office Hours: Mon 2-4 pm, Room 201, Kingsbury Hall"
	res := NewDetector().Detect(text)
	assert.False(t, res.Found)
}

func TestDetect_BuildingAndNumber(t *testing.T) {
	text := "We meet in Morrill Hall 312 on Tuesdays."
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, "Morrill Hall 312", res.Content)
}

func TestDetect_CourseCodeIsNotARoom(t *testing.T) {
	text := "COMP 405: Introduction to Databases\nFall semester overview."
	res := NewDetector().Detect(text)
	assert.False(t, res.Found)
}

func TestDetect_YearIsNotARoom(t *testing.T) {
	res := NewDetector().Detect("Fall 2025 Syllabus")
	assert.False(t, res.Found)
}

func TestDetect_ExplicitLabelBeatsBareCode(t *testing.T) {
	text := "Reference code AB-204 appears in the catalog.\n" +
		"Classroom: 117"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Contains(t, res.Content, "117")
}

func TestDetect_ReportedConfidenceStripsSelectionBoosts(t *testing.T) {
	// Selection uses large context boosts; the reported confidence must be
	// back on the 0-100 pattern scale.
	text := "Class Location: Room 105"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.LessOrEqual(t, res.Confidence, 100.0)
	assert.Greater(t, res.Confidence, 0.0)
}

func TestDetect_Idempotent(t *testing.T) {
	d := NewDetector()
	text := "Class meets in Room 14, Science Annex"
	assert.Equal(t, d.Detect(text), d.Detect(text))
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.FieldClassLocation, NewDetector().Name())
}
