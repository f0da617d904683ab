// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package assignmentdelivery

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

func TestDetect_SinglePlatform(t *testing.T) {
	res := NewDetector().Detect("All homework is submitted through Canvas.")
	require.True(t, res.Found)
	assert.Equal(t, "Canvas", res.Content)
	assert.GreaterOrEqual(t, res.Confidence, minConfidenceFloor)
}

func TestDetect_MultiPlatformSet(t *testing.T) {
	res := NewDetector().Detect("Submit homework on MyCourses; Mastering A&P")
	require.True(t, res.Found)
	assert.Equal(t, "Mastering A&P; MyCourses", res.Content)
	assert.Equal(t, "Mastering A&P,MyCourses", res.Metadata["platforms"])
}

func TestDetect_SpecificBeatsGeneric(t *testing.T) {
	// "Canvas (MyCourses)" is one platform, not Canvas plus MyCourses.
	res := NewDetector().Detect("Assignments are due in Canvas (MyCourses) each Friday.")
	require.True(t, res.Found)
	assert.Equal(t, "Canvas (MyCourses)", res.Content)
}

func TestDetect_DuplicatesCollapse(t *testing.T) {
	text := "Quizzes live in Canvas.\nExams are also in canvas.\nUpload essays to Canvas."
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, "Canvas", res.Content)
}

func TestDetect_DeliveryVerbRaisesConfidence(t *testing.T) {
	d := NewDetector()
	bare := d.Detect("The Moodle page hosts the readings.")
	verbed := d.Detect("Upload all essays to Moodle.")
	require.True(t, bare.Found)
	require.True(t, verbed.Found)
	assert.Greater(t, verbed.Confidence, bare.Confidence)
}

func TestDetect_NoPlatformMentioned(t *testing.T) {
	res := NewDetector().Detect("Turn in your essays at the start of class.")
	assert.False(t, res.Found)
}

func TestDetect_Idempotent(t *testing.T) {
	d := NewDetector()
	text := "Homework: complete problem sets on WebAssign and Gradescope."
	assert.Equal(t, d.Detect(text), d.Detect(text))
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.FieldAssignmentDelivery, NewDetector().Name())
}
