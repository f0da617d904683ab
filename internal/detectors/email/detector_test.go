// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

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

func TestDetect_LabeledEduAddress(t *testing.T) {
	res := NewDetector().Detect("Email: jane.smith@unh.edu")
	require.True(t, res.Found)
	assert.Equal(t, "jane.smith@unh.edu", res.Content)
	assert.GreaterOrEqual(t, res.Confidence, 90.0)
	assert.Equal(t, 1, res.Line)
}

func TestDetect_EduBeatsCommercial(t *testing.T) {
	text := "Backup contact: jsmith@gmail.com\nInstructor email: jsmith@unh.edu"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, "jsmith@unh.edu", res.Content)
}

func TestDetect_PlaceholderRejected(t *testing.T) {
	res := NewDetector().Detect("Email template: yourname@example.com")
	assert.False(t, res.Found)
}

func TestDetect_GenericOfficeAccountDemoted(t *testing.T) {
	text := "Questions about enrollment: registrar@unh.edu\nReach me at mchan@unh.edu"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, "mchan@unh.edu", res.Content)
}

func TestDetect_GenericAccountAloneStillReported(t *testing.T) {
	// A demoted office address still outranks nothing.
	res := NewDetector().Detect("For login trouble write support@school.org anytime.")
	require.True(t, res.Found)
	assert.Equal(t, "support@school.org", res.Content)
	assert.Less(t, res.Confidence, 60.0)
}

func TestDetect_Idempotent(t *testing.T) {
	d := NewDetector()
	text := "Instructor: jlo@college.edu"
	assert.Equal(t, d.Detect(text), d.Detect(text))
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.FieldEmail, NewDetector().Name())
}
