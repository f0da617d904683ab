// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package latepolicy

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

func TestDetect_LateWorkSection(t *testing.T) {
	text := "Late Work Policy:\n" +
		"Assignments lose 10% per calendar day.\n" +
		"No work accepted after one week.\n"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Contains(t, res.Content, "10% per calendar day")
	assert.Equal(t, 1, res.Line)
}

func TestDetect_MakeupVariant(t *testing.T) {
	text := "MAKE-UP POLICY\nMakeup exams require documentation from the Dean."
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Contains(t, res.Content, "documentation")
}

func TestDetect_ProseMentionRejected(t *testing.T) {
	text := "Students sometimes ask whether turning in late work during finals week changes their participation standing for the semester overall."
	res := NewDetector().Detect(text)
	assert.False(t, res.Found)
}

func TestDetect_Idempotent(t *testing.T) {
	d := NewDetector()
	text := "Late Submissions:\nOne free 48-hour extension per term."
	assert.Equal(t, d.Detect(text), d.Detect(text))
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.FieldLatePolicy, NewDetector().Name())
}
