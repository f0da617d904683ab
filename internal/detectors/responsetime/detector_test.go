// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package responsetime

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

func TestDetect_ReplyCommitment(t *testing.T) {
	res := NewDetector().Detect("I respond to email within 24 hours on weekdays.")
	require.True(t, res.Found)
	assert.Equal(t, "I respond to email within 24 hours on weekdays.", res.Content)
	assert.Equal(t, replyVerbConfidence, res.Confidence)
	assert.Equal(t, 1, res.Line)
}

func TestDetect_ContactWindowWithoutReplyVerb(t *testing.T) {
	text := "Contacting Me\nAllow 2 business days for a reaction to messages."
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, baseConfidence, res.Confidence)
}

func TestDetect_DurationOutsideContactWindowIgnored(t *testing.T) {
	// A bare duration with no contact keyword nearby is never scanned.
	res := NewDetector().Detect("The exam lasts 3 hours.\nBring a calculator.")
	assert.False(t, res.Found)
}

func TestDetect_DeadlineIsNotReplyTime(t *testing.T) {
	text := "Email questions any time.\nAssignments are due within 48 hours of posting."
	res := NewDetector().Detect(text)
	assert.False(t, res.Found)
}

func TestDetect_HotlineIsNotReplyTime(t *testing.T) {
	text := "Contact the crisis hotline, available 24 hours a day."
	res := NewDetector().Detect(text)
	assert.False(t, res.Found)
}

func TestDetect_TechSupportSLAIsNotReplyTime(t *testing.T) {
	text := "For login problems contact the help desk; tickets are answered within 4 hours."
	res := NewDetector().Detect(text)
	assert.False(t, res.Found)
}

func TestDetect_VagueStatementRejected(t *testing.T) {
	res := NewDetector().Detect("I reply to messages as soon as I can, usually within 48 hours.")
	assert.False(t, res.Found)
}

func TestDetect_EmailDigitsAreNotADuration(t *testing.T) {
	// The digits in an address must not read as "24 hours".
	res := NewDetector().Detect("Email me at support24hr@school.edu with questions.")
	assert.False(t, res.Found)
}

func TestDetect_Idempotent(t *testing.T) {
	d := NewDetector()
	text := "Expect a reply to email within one business day."
	assert.Equal(t, d.Detect(text), d.Detect(text))
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.FieldResponseTime, NewDetector().Name())
}
