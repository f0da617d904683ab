// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package instructor

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

func TestDetect_LabeledInstructor(t *testing.T) {
	res := NewDetector().Detect("Instructor: Dr. Jane Smith\nOffice: Kingsbury N229")
	require.True(t, res.Found)
	assert.Equal(t, "Jane Smith", res.Content)
	assert.Equal(t, labelConfidence, res.Confidence)
	assert.Equal(t, 1, res.Line)
	assert.Equal(t, "label_anchor", res.Metadata["tier"])
}

func TestDetect_HonorificWithoutLabel(t *testing.T) {
	res := NewDetector().Detect("Welcome! Prof. Maria Gonzalez will lead all sessions.")
	require.True(t, res.Found)
	assert.Equal(t, "Maria Gonzalez", res.Content)
}

func TestDetect_HeadingIsNotAName(t *testing.T) {
	// Title-case section headings must fail the name predicate.
	texts := []string{
		"Student Learning Outcomes",
		"Course Schedule",
		"Academic Integrity Policy",
		"GRADING SCALE",
	}
	d := NewDetector()
	for _, text := range texts {
		res := d.Detect(text)
		assert.False(t, res.Found, "heading %q must not be a name", text)
	}
}

func TestDetect_MiddleInitialAllowed(t *testing.T) {
	res := NewDetector().Detect("Instructor: Robert J. Miller")
	require.True(t, res.Found)
	assert.Equal(t, "Robert J. Miller", res.Content)
}

func TestDetect_FreeStandingNameLine(t *testing.T) {
	// No label, no honorific: a line holding nothing but a title-case name.
	text := "Karen Whitfield\nkwhitfield@unh.edu"
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, "Karen Whitfield", res.Content)
	assert.Equal(t, titleCaseConfidence, res.Confidence)
	assert.Equal(t, "title_case", res.Metadata["tier"])
}

func TestDetect_ProximityFallback(t *testing.T) {
	// A name buried in prose is only trusted next to an email address.
	text := "Please reach out to Karen Whitfield at kwhitfield@unh.edu."
	res := NewDetector().Detect(text)
	require.True(t, res.Found)
	assert.Equal(t, "Karen Whitfield", res.Content)
	assert.Equal(t, proximityConfidence, res.Confidence)
	assert.Equal(t, "email_office_proximity", res.Metadata["tier"])
}

func TestDetect_SurnameDictionaryInProse(t *testing.T) {
	// No label, no free-standing line, no contact anchor: an in-prose pair
	// is accepted only because its final token is a common surname.
	res := NewDetector().Detect("Taught this term by Jane Smith only.")
	require.True(t, res.Found)
	assert.Equal(t, "Jane Smith", res.Content)
	assert.Equal(t, dictionaryConfidence, res.Confidence)
	assert.Equal(t, "surname_dictionary", res.Metadata["tier"])
}

func TestDetect_SurnameDictionaryHonorific(t *testing.T) {
	// The honorific-plus-bare-surname form fails the two-token predicate
	// everywhere else; the dictionary tier picks it up.
	res := NewDetector().Detect("All lectures are given by Prof. Garcia in person.")
	require.True(t, res.Found)
	assert.Equal(t, "Garcia", res.Content)
	assert.Equal(t, "surname_dictionary", res.Metadata["tier"])
}

func TestDetect_UnknownSurnameInProseRejected(t *testing.T) {
	// Same prose shape, but the final token is not in the surname list.
	res := NewDetector().Detect("Taught this term by Epistemic Closure only.")
	assert.False(t, res.Found)
}

func TestDetect_SingleTokenRejected(t *testing.T) {
	res := NewDetector().Detect("Taught by: Socrates")
	assert.False(t, res.Found)
}

func TestDetect_Idempotent(t *testing.T) {
	d := NewDetector()
	text := "Instructor: Dr. Alice Chen"
	assert.Equal(t, d.Detect(text), d.Detect(text))
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.FieldInstructor, NewDetector().Name())
}
