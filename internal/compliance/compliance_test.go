// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syllabus-scan/internal/detector"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Course Materials", "course_materials"},
		{"  grading-scale  ", "grading_scale"},
		{"instructor", "instructor"},
		{"Student Learning Outcomes", "student_learning_outcomes"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalKey(tt.in), "CanonicalKey(%q)", tt.in)
	}
}

func TestEmpty(t *testing.T) {
	assert.True(t, Empty(""))
	assert.True(t, Empty("   "))
	assert.True(t, Empty("Not Found"))
	assert.True(t, Empty("N/A"))
	assert.True(t, Empty("none"))
	assert.False(t, Empty("Dr. Jane Smith"))
	assert.False(t, Empty("nonexistent")) // placeholder match is exact
}

func TestNormalize_AliasPromotedWhenCanonicalEmpty(t *testing.T) {
	out := Normalize(map[string]string{
		"textbook":         "",
		"Course Materials": "Biology 2e, OpenStax",
	})
	assert.Equal(t, "Biology 2e, OpenStax", out["textbook"])
	_, present := out["course_materials"]
	assert.False(t, present, "alias keys must not survive normalization")
}

func TestNormalize_CanonicalWinsOverAlias(t *testing.T) {
	out := Normalize(map[string]string{
		detector.FieldSLOs:  "Students will be able to analyze primary sources.",
		"course_objectives": "ignored",
	})
	assert.Equal(t, "Students will be able to analyze primary sources.", out[detector.FieldSLOs])
	_, present := out["course_objectives"]
	assert.False(t, present)
}

func TestNormalize_PlaceholderCanonicalYieldsToAlias(t *testing.T) {
	out := Normalize(map[string]string{
		detector.FieldLatePolicy: "not found",
		"late_work_policy":       "10% per day, capped at 50%.",
	})
	assert.Equal(t, "10% per day, capped at 50%.", out[detector.FieldLatePolicy])
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	in := map[string]string{"Office Info": "Room 201"}
	Normalize(in)
	assert.Equal(t, map[string]string{"Office Info": "Room 201"}, in)
}

type stubWaivers map[string]bool

func (s stubWaivers) IsWaived(regime, field string) bool {
	return s[regime+"/"+field]
}

func TestAggregate_MissingInRequiredOrder(t *testing.T) {
	regimes := []Regime{{
		Name: "UNH-Minimal",
		Required: []string{
			detector.FieldInstructor,
			detector.FieldEmail,
			detector.FieldSLOs,
			detector.FieldGradingScale,
			detector.FieldCreditHours,
		},
	}}
	results := map[string]detector.Result{
		detector.FieldInstructor:   {Field: detector.FieldInstructor, Found: true, Content: "Jane Smith"},
		detector.FieldEmail:        {Field: detector.FieldEmail, Found: false},
		detector.FieldSLOs:         {Field: detector.FieldSLOs, Found: true, Content: "Outcomes..."},
		detector.FieldGradingScale: {Field: detector.FieldGradingScale, Found: false},
	}

	reports := Aggregate(results, regimes, nil)
	report, ok := reports["UNH-Minimal"]
	require.True(t, ok)
	assert.Equal(t, []string{
		detector.FieldEmail,
		detector.FieldGradingScale,
		detector.FieldCreditHours,
	}, report.Missing)
	assert.False(t, report.OK)
	assert.Empty(t, report.Waived)
}

func TestAggregate_WaivedFieldsDoNotFail(t *testing.T) {
	regimes := []Regime{{
		Name:     "UNH-Minimal",
		Required: []string{detector.FieldInstructor, detector.FieldCreditHours},
	}}
	results := map[string]detector.Result{
		detector.FieldInstructor: {Field: detector.FieldInstructor, Found: true, Content: "Jane Smith"},
	}
	waivers := stubWaivers{"UNH-Minimal/" + detector.FieldCreditHours: true}

	report := Aggregate(results, regimes, waivers)["UNH-Minimal"]
	assert.True(t, report.OK)
	assert.Empty(t, report.Missing)
	assert.Equal(t, []string{detector.FieldCreditHours}, report.Waived)
}

func TestAggregate_WaiverScopedToRegime(t *testing.T) {
	regimes := []Regime{
		{Name: "NECHE", Required: []string{detector.FieldWorkload}},
		{Name: "UNH-Minimal", Required: []string{detector.FieldInstructor}},
	}
	waivers := stubWaivers{"NECHE/" + detector.FieldWorkload: true}

	reports := Aggregate(map[string]detector.Result{}, regimes, waivers)
	assert.True(t, reports["NECHE"].OK)
	assert.False(t, reports["UNH-Minimal"].OK)
	assert.Equal(t, []string{detector.FieldInstructor}, reports["UNH-Minimal"].Missing)
}

func TestAggregate_AliasedResultSatisfiesRequirement(t *testing.T) {
	regimes := []Regime{{
		Name:     "UNH-Minimal",
		Required: []string{detector.FieldSLOs},
	}}
	results := map[string]detector.Result{
		"course_objectives": {Field: "course_objectives", Found: true, Content: "Objectives..."},
	}

	report := Aggregate(results, regimes, nil)["UNH-Minimal"]
	assert.True(t, report.OK)
}

func TestAggregate_AllPresent(t *testing.T) {
	regimes := []Regime{{
		Name:     "UNH-Minimal",
		Required: []string{detector.FieldInstructor, detector.FieldEmail},
	}}
	results := map[string]detector.Result{
		detector.FieldInstructor: {Field: detector.FieldInstructor, Found: true, Content: "Jane Smith"},
		detector.FieldEmail:      {Field: detector.FieldEmail, Found: true, Content: "jsmith@unh.edu"},
	}

	report := Aggregate(results, regimes, nil)["UNH-Minimal"]
	assert.True(t, report.OK)
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Waived)
}

func TestDefaultRegimes(t *testing.T) {
	require.Len(t, DefaultRegimes, 2)
	assert.Equal(t, "NECHE", DefaultRegimes[0].Name)
	assert.Equal(t, "UNH-Minimal", DefaultRegimes[1].Name)
	for _, field := range DefaultRegimes[1].Required {
		assert.Contains(t, DefaultRegimes[0].Required, field,
			"UNH-Minimal must be a subset of NECHE")
	}
}
