// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package compliance aggregates detector results into pass/fail reports
// against named required-field regimes. It owns alias normalization and the
// emptiness predicate; detectors know nothing about regimes or aliases.
package compliance

import (
	"strings"

	"syllabus-scan/internal/detector"
)

// Regime is a named set of required canonical fields defining one compliance
// standard. Required order is the report order for missing fields.
type Regime struct {
	Name     string   `yaml:"name"`
	Required []string `yaml:"required"`
}

// Report is the compliance outcome for one regime over one document.
type Report struct {
	Regime   string   `json:"regime"`
	Required []string `json:"required"`
	Missing  []string `json:"missing"`
	Waived   []string `json:"waived,omitempty"`
	OK       bool     `json:"ok"`
}

// WaiverChecker reports whether a missing field is covered by an approved
// waiver for a regime. A nil checker waives nothing.
type WaiverChecker interface {
	IsWaived(regime, field string) bool
}

// DefaultRegimes are the built-in accreditation standards. A config file may
// replace them.
var DefaultRegimes = []Regime{
	{
		Name: "NECHE",
		Required: []string{
			detector.FieldInstructor,
			detector.FieldEmail,
			detector.FieldOfficeInformation,
			detector.FieldModality,
			detector.FieldClassLocation,
			detector.FieldSLOs,
			detector.FieldGradingScale,
			detector.FieldGradingProcess,
			detector.FieldAssignmentTypes,
			detector.FieldCreditHours,
			detector.FieldWorkload,
			detector.FieldLatePolicy,
		},
	},
	{
		Name: "UNH-Minimal",
		Required: []string{
			detector.FieldInstructor,
			detector.FieldEmail,
			detector.FieldSLOs,
			detector.FieldGradingScale,
			detector.FieldCreditHours,
		},
	},
}

// aliases maps each canonical field to the alias keys that may carry its
// value. Normalization promotes the first non-empty alias only when the
// canonical value is itself empty. Only the aggregator consults this table.
var aliases = map[string][]string{
	"textbook":                       {"course_materials", "required_materials"},
	detector.FieldOfficeInformation:  {"office_info", "office"},
	detector.FieldSLOs:               {"student_learning_outcomes", "learning_outcomes", "course_objectives"},
	detector.FieldClassLocation:      {"classroom_location", "meeting_location"},
	detector.FieldGradingScale:       {"grade_scale"},
	detector.FieldGradingProcess:     {"grading_procedures", "grade_breakdown"},
	detector.FieldLatePolicy:         {"late_work_policy"},
	detector.FieldResponseTime:       {"email_response_time"},
	detector.FieldPreferredContact:   {"contact_preference", "preferred_contact_method"},
	detector.FieldAssignmentDelivery: {"submission_platform"},
}

// emptyPlaceholders are values that count as absent even when non-blank.
var emptyPlaceholders = map[string]bool{
	"not found": true,
	"n/a":       true,
	"none":      true,
}

// CanonicalKey lowercases a field name and converts separators to
// underscores so "Course Materials" and "course_materials" collide.
func CanonicalKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

// Empty is the emptiness predicate: blank after trim, or a placeholder
// string, counts as absent.
func Empty(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "" || emptyPlaceholders[v]
}

// Normalize canonicalizes keys and collapses aliases: a non-empty canonical
// value wins and its aliases are discarded; otherwise the first non-empty
// alias value is promoted to the canonical key. Alias keys never survive
// normalization. The input map is not modified.
func Normalize(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for name, value := range values {
		out[CanonicalKey(name)] = value
	}

	for canonical, aliasKeys := range aliases {
		for _, alias := range aliasKeys {
			aliasValue, present := out[alias]
			if !present {
				continue
			}
			delete(out, alias)
			if Empty(out[canonical]) && !Empty(aliasValue) {
				out[canonical] = aliasValue
			}
		}
	}
	return out
}

// Aggregate computes one Report per regime from the detector results,
// applying waivers to missing fields. A field is present when its detector
// found non-empty content after alias normalization.
func Aggregate(results map[string]detector.Result, regimes []Regime, waivers WaiverChecker) map[string]Report {
	values := make(map[string]string, len(results))
	for field, res := range results {
		if res.Found {
			values[field] = res.Content
		} else {
			values[field] = ""
		}
	}
	normalized := Normalize(values)

	reports := make(map[string]Report, len(regimes))
	for _, regime := range regimes {
		report := Report{
			Regime:   regime.Name,
			Required: regime.Required,
		}
		for _, field := range regime.Required {
			if !Empty(normalized[field]) {
				continue
			}
			if waivers != nil && waivers.IsWaived(regime.Name, field) {
				report.Waived = append(report.Waived, field)
				continue
			}
			report.Missing = append(report.Missing, field)
		}
		report.OK = len(report.Missing) == 0
		reports[regime.Name] = report
	}
	return reports
}
