// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "fmt"

// Canonical field names returned by the built-in detectors. The compliance
// layer keys its required-field sets off these strings.
const (
	FieldModality           = "modality"
	FieldClassLocation      = "class_location"
	FieldOfficeInformation  = "office_information"
	FieldInstructor         = "instructor"
	FieldEmail              = "email"
	FieldSLOs               = "slos"
	FieldGradingScale       = "grading_scale"
	FieldGradingProcess     = "grading_process"
	FieldAssignmentDelivery = "assignment_delivery"
	FieldAssignmentTypes    = "assignment_types"
	FieldCreditHours        = "credit_hours"
	FieldWorkload           = "workload"
	FieldLatePolicy         = "late_policy"
	FieldResponseTime       = "response_time"
	FieldPreferredContact   = "preferred_contact"
)

// Result is the outcome of running one field detector against one document.
// Invariant: Found=false implies Content is empty.
type Result struct {
	Field      string            `json:"field"`
	Found      bool              `json:"found"`
	Content    string            `json:"content,omitempty"`
	Confidence float64           `json:"confidence"`
	Line       int               `json:"line,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// FieldDetector is implemented by every per-field detector. Detect must be a
// pure function of its input: no shared mutable state, no I/O beyond
// observability logging, and no panics escaping to the caller. Empty input
// always yields a not-found result.
type FieldDetector interface {
	Name() string
	Detect(text string) Result
}

// NotFound returns the canonical "nothing detected" result for a field.
func NotFound(field string) Result {
	return Result{Field: field, Found: false}
}

// Found builds a positive result with the given content and confidence.
func Found(field, content string, confidence float64, line int) Result {
	return Result{
		Field:      field,
		Found:      true,
		Content:    content,
		Confidence: confidence,
		Line:       line,
	}
}

// RecoverTo converts a detector panic into a not-found result so that one
// malfunctioning detector never aborts processing of the remaining fields.
// The fault is preserved in metadata for the log layer; callers see an
// ordinary miss. Use in a deferred call with a named return:
//
//	func (d *Detector) Detect(text string) (res Result) {
//		defer RecoverTo(&res, FieldName)
//		...
//	}
func RecoverTo(res *Result, field string) {
	if r := recover(); r != nil {
		*res = NotFound(field)
		res.Metadata = map[string]string{
			"error": fmt.Sprintf("detector fault: %v", r),
		}
	}
}

// Truncate caps detector input at max characters. Pathological documents are
// truncated rather than rejected; the cap bounds worst-case regex cost.
func Truncate(text string, max int) string {
	if max > 0 && len(text) > max {
		return text[:max]
	}
	return text
}
