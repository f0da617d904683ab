// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/detectors/assignmentdelivery"
	"syllabus-scan/internal/detectors/assignmenttypes"
	"syllabus-scan/internal/detectors/classlocation"
	"syllabus-scan/internal/detectors/credithours"
	"syllabus-scan/internal/detectors/email"
	"syllabus-scan/internal/detectors/gradingprocess"
	"syllabus-scan/internal/detectors/gradingscale"
	"syllabus-scan/internal/detectors/instructor"
	"syllabus-scan/internal/detectors/latepolicy"
	"syllabus-scan/internal/detectors/modality"
	"syllabus-scan/internal/detectors/officeinfo"
	"syllabus-scan/internal/detectors/preferredcontact"
	"syllabus-scan/internal/detectors/responsetime"
	"syllabus-scan/internal/detectors/slo"
	"syllabus-scan/internal/detectors/workload"
	"syllabus-scan/internal/help"
	"syllabus-scan/internal/observability"
)

// observableDetector is the constructed shape shared by every built-in
// detector: a FieldDetector that also reports help info and accepts an
// observer.
type observableDetector interface {
	detector.FieldDetector
	help.Provider
	SetObserver(observer *observability.StandardObserver)
}

// allDetectors instantiates the full detector battery in canonical field
// order.
func allDetectors() []observableDetector {
	return []observableDetector{
		instructor.NewDetector(),
		email.NewDetector(),
		officeinfo.NewDetector(),
		modality.NewDetector(),
		classlocation.NewDetector(),
		slo.NewDetector(),
		gradingscale.NewDetector(),
		gradingprocess.NewDetector(),
		assignmentdelivery.NewDetector(),
		assignmenttypes.NewDetector(),
		credithours.NewDetector(),
		workload.NewDetector(),
		latepolicy.NewDetector(),
		responsetime.NewDetector(),
		preferredcontact.NewDetector(),
	}
}

// BuildDetectorSet constructs the detector battery filtered by the enabled
// fields map, keyed by canonical field name. Pass nil for observer to run
// without observability.
func BuildDetectorSet(enabledFields map[string]bool, observer *observability.StandardObserver) map[string]detector.FieldDetector {
	result := make(map[string]detector.FieldDetector)
	for _, d := range allDetectors() {
		if !enabledFields[d.Name()] {
			continue
		}
		d.SetObserver(observer)
		result[d.Name()] = d
	}
	return result
}

// HelpProviders returns help providers for every built-in detector in
// canonical field order.
func HelpProviders() []help.Provider {
	detectors := allDetectors()
	providers := make([]help.Provider, 0, len(detectors))
	for _, d := range detectors {
		providers = append(providers, d)
	}
	return providers
}

// AllFieldNames returns every built-in field name in canonical order.
func AllFieldNames() []string {
	detectors := allDetectors()
	names := make([]string, 0, len(detectors))
	for _, d := range detectors {
		names = append(names, d.Name())
	}
	return names
}
