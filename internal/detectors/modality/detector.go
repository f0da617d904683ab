// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package modality classifies how a course is delivered: Online, Hybrid,
// In-Person, or Unknown. Detection runs in three phases of decreasing
// certainty; below fixed score floors the detector reports Unknown rather
// than guess.
package modality

import (
	"regexp"
	"strings"

	"syllabus-scan/internal/detector"
	"syllabus-scan/internal/observability"
	"syllabus-scan/internal/sections"
	"syllabus-scan/internal/textnorm"
)

// Delivery labels.
const (
	Online   = "Online"
	Hybrid   = "Hybrid"
	InPerson = "In-Person"
	Unknown  = "Unknown"
)

const (
	maxInputChars = 30000

	// Conservative floors: if the winning bucket scores below minRawScore,
	// or carries less than minNormalizedScore of the total signal mass, the
	// document is Unknown. These encode a precision/recall tradeoff.
	minRawScore        = 2.0
	minNormalizedScore = 0.60

	// Both buckets must reach this before a hybrid combination is formed.
	hybridSignalFloor = 1.5

	definitiveConfidence = 95.0
)

// definitivePhrase is an unambiguous delivery declaration. The list is
// ordered so multi-signal labels (hybrid) are checked before single-signal
// ones (online): "hybrid course with online lectures" must not classify as
// pure online.
type definitivePhrase struct {
	phrase string
	label  string
}

// Detector implements detector.FieldDetector for course modality.
type Detector struct {
	definitive []definitivePhrase

	// Lines containing these words alongside "online" refer to materials,
	// not delivery ("online textbook resources").
	materialWords []string

	dayTimeRe  *regexp.Regexp
	roomRe     *regexp.Regexp
	meetToolRe *regexp.Regexp
	asyncRe    *regexp.Regexp
	noMeetRe   *regexp.Regexp

	observer *observability.StandardObserver
}

// NewDetector creates and returns a new modality Detector with its phrase
// lists and signal patterns.
func NewDetector() *Detector {
	return &Detector{
		definitive: []definitivePhrase{
			// Hybrid first: hybrid statements usually also contain "online".
			{"hybrid course", Hybrid},
			{"hybrid class", Hybrid},
			{"hybrid format", Hybrid},
			{"hybrid delivery", Hybrid},
			{"blended course", Hybrid},
			{"blended format", Hybrid},
			{"hyflex", Hybrid},
			{"partially online", Hybrid},

			{"100% online", Online},
			{"fully online", Online},
			{"completely online", Online},
			{"entirely online", Online},
			{"asynchronous online course", Online},
			{"online-only", Online},
			{"online only", Online},
			{"this is an online course", Online},
			{"this course is online", Online},
			{"this course is offered online", Online},
			{"delivered online", Online},
			{"location: online", Online},
			{"online course", Online},

			{"in-person course", InPerson},
			{"in person course", InPerson},
			{"face-to-face course", InPerson},
			{"face to face course", InPerson},
			{"meets in person", InPerson},
			{"in person only", InPerson},
			{"in-person only", InPerson},
			{"on-campus course", InPerson},
			{"taught in person", InPerson},
		},
		materialWords: []string{
			"textbook", "resource", "material", "library", "tutorial",
			"homework system", "e-book", "ebook",
		},
		dayTimeRe: regexp.MustCompile(`(?i)\b(?:mon(?:day)?|tue(?:s(?:day)?)?|wed(?:nesday)?|thu(?:r(?:s(?:day)?)?)?|fri(?:day)?|mwf|mw|tr|tth|t/th)\b.*?\b\d{1,2}:\d{2}\s*(?:a\.?m\.?|p\.?m\.?)?`),
		roomRe:    regexp.MustCompile(`(?i)\b(?:room|rm\.?|hall|building|bldg\.?)\s*#?\s*[A-Za-z]?\d{1,4}\b`),
		meetToolRe: regexp.MustCompile(`(?i)\b(?:zoom|microsoft teams|ms teams|webex|google meet|meeting link|join url)\b`),
		asyncRe:   regexp.MustCompile(`(?i)\basynchronous(?:ly)?\b|\bsynchronous online\b`),
		noMeetRe:  regexp.MustCompile(`(?i)no (?:scheduled|required) (?:class )?meetings?|does not meet in person`),
	}
}

// SetObserver sets the observability component.
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Name returns the canonical field key.
func (d *Detector) Name() string { return detector.FieldModality }

// Detect classifies the course delivery mode. An Unknown classification is
// reported as not found with zero confidence; known labels are returned as
// content with the normalized bucket confidence.
func (d *Detector) Detect(text string) (res detector.Result) {
	defer detector.RecoverTo(&res, detector.FieldModality)

	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("modality_detector", "detect", "")
	}

	label, confidence, line := d.Classify(text)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"label": label, "confidence": confidence})
	}

	if label == Unknown {
		res = detector.NotFound(detector.FieldModality)
		res.Metadata = map[string]string{"modality": Unknown}
		return res
	}

	res = detector.Found(detector.FieldModality, label, confidence, line)
	res.Metadata = map[string]string{"modality": label}
	return res
}

// Classify returns the delivery label, a 0-100 confidence, and the line of
// the deciding signal. Unknown always carries confidence 0.
func (d *Detector) Classify(text string) (string, float64, int) {
	text = detector.Truncate(text, maxInputChars)
	lines := textnorm.Lines(text)
	if len(lines) == 0 {
		return Unknown, 0, 0
	}

	// Phase 1: definitive declarative phrases.
	if label, line, ok := d.findDefinitive(lines); ok {
		return label, definitiveConfidence, line
	}

	// Phases 2+3: section-aware weighted scoring.
	online, inPerson := d.scoreSignals(lines)

	scores := map[string]float64{
		Online:   online,
		InPerson: inPerson,
	}
	if online >= hybridSignalFloor && inPerson >= hybridSignalFloor {
		scores[Hybrid] = (online + inPerson) * 0.75
	}

	best, max, sum := Unknown, 0.0, 0.0
	for label, s := range scores {
		sum += s
		if s > max {
			best, max = label, s
		}
	}

	if max < minRawScore || sum == 0 || max/sum < minNormalizedScore {
		return Unknown, 0, 0
	}
	return best, (max / sum) * 100, 0
}

// findDefinitive scans for declarative phrases, skipping online phrases on
// lines that talk about online materials rather than course delivery.
func (d *Detector) findDefinitive(lines []string) (string, int, bool) {
	for _, p := range d.definitive {
		for i, line := range lines {
			lower := strings.ToLower(line)
			if !strings.Contains(lower, p.phrase) {
				continue
			}
			if p.label == Online && d.mentionsMaterials(lower) {
				continue
			}
			return p.label, i + 1, true
		}
	}
	return "", 0, false
}

func (d *Detector) mentionsMaterials(lower string) bool {
	for _, w := range d.materialWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// scoreSignals accumulates weaker per-line signals into online and in-person
// buckets. Signals found inside office-hours context are penalized or
// ignored: an office room or an office-hours Zoom link describes how to
// reach the instructor, not how the course is delivered.
func (d *Detector) scoreSignals(lines []string) (online, inPerson float64) {
	for i, line := range lines {
		lower := strings.ToLower(line)
		ctx := sections.Classify(lines, i, 2)

		hasOnlineCue := strings.Contains(lower, "online") || d.meetToolRe.MatchString(line)

		if d.dayTimeRe.MatchString(line) && !hasOnlineCue && ctx != sections.Office {
			inPerson += 1.5
		}

		if d.roomRe.MatchString(line) {
			switch ctx {
			case sections.Class:
				inPerson += 2.0
			case sections.Office:
				// Physical room only inside the office-hours window.
				inPerson -= 1.0
			default:
				inPerson += 0.5
			}
		}

		if d.meetToolRe.MatchString(line) {
			switch ctx {
			case sections.Class:
				online += 2.0
			case sections.Office:
				// Office-hours Zoom carries no delivery signal.
			default:
				online += 0.75
			}
		}

		if d.asyncRe.MatchString(line) && !d.mentionsMaterials(lower) {
			online += 1.5
		}
		if d.noMeetRe.MatchString(line) {
			online += 1.5
		}
	}

	if online < 0 {
		online = 0
	}
	if inPerson < 0 {
		inPerson = 0
	}
	return online, inPerson
}
