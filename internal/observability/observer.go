// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver implements diagnostic observability for all components.
// Logging is the only side effect detectors are permitted; it is never
// behavioral.
type StandardObserver struct {
	level  ObservabilityLevel
	writer io.Writer
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates an observability component.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing for one operation.
func (o *StandardObserver) StartTiming(component, operation, document string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		o.LogOperation(ObservabilityData{
			Component:  component,
			Operation:  operation,
			Document:   document,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation logs operation data. JSON records are emitted only in debug
// mode; at the metrics level records are counted but not written.
func (o *StandardObserver) LogOperation(data ObservabilityData) {
	if o == nil || o.level == ObservabilityOff || o.writer == nil {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// ObservabilityData is the common record shape for all components.
type ObservabilityData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	RequestID  string                 `json:"request_id"`
	Document   string                 `json:"document,omitempty"`
	Field      string                 `json:"field,omitempty"`
	DurationMs int64                  `json:"duration_ms,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	Found      bool                   `json:"found,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
