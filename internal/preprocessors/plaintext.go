// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"syllabus-scan/internal/observability"
)

// maxPlainTextBytes caps how much of a text file is read. Syllabi are small;
// anything larger is truncated, not rejected.
const maxPlainTextBytes = 2 << 20

// PlainTextPreprocessor passes text files through so they ride the same
// pipeline as extracted formats.
type PlainTextPreprocessor struct {
	observer *observability.StandardObserver
}

// NewPlainTextPreprocessor creates a new plain text preprocessor
func NewPlainTextPreprocessor() *PlainTextPreprocessor {
	return &PlainTextPreprocessor{}
}

// SetObserver sets the observability component
func (p *PlainTextPreprocessor) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

// GetName returns the name of this preprocessor
func (p *PlainTextPreprocessor) GetName() string {
	return "Plain Text Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (p *PlainTextPreprocessor) GetSupportedExtensions() []string {
	return []string{".txt", ".text", ".md", ".markdown"}
}

// CanProcess checks if this preprocessor can handle the given file
func (p *PlainTextPreprocessor) CanProcess(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range p.GetSupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Process reads the file content as UTF-8 text.
func (p *PlainTextPreprocessor) Process(filePath string) (*ExtractedDocument, error) {
	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("plaintext_preprocessor", "process_file", filePath)
	}

	doc := &ExtractedDocument{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "Plain Text",
		ProcessorType: "plaintext",
	}

	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		doc.Error = fmt.Errorf("error reading text file: %w", err)
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": err.Error()})
		}
		return doc, doc.Error
	}
	if len(data) > maxPlainTextBytes {
		data = data[:maxPlainTextBytes]
	}

	if !utf8.Valid(data) {
		doc.Error = fmt.Errorf("file is not valid UTF-8 text: %s", doc.Filename)
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": "invalid utf-8"})
		}
		return doc, doc.Error
	}

	doc.Text = string(data)
	doc.Success = true
	fillCounts(doc)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"chars": doc.CharCount})
	}
	return doc, nil
}
