// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns uploaded syllabus files into plain text for the
// field detectors. Each preprocessor owns a set of file extensions; a
// Registry routes files to the first preprocessor that claims them.
package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"

	"syllabus-scan/internal/observability"
)

// ExtractedDocument represents text extracted from one syllabus file.
type ExtractedDocument struct {
	// Original file information
	OriginalPath string
	Filename     string

	// Extracted content
	Text string

	// Content metadata
	Format    string
	PageCount int
	WordCount int
	CharCount int
	LineCount int

	// Processing information
	ProcessorType string
	Success       bool
	Error         error
}

// Preprocessor interface defines methods for extracting text from files
type Preprocessor interface {
	// CanProcess checks if this preprocessor can handle the given file
	CanProcess(filePath string) bool

	// Process extracts text from the file
	Process(filePath string) (*ExtractedDocument, error)

	// GetName returns the name of this preprocessor
	GetName() string

	// GetSupportedExtensions returns the file extensions this preprocessor supports
	GetSupportedExtensions() []string

	// SetObserver sets the observability component
	SetObserver(observer *observability.StandardObserver)
}

// Registry routes files to preprocessors by extension. Registration order is
// claim order.
type Registry struct {
	preprocessors []Preprocessor
}

// NewRegistry creates an empty preprocessor registry.
func NewRegistry() *Registry {
	return &Registry{preprocessors: make([]Preprocessor, 0)}
}

// Register adds a preprocessor to the registry.
func (r *Registry) Register(p Preprocessor) {
	r.preprocessors = append(r.preprocessors, p)
}

// ForFile returns the first preprocessor claiming the file, or nil.
func (r *Registry) ForFile(filePath string) Preprocessor {
	for _, p := range r.preprocessors {
		if p.CanProcess(filePath) {
			return p
		}
	}
	return nil
}

// CanProcess reports whether any registered preprocessor claims the file.
func (r *Registry) CanProcess(filePath string) bool {
	return r.ForFile(filePath) != nil
}

// SupportedExtensions returns the union of all registered extensions.
func (r *Registry) SupportedExtensions() []string {
	seen := make(map[string]bool)
	var exts []string
	for _, p := range r.preprocessors {
		for _, ext := range p.GetSupportedExtensions() {
			if !seen[ext] {
				seen[ext] = true
				exts = append(exts, ext)
			}
		}
	}
	return exts
}

// SetObserver propagates the observer to every registered preprocessor.
func (r *Registry) SetObserver(observer *observability.StandardObserver) {
	for _, p := range r.preprocessors {
		p.SetObserver(observer)
	}
}

// ExtractText extracts text from the file via the owning preprocessor.
func (r *Registry) ExtractText(filePath string) (string, error) {
	p := r.ForFile(filePath)
	if p == nil {
		return "", fmt.Errorf("unsupported file type: %s", strings.ToLower(filepath.Ext(filePath)))
	}
	doc, err := p.Process(filePath)
	if err != nil {
		return "", err
	}
	if !doc.Success {
		if doc.Error != nil {
			return "", doc.Error
		}
		return "", fmt.Errorf("text extraction failed for %s", filepath.Base(filePath))
	}
	return doc.Text, nil
}

// RegisterDefaults registers the standard syllabus preprocessors: plain
// text, PDF, and DOCX.
func RegisterDefaults(r *Registry) {
	r.Register(NewPlainTextPreprocessor())
	r.Register(NewPDFPreprocessor())
	r.Register(NewDocxPreprocessor())
}

// fillCounts derives word/char/line counts from the extracted text.
func fillCounts(doc *ExtractedDocument) {
	doc.WordCount = len(strings.Fields(doc.Text))
	doc.CharCount = len(doc.Text)
	doc.LineCount = strings.Count(doc.Text, "\n") + 1
}
