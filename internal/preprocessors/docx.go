// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"syllabus-scan/internal/observability"
)

// DocxPreprocessor extracts text from Word syllabi. A .docx file is a zip
// archive; the body lives in word/document.xml and is flattened by stripping
// markup while converting paragraph and table structure to line breaks and
// tabs, so "Instructor:" and its table-cell value stay on one line.
type DocxPreprocessor struct {
	observer *observability.StandardObserver

	tableCellRe *regexp.Regexp
	tableTagRe  *regexp.Regexp
	tableRowRe  *regexp.Regexp
	rowTagRe    *regexp.Regexp
	paragraphRe *regexp.Regexp
	breakRe     *regexp.Regexp
	tagRe       *regexp.Regexp
}

// NewDocxPreprocessor creates a new DOCX preprocessor
func NewDocxPreprocessor() *DocxPreprocessor {
	return &DocxPreprocessor{
		tableCellRe: regexp.MustCompile(`</w:tc>\s*<w:tc[^>]*>`),
		tableTagRe:  regexp.MustCompile(`<w:tc[^>]*>|</w:tc>`),
		tableRowRe:  regexp.MustCompile(`</w:tr>\s*<w:tr[^>]*>`),
		rowTagRe:    regexp.MustCompile(`<w:tr[^>]*>|</w:tr>`),
		paragraphRe: regexp.MustCompile(`</w:p>`),
		breakRe:     regexp.MustCompile(`<w:br[^>]*/?>`),
		tagRe:       regexp.MustCompile(`<[^>]*>`),
	}
}

// SetObserver sets the observability component
func (d *DocxPreprocessor) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// GetName returns the name of this preprocessor
func (d *DocxPreprocessor) GetName() string {
	return "DOCX Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (d *DocxPreprocessor) GetSupportedExtensions() []string {
	return []string{".docx"}
}

// CanProcess checks if this preprocessor can handle the given file
func (d *DocxPreprocessor) CanProcess(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".docx"
}

// Process extracts the document body text.
func (d *DocxPreprocessor) Process(filePath string) (*ExtractedDocument, error) {
	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("docx_preprocessor", "process_file", filePath)
	}

	doc := &ExtractedDocument{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "Word Document",
		ProcessorType: "docx",
	}

	fail := func(err error) (*ExtractedDocument, error) {
		doc.Error = err
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": err.Error()})
		}
		return doc, err
	}

	reader, err := zip.OpenReader(filePath)
	if err != nil {
		return fail(fmt.Errorf("error opening docx archive: %w", err))
	}
	defer reader.Close()

	var documentFile *zip.File
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			documentFile = file
			break
		}
	}
	if documentFile == nil {
		return fail(fmt.Errorf("document.xml not found in %s", doc.Filename))
	}

	rc, err := documentFile.Open()
	if err != nil {
		return fail(fmt.Errorf("error opening document.xml: %w", err))
	}
	xmlContent, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return fail(fmt.Errorf("error reading document.xml: %w", err))
	}

	doc.Text = d.stripMarkup(string(xmlContent))
	doc.Success = true
	fillCounts(doc)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"chars": doc.CharCount})
	}
	return doc, nil
}

// stripMarkup flattens WordprocessingML to plain text. Table cell boundaries
// become tabs and row/paragraph boundaries become line breaks before the
// remaining tags are removed.
func (d *DocxPreprocessor) stripMarkup(xmlContent string) string {
	text := d.tableCellRe.ReplaceAllString(xmlContent, "\t")
	text = d.tableTagRe.ReplaceAllString(text, "")
	text = d.tableRowRe.ReplaceAllString(text, "\n")
	text = d.rowTagRe.ReplaceAllString(text, "")
	text = d.paragraphRe.ReplaceAllString(text, "\n")
	text = d.breakRe.ReplaceAllString(text, "\n")
	text = d.tagRe.ReplaceAllString(text, "")

	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&apos;", "'")

	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
