// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"syllabus-scan/internal/observability"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxPDFPages caps per-document page processing. Syllabi are short; a
// hundred-page upload is almost certainly the wrong file, and the cap bounds
// extraction time either way.
const maxPDFPages = 50

// PDFPreprocessor extracts page text from PDF syllabi. Files are validated
// structurally with pdfcpu before extraction so a corrupt upload fails fast
// with a clear error instead of a parser panic.
type PDFPreprocessor struct {
	observer  *observability.StandardObserver
	pdfConfig *model.Configuration
}

// NewPDFPreprocessor creates a new PDF preprocessor
func NewPDFPreprocessor() *PDFPreprocessor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFPreprocessor{pdfConfig: conf}
}

// SetObserver sets the observability component
func (p *PDFPreprocessor) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

// GetName returns the name of this preprocessor
func (p *PDFPreprocessor) GetName() string {
	return "PDF Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (p *PDFPreprocessor) GetSupportedExtensions() []string {
	return []string{".pdf"}
}

// CanProcess checks if this preprocessor can handle the given file
func (p *PDFPreprocessor) CanProcess(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".pdf"
}

// Process validates the PDF and extracts text page by page.
func (p *PDFPreprocessor) Process(filePath string) (*ExtractedDocument, error) {
	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("pdf_preprocessor", "process_file", filePath)
	}

	doc := &ExtractedDocument{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "PDF Document",
		ProcessorType: "pdf",
	}

	fail := func(err error) (*ExtractedDocument, error) {
		doc.Error = err
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": err.Error()})
		}
		return doc, err
	}

	if err := api.ValidateFile(filePath, p.pdfConfig); err != nil {
		return fail(fmt.Errorf("invalid PDF file: %w", err))
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return fail(fmt.Errorf("error opening PDF: %w", err))
	}
	defer f.Close()

	doc.PageCount = r.NumPage()
	pages := doc.PageCount
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var buf bytes.Buffer
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := extractPageText(page)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	doc.Text = cleanExtractedText(buf.String())
	doc.Success = true
	fillCounts(doc)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"pages": pages, "chars": doc.CharCount})
	}
	return doc, nil
}

// extractPageText extracts one page using row-based positioning so labels
// and their values stay on the same line, falling back to plain extraction.
func extractPageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return page.GetPlainText(nil)
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) < averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := reconstructRowText(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

// averageY calculates the average Y coordinate for text elements in a row
func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, element := range elements {
		total += element.Y
	}
	return total / float64(len(elements))
}

// reconstructRowText joins a row's text elements left to right, inserting a
// space when the horizontal gap between elements exceeds 20% of the font
// size.
func reconstructRowText(elements []pdf.Text) string {
	if len(elements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, element := range sorted {
		buf.WriteString(element.S)
		if i == len(sorted)-1 {
			continue
		}
		gap := sorted[i+1].X - (element.X + element.W)
		fontSize := element.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}

// cleanExtractedText drops blank lines and collapses intra-line runs of
// spaces while preserving the line structure the detectors key off.
func cleanExtractedText(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
