// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web provides a small HTTP surface over the scanner: upload a
// syllabus, get the field report back. It reuses the CLI scanning path
// end to end so both entry points produce identical output.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"syllabus-scan/internal/config"
	"syllabus-scan/internal/core"
	"syllabus-scan/internal/formatters"
	"syllabus-scan/internal/preprocessors"
	"syllabus-scan/internal/version"
	"syllabus-scan/internal/waivers"

	// Formatter implementations register themselves with the default
	// registry.
	_ "syllabus-scan/internal/formatters/csv"
	_ "syllabus-scan/internal/formatters/json"
	_ "syllabus-scan/internal/formatters/text"
	_ "syllabus-scan/internal/formatters/yaml"
)

const (
	// maxFormMemory bounds the in-memory portion of multipart parsing.
	maxFormMemory = 32 << 20
	// maxUploadBytes caps a single uploaded document.
	maxUploadBytes = 100 << 20
)

// Server wires the scanner into an HTTP listener.
type Server struct {
	cfg      *config.Config
	registry *preprocessors.Registry
	waivers  *waivers.Manager
	server   *http.Server
}

// errorResponse is the JSON body for any failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewServer creates a web server. cfg and waiverManager may be nil, in
// which case built-in defaults apply.
func NewServer(cfg *config.Config, waiverManager *waivers.Manager) *Server {
	registry := preprocessors.NewRegistry()
	preprocessors.RegisterDefaults(registry)

	return &Server{
		cfg:      cfg,
		registry: registry,
		waivers:  waiverManager,
	}
}

// Start begins listening on the given port and blocks until the server
// stops.
func (s *Server) Start(port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/scan", s.handleScan)
	mux.HandleFunc("/formats", s.handleFormats)

	s.server = &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	fmt.Printf("syllabus-scan web server listening on http://localhost:%s\n", port)
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the listener down.
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

// handleHealth reports service status and build information.
func (s *Server) handleHealth(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	versionInfo := version.Full()
	healthData := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "syllabus-scan-web",
		"version":   versionInfo["version"],
		"build_info": map[string]interface{}{
			"version":    versionInfo["version"],
			"commit":     versionInfo["commit"],
			"build_date": versionInfo["buildDate"],
			"go_version": versionInfo["goVersion"],
			"platform":   versionInfo["platform"],
		},
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(healthData)
}

// handleFormats lists the available output formats.
func (s *Server) handleFormats(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var infos []formatters.FormatInfo
	for _, name := range formatters.List() {
		infos = append(infos, formatters.GetFormatInfo(name))
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(infos)
}

// handleScan accepts one or more uploaded syllabi under the multipart
// field "files" and returns the scan report. Optional form values mirror
// the CLI flags: fields, confidence, format, verbose.
func (s *Server) handleScan(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := request.ParseMultipartForm(maxFormMemory); err != nil {
		s.sendError(responseWriter, http.StatusBadRequest, "failed to parse form data")
		return
	}

	files := request.MultipartForm.File["files"]
	if len(files) == 0 {
		// Single-file clients may use "file" instead.
		files = request.MultipartForm.File["file"]
	}
	if len(files) == 0 {
		s.sendError(responseWriter, http.StatusBadRequest, "no files uploaded")
		return
	}

	fields := splitList(request.FormValue("fields"))
	verbose := request.FormValue("verbose") == "true"

	format := request.FormValue("format")
	if format == "" {
		format = "json"
	}

	confidence := request.FormValue("confidence")
	if confidence == "" {
		confidence = "all"
	}

	var results []*core.DocumentResult
	for i, fileHeader := range files {
		result, err := s.scanUpload(fileHeader, i, fields, verbose)
		if err != nil {
			s.sendError(responseWriter, http.StatusUnprocessableEntity, err.Error())
			return
		}
		results = append(results, result)
	}

	options := formatters.FormatterOptions{
		ConfidenceLevel: core.ParseConfidenceLevels(confidence),
		Verbose:         verbose,
		NoColor:         true,
	}

	content, mimeType, filename, err := formatters.ExportForWeb(format, results, options)
	if err != nil {
		s.sendError(responseWriter, http.StatusBadRequest, err.Error())
		return
	}

	responseWriter.Header().Set("Content-Type", mimeType)
	if request.FormValue("download") == "true" {
		responseWriter.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	responseWriter.WriteHeader(http.StatusOK)
	responseWriter.Write([]byte(content))
}

// scanUpload spools one uploaded document to a temp file and runs the
// full scan on it. The result carries the client's original filename.
func (s *Server) scanUpload(uploadedFile *multipart.FileHeader, fileIndex int, fields []string, verbose bool) (*core.DocumentResult, error) {
	file, err := uploadedFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", uploadedFile.Filename, err)
	}
	defer file.Close()

	ext := filepath.Ext(uploadedFile.Filename)
	tempFile, err := os.CreateTemp("", fmt.Sprintf("syllabus_upload_%d_*%s", fileIndex, ext))
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := io.Copy(tempFile, io.LimitReader(file, maxUploadBytes)); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to store upload %s: %w", uploadedFile.Filename, err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush upload %s: %w", uploadedFile.Filename, err)
	}

	result, err := core.ScanFile(core.ScanConfig{
		FilePath:      tempFile.Name(),
		Fields:        fields,
		Verbose:       verbose,
		Config:        s.cfg,
		WaiverManager: s.waivers,
		Registry:      s.registry,
	})
	if err != nil {
		return nil, fmt.Errorf("scan of %s failed: %w", uploadedFile.Filename, err)
	}

	// Report the name the client sent, not the temp path.
	result.FilePath = uploadedFile.Filename
	return result, nil
}

func (s *Server) sendError(responseWriter http.ResponseWriter, status int, message string) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	json.NewEncoder(responseWriter).Encode(errorResponse{Success: false, Error: message})
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
