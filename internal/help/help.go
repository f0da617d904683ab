// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// FieldInfo contains standardized information about a field detector.
type FieldInfo struct {
	Name                string   // Canonical field name (e.g., "grading_scale")
	ShortDescription    string   // Short description for the fields list
	DetailedDescription string   // Detailed description of what the detector does
	Patterns            []string // Example phrasings the detector looks for
	ConfidenceNotes     []string // Signals affecting candidate scoring
	Examples            []string // Usage examples
}

// Provider is implemented by detector packages that expose help content.
type Provider interface {
	GetFieldInfo() FieldInfo
}

// System manages help content for the application.
type System struct {
	providers map[string]Provider
	colors    map[string]*color.Color
}

// NewSystem creates a new help system.
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"example":  color.New(color.FgMagenta),
			"positive": color.New(color.FgGreen),
		},
	}
}

// RegisterProvider adds a help provider to the system.
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetFieldInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information.
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Syllabus Scan - Syllabus Field Extraction and Compliance Tool")
	fmt.Println("=============================================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  syllabus-scan --file <path-to-syllabus> [options]")
	fmt.Println("  syllabus-scan --web [--port <port>]  # Web server mode")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the syllabus file or directory to scan (required)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --recursive\t\tRecursively scan directories")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv, yaml (default: text)")
	fmt.Fprintln(w, "  --fields\t<fields>\tSpecific fields to detect, comma separated, or all (default: all)")
	fmt.Fprintln(w, "  --confidence\t<levels>\tConfidence levels to show: high,medium,low,all (default: all)")
	fmt.Fprintln(w, "  --waivers\t<path>\tPath to compliance waiver file (YAML)")
	fmt.Fprintln(w, "  --output\t<path>\tWrite report to a file instead of stdout")
	fmt.Fprintln(w, "  --workers\t<n>\tNumber of parallel workers for directory scans")
	fmt.Fprintln(w, "  --verbose\t\tShow detailed detection metadata")
	fmt.Fprintln(w, "  --debug\t\tEmit diagnostic JSON records to stderr")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help-fields\t\tList available field detectors")
	fmt.Fprintln(w, "  --help-field\t<name>\tShow detailed help for one field detector")
	w.Flush()
	fmt.Println()

	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  syllabus-scan --file COMP405-syllabus.pdf")
	h.colors["example"].Println("  syllabus-scan --file syllabi/ --recursive --format json")
	h.colors["example"].Println("  syllabus-scan --file syllabus.docx --fields grading_scale,slos")
}

// ShowFieldsList displays a summary of every registered field detector.
func (h *System) ShowFieldsList() {
	h.colors["title"].Println("Available field detectors")
	fmt.Println()

	names := make([]string, 0, len(h.providers))
	for name := range h.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		info := h.providers[name].GetFieldInfo()
		fmt.Fprintf(w, "  %s\t%s\n", info.Name, info.ShortDescription)
	}
	w.Flush()
}

// ShowFieldHelp displays detailed help for one field detector.
func (h *System) ShowFieldHelp(name string) bool {
	provider, ok := h.providers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return false
	}
	info := provider.GetFieldInfo()

	h.colors["title"].Printf("%s\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Patterns) > 0 {
		h.colors["header"].Println("PATTERNS:")
		for _, p := range info.Patterns {
			h.colors["item"].Printf("  - %s\n", p)
		}
		fmt.Println()
	}

	if len(info.ConfidenceNotes) > 0 {
		h.colors["header"].Println("SCORING:")
		for _, n := range info.ConfidenceNotes {
			fmt.Printf("  - %s\n", n)
		}
		fmt.Println()
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, e := range info.Examples {
			h.colors["example"].Printf("  %s\n", e)
		}
	}
	return true
}
