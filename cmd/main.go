// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"syllabus-scan/internal/config"
	"syllabus-scan/internal/core"
	"syllabus-scan/internal/help"
	"syllabus-scan/internal/parallel"
	"syllabus-scan/internal/preprocessors"
	"syllabus-scan/internal/version"
	"syllabus-scan/internal/waivers"
	"syllabus-scan/internal/web"

	"syllabus-scan/internal/formatters"
	_ "syllabus-scan/internal/formatters/csv"
	_ "syllabus-scan/internal/formatters/json"
	_ "syllabus-scan/internal/formatters/text"
	_ "syllabus-scan/internal/formatters/yaml"

	"golang.org/x/term"
)

// maxDocumentBytes caps how large a syllabus file may be before it is
// skipped.
const maxDocumentBytes = 100 * 1024 * 1024

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	// If config file is not specified, try to find one in standard locations
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	// Load configuration (will use defaults if file not found)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("") // Load default config
	}
	return cfg
}

// configFlags holds command line flag values
type configFlags struct {
	outputFormat     string
	confidenceLevels string
	fieldsToRun      string
	verbose          bool
	debug            bool
	noColor          bool
	recursive        bool
	workers          int
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format           string
	confidenceLevels string
	fieldsToRun      string
	verbose          bool
	debug            bool
	noColor          bool
	recursive        bool
	workers          int
}

// resolveConfiguration resolves final configuration values from config file,
// profile, and command line flags. Precedence: flag > profile > config file >
// built-in default.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Confidence levels
	final.confidenceLevels = "all" // default fallback
	if cfg != nil && cfg.Defaults.ConfidenceLevels != "" {
		final.confidenceLevels = cfg.Defaults.ConfidenceLevels
	}
	if activeProfile != nil && activeProfile.ConfidenceLevels != "" {
		final.confidenceLevels = activeProfile.ConfidenceLevels
	}
	if isFlagSet("confidence") && flags.confidenceLevels != "" {
		final.confidenceLevels = flags.confidenceLevels
	}

	// Fields to run
	final.fieldsToRun = "all" // default fallback
	if cfg != nil && cfg.Defaults.Fields != "" {
		final.fieldsToRun = cfg.Defaults.Fields
	}
	if activeProfile != nil && activeProfile.Fields != "" {
		final.fieldsToRun = activeProfile.Fields
	}
	if isFlagSet("fields") && flags.fieldsToRun != "" {
		final.fieldsToRun = flags.fieldsToRun
	}

	// Verbose
	final.verbose = false // default fallback
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	final.debug = false // default fallback
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	final.noColor = false // default fallback
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Recursive
	final.recursive = false // default fallback
	if cfg != nil {
		final.recursive = cfg.Defaults.Recursive
	}
	if activeProfile != nil {
		final.recursive = activeProfile.Recursive
	}
	if isFlagSet("recursive") {
		final.recursive = flags.recursive
	}

	// Workers
	final.workers = 4 // default fallback
	if cfg != nil && cfg.Defaults.Workers > 0 {
		final.workers = cfg.Defaults.Workers
	}
	if activeProfile != nil && activeProfile.Workers > 0 {
		final.workers = activeProfile.Workers
	}
	if isFlagSet("workers") && flags.workers > 0 {
		final.workers = flags.workers
	}

	return final
}

// handleProfiles lists available profiles or resolves the requested one.
func handleProfiles(cfg *config.Config, listProfiles bool, profileName string) *config.Profile {
	if listProfiles {
		if len(cfg.Profiles) == 0 {
			fmt.Println("No profiles defined.")
			os.Exit(0)
		}
		names := make([]string, 0, len(cfg.Profiles))
		for name := range cfg.Profiles {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("Available profiles:")
		for _, name := range names {
			profile := cfg.Profiles[name]
			if profile.Description != "" {
				fmt.Printf("  %-16s %s\n", name, profile.Description)
			} else {
				fmt.Printf("  %s\n", name)
			}
		}
		os.Exit(0)
	}

	if profileName == "" {
		return nil
	}

	profile, exists := cfg.Profiles[profileName]
	if !exists {
		fmt.Fprintf(os.Stderr, "Error: profile '%s' not found in configuration\n", profileName)
		fmt.Fprintf(os.Stderr, "Use --list-profiles to see available profiles\n")
		os.Exit(1)
	}
	return &profile
}

func main() {
	flags := &configFlags{}

	inputFile := flag.String("file", "", "Path to a syllabus file, directory, or glob pattern")
	configFile := flag.String("config", "", "Path to configuration file")
	profileName := flag.String("profile", "", "Configuration profile to use")
	listProfiles := flag.Bool("list-profiles", false, "List available configuration profiles")

	flag.StringVar(&flags.outputFormat, "format", "text", "Output format: text, json, yaml, csv")
	flag.StringVar(&flags.confidenceLevels, "confidence", "all", "Confidence levels to display: high, medium, low, or all")
	flag.StringVar(&flags.fieldsToRun, "fields", "all", "Comma-separated list of fields to detect, or 'all'")
	flag.BoolVar(&flags.verbose, "verbose", false, "Include detector metadata in output")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug observability output")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.recursive, "recursive", false, "Recursively scan directories")
	flag.IntVar(&flags.workers, "workers", 0, "Number of parallel scan workers (default from config)")

	outputFile := flag.String("output", "", "Write results to a file instead of stdout")
	waiversFile := flag.String("waivers", "", "Path to waiver configuration file")
	failOnMissing := flag.Bool("fail-on-noncompliance", false, "Exit with status 2 if any regime has unwaived missing fields")
	quiet := flag.Bool("quiet", false, "Suppress progress output")

	showVersion := flag.Bool("version", false, "Show version information")
	listFields := flag.Bool("help-fields", false, "List available detection fields")
	helpField := flag.String("help-field", "", "Show detailed help for one field")

	webMode := flag.Bool("web", false, "Start the web server instead of scanning")
	webPort := flag.String("port", "8080", "Port for the web server")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Field help does not need a file or config.
	if *listFields || *helpField != "" {
		helpSystem := help.NewSystem(flags.noColor)
		for _, provider := range core.HelpProviders() {
			helpSystem.RegisterProvider(provider)
		}
		if *listFields {
			helpSystem.ShowFieldsList()
			return
		}
		if !helpSystem.ShowFieldHelp(*helpField) {
			fmt.Fprintf(os.Stderr, "Error: unknown field '%s'\n", *helpField)
			os.Exit(1)
		}
		return
	}

	cfg := loadConfiguration(*configFile)
	activeProfile := handleProfiles(cfg, *listProfiles, *profileName)
	finalConfig := resolveConfiguration(cfg, activeProfile, flags)

	waiverPath := *waiversFile
	if waiverPath == "" && cfg.WaiversFile != "" {
		waiverPath = cfg.WaiversFile
	}
	waiverManager := waivers.NewManager(waiverPath)

	if *webMode {
		port, err := findAvailablePort(*webPort)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		server := web.NewServer(cfg, waiverManager)
		if err := server.Start(port); err != nil {
			fmt.Fprintf(os.Stderr, "Error: web server failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Accept the input path as a bare argument too.
	inputPath := *inputFile
	if inputPath == "" && flag.NArg() > 0 {
		inputPath = flag.Arg(0)
	}
	if inputPath == "" {
		helpSystem := help.NewSystem(flags.noColor)
		for _, provider := range core.HelpProviders() {
			helpSystem.RegisterProvider(provider)
		}
		helpSystem.ShowGeneralHelp()
		os.Exit(1)
	}

	registry := preprocessors.NewRegistry()
	preprocessors.RegisterDefaults(registry)

	filesToProcess, err := getFilesToProcess(inputPath, finalConfig.recursive, registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(filesToProcess) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no processable files found at %s\n", inputPath)
		os.Exit(1)
	}

	scanConfig := core.ScanConfig{
		Fields:        splitList(finalConfig.fieldsToRun),
		Debug:         finalConfig.debug,
		Verbose:       finalConfig.verbose,
		Workers:       finalConfig.workers,
		Config:        cfg,
		Profile:       activeProfile,
		WaiverManager: waiverManager,
		Registry:      registry,
	}

	var progress parallel.ProgressFunc
	if !*quiet && isTerminal(os.Stderr) {
		progress = makeProgressPrinter()
	}

	scanResults, stats := core.ScanFiles(filesToProcess, scanConfig, progress)
	if progress != nil {
		fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", terminalWidth()))
	}

	var documents []*core.DocumentResult
	for _, scanResult := range scanResults {
		if scanResult.Error != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", scanResult.FilePath, scanResult.Error)
			continue
		}
		if document, ok := scanResult.Payload.(*core.DocumentResult); ok {
			documents = append(documents, document)
		}
	}
	sort.Slice(documents, func(i, j int) bool { return documents[i].FilePath < documents[j].FilePath })

	if len(documents) == 0 {
		fmt.Fprintf(os.Stderr, "Error: all %d files failed to scan\n", stats.TotalFiles)
		os.Exit(1)
	}

	options := formatters.FormatterOptions{
		ConfidenceLevel: core.ParseConfidenceLevels(finalConfig.confidenceLevels),
		Verbose:         finalConfig.verbose,
		NoColor:         finalConfig.noColor || *outputFile != "",
	}

	output, err := formatters.Export(finalConfig.format, documents, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output+"\n"), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write output file: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(output)
	}

	if *failOnMissing && hasNoncompliantDocument(documents) {
		os.Exit(2)
	}
}

// hasNoncompliantDocument reports whether any scanned document fails any
// configured regime.
func hasNoncompliantDocument(documents []*core.DocumentResult) bool {
	for _, document := range documents {
		for _, report := range document.Compliance {
			if !report.OK {
				return true
			}
		}
	}
	return false
}

// getFilesToProcess expands the input path into a list of scannable files.
// Directories are walked (one level, or fully with recursive); glob patterns
// are expanded; files the preprocessor registry cannot handle are skipped.
func getFilesToProcess(inputPath string, recursive bool, registry *preprocessors.Registry) ([]string, error) {
	if strings.Contains(inputPath, "..") {
		return nil, fmt.Errorf("path traversal not allowed: %s", inputPath)
	}

	info, err := os.Stat(inputPath)
	if err == nil && info.Mode().IsRegular() {
		if info.Size() > maxDocumentBytes {
			return nil, fmt.Errorf("file too large (max size: %dMB): %s", maxDocumentBytes/(1024*1024), inputPath)
		}
		return []string{inputPath}, nil
	}

	if err == nil && info.IsDir() {
		return collectDirectoryFiles(inputPath, recursive, registry)
	}

	// Path does not exist as-is; try it as a glob pattern.
	if strings.ContainsAny(inputPath, "*?[") {
		matches, globErr := filepath.Glob(inputPath)
		if globErr != nil {
			return nil, fmt.Errorf("invalid glob pattern: %w", globErr)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", inputPath)
		}
		var files []string
		for _, match := range matches {
			matchInfo, statErr := os.Stat(match)
			if statErr != nil || !matchInfo.Mode().IsRegular() {
				continue
			}
			if matchInfo.Size() > maxDocumentBytes || !registry.CanProcess(match) {
				continue
			}
			files = append(files, match)
		}
		return files, nil
	}

	return nil, fmt.Errorf("path does not exist or is not accessible: %s", inputPath)
}

func collectDirectoryFiles(dir string, recursive bool, registry *preprocessors.Registry) ([]string, error) {
	var files []string

	walkErr := filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if entry.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			// Skip hidden directories like .git in recursive walks.
			if recursive && path != dir && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !registry.CanProcess(path) {
			return nil
		}
		if info, infoErr := entry.Info(); infoErr != nil || info.Size() > maxDocumentBytes {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", walkErr)
	}

	sort.Strings(files)
	return files, nil
}

// makeProgressPrinter returns a progress callback that rewrites one status
// line on stderr, truncated to the terminal width.
func makeProgressPrinter() parallel.ProgressFunc {
	width := terminalWidth()
	return func(completed, total int, path string) {
		line := fmt.Sprintf("Scanning %d/%d: %s", completed, total, filepath.Base(path))
		if len(line) > width-1 {
			line = line[:width-1]
		}
		fmt.Fprintf(os.Stderr, "\r%-*s", width-1, line)
	}
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// isFlagSet reports whether a flag was explicitly provided on the command
// line.
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
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

// findAvailablePort validates the requested port and falls back to the
// 8080-8089 range when it is taken.
func findAvailablePort(requestedPort string) (string, error) {
	port, err := validatePort(requestedPort)
	if err != nil {
		return "", err
	}

	if isPortAvailable(port) {
		return port, nil
	}

	basePort := 8080
	for i := 0; i < 10; i++ {
		alternativePort := fmt.Sprintf("%d", basePort+i)
		if isPortAvailable(alternativePort) {
			fmt.Fprintf(os.Stderr, "Warning: Port %s is not available, using port %s instead\n", requestedPort, alternativePort)
			return alternativePort, nil
		}
	}

	return "", fmt.Errorf("no available ports found in range 8080-8089")
}

// validatePort validates that the port string is a valid port number
func validatePort(portStr string) (string, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", fmt.Errorf("invalid port format '%s': must be a number", portStr)
	}

	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if port < 1024 && os.Geteuid() != 0 {
		return "", fmt.Errorf("port %d requires root privileges (ports below 1024 are privileged)", port)
	}

	return portStr, nil
}

// isPortAvailable checks if a port is available for binding
func isPortAvailable(port string) bool {
	address := fmt.Sprintf(":%s", port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return false
	}
	listener.Close()
	return true
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
