package analysis

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound reports that the project root passed to AnalyzeProject does
// not exist. It is the only terminal failure the aggregator produces.
var ErrNotFound = errors.New("project path does not exist")

// priorityFiles are dispatched first, in this order, when present at the
// project root. They are included even though the sweep's extension filter
// would never reach them.
var priorityFiles = []string{
	"README.md",
	"package.json",
	"requirements.txt",
	"setup.py",
	"pyproject.toml",
}

// codeExtensions is the sweep phase's extension filter.
var codeExtensions = map[string]bool{
	".py":   true,
	".js":   true,
	".ts":   true,
	".tsx":  true,
	".jsx":  true,
	".java": true,
	".go":   true,
	".rs":   true,
	".cpp":  true,
	".c":    true,
}

// excludeDirs are path substrings that exclude a file from the sweep:
// build output, dependency caches, VCS metadata, virtual environments.
var excludeDirs = []string{
	"node_modules",
	"build",
	"dist",
	"__pycache__",
	".git",
	"venv",
	".env",
}

// Analyzer is the project-level entry point. It is stateless between
// calls; every invocation reads the filesystem fresh.
type Analyzer struct {
	registry *Registry
	excludes []string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithExcludeDirs appends extra path substrings to the sweep phase's
// exclusion set.
func WithExcludeDirs(dirs ...string) Option {
	return func(a *Analyzer) {
		a.excludes = append(a.excludes, dirs...)
	}
}

// NewAnalyzer creates an Analyzer with the fixed handler set in its
// canonical registration order.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		registry: NewRegistry(
			newPythonHandler(),
			newJavaScriptHandler(),
			newPackageJSONHandler(),
			newRequirementsHandler(),
			newReadmeHandler(),
		),
		excludes: excludeDirs,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeFile analyzes a single file. The boolean is false when no
// handler recognizes the file.
func (a *Analyzer) AnalyzeFile(path string) (FileAnalysis, bool) {
	result, ok := a.registry.Dispatch(path)
	if !ok {
		log.Printf("WARNING: no handler found for file: %s", path)
	}
	return result, ok
}

// AnalyzeProject walks the project root in two phases and merges every
// dispatched record into a ProjectReport. Phase 1 dispatches the priority
// descriptor files present at the root; phase 2 sweeps every source file
// surviving the extension and exclusion filters. Files claimed in both
// phases are dispatched twice; the phases do not deduplicate.
func (a *Analyzer) AnalyzeProject(root string) (*ProjectReport, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
	}

	report := &ProjectReport{
		Technologies: []string{},
		FileTypes:    map[string]int{},
		Analyses:     []Entry{},
	}
	techSet := make(map[string]bool)

	merge := func(rel string, fa FileAnalysis) {
		report.Analyses = append(report.Analyses, Entry{File: rel, Analysis: fa})
		report.FilesAnalyzed++
		report.TotalLines += fa.LinesOfCode
		report.FileTypes[string(fa.FileType)]++
		report.ComplexityScore += fa.ComplexityScore
		for _, tech := range fa.Technologies {
			techSet[tech] = true
		}
	}

	// Phase 1: priority descriptor files at the root.
	for _, name := range priorityFiles {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		if fa, ok := a.registry.Dispatch(path); ok {
			merge(name, fa)
		}
	}

	// Phase 2: recursive sweep over source files.
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("WARNING: skipping path %q: %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !codeExtensions[filepath.Ext(path)] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if a.isExcluded(rel) {
			return nil
		}
		if fa, ok := a.registry.Dispatch(path); ok {
			merge(filepath.ToSlash(rel), fa)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking project: %w", err)
	}

	for tech := range techSet {
		report.Technologies = append(report.Technologies, tech)
	}
	sort.Strings(report.Technologies)

	// Rollup: integer-divide the complexity sum by the number of
	// five-file groups, dampening the score as file count grows. Not
	// an average; the floor-division shape is part of the contract.
	divisor := report.FilesAnalyzed / 5
	if divisor < 1 {
		divisor = 1
	}
	report.ComplexityScore = clamp(report.ComplexityScore/divisor, 0, 10)

	return report, nil
}

// isExcluded reports whether the slash-form relative path contains any
// excluded directory substring.
func (a *Analyzer) isExcluded(rel string) bool {
	slashed := filepath.ToSlash(rel)
	for _, pattern := range a.excludes {
		if strings.Contains(slashed, pattern) {
			return true
		}
	}
	return false
}
