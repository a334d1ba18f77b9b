// Package analysis turns raw project files into normalized FileAnalysis
// records and aggregates them into a project-level report. Handlers claim
// files by name or extension; a registry dispatches each file to the first
// handler that claims it.
package analysis

// Kind identifies the handler that produced a FileAnalysis.
type Kind string

const (
	KindPython       Kind = "Python"
	KindJavaScript   Kind = "JavaScript/TypeScript"
	KindPackageJSON  Kind = "Package.json"
	KindRequirements Kind = "Requirements.txt"
	KindReadme       Kind = "README"
)

// FileAnalysis is the normalized analysis result for a single file.
type FileAnalysis struct {
	FileType        Kind     `json:"file_type"`
	ContentSummary  string   `json:"content_summary"`
	KeyComponents   []string `json:"key_components"`
	Technologies    []string `json:"technologies"`
	ComplexityScore int      `json:"complexity_score"`
	LinesOfCode     int      `json:"lines_of_code"`
}

// Entry pairs a project-relative path with its analysis.
type Entry struct {
	File     string       `json:"file"`
	Analysis FileAnalysis `json:"analysis"`
}

// ProjectReport aggregates every dispatched file under a project root.
type ProjectReport struct {
	FilesAnalyzed   int            `json:"files_analyzed"`
	TotalLines      int            `json:"total_lines"`
	Technologies    []string       `json:"technologies"`
	FileTypes       map[string]int `json:"file_types"`
	ComplexityScore int            `json:"complexity_score"`
	Analyses        []Entry        `json:"analyses"`
}

// failureAnalysis is the degraded record produced when a handler cannot
// read or parse its file. The pipeline never propagates per-file errors.
func failureAnalysis(kind Kind, summary string) FileAnalysis {
	return FileAnalysis{
		FileType:        kind,
		ContentSummary:  summary,
		KeyComponents:   []string{},
		Technologies:    []string{},
		ComplexityScore: 1,
		LinesOfCode:     0,
	}
}

// clamp bounds n to the inclusive range [lo, hi].
func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
