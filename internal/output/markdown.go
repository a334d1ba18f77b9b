// internal/output/markdown.go
package output

import (
	"fmt"
	"strings"

	"github.com/Ani-2003-HD/portfolio-agent/internal/analysis"
)

// MarkdownFormatter outputs a Result as human-readable Markdown.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the Result as Markdown.
func (f *MarkdownFormatter) Format(result *Result) ([]byte, error) {
	var b strings.Builder
	report := result.Report

	fmt.Fprintf(&b, "# %s\n\n", result.ProjectName)
	b.WriteString(describeLine(report))
	b.WriteString("\n")

	for _, point := range bulletPoints(report) {
		fmt.Fprintf(&b, "- %s\n", point)
	}

	if len(report.Technologies) > 0 {
		b.WriteString("\n## Technologies\n\n")
		b.WriteString(strings.Join(report.Technologies, ", "))
		b.WriteString("\n")
	}

	if len(report.Analyses) > 0 {
		b.WriteString("\n## Files\n\n")
		b.WriteString("| File | Type | Complexity | Lines |\n")
		b.WriteString("|------|------|-----------:|------:|\n")
		for _, entry := range report.Analyses {
			fmt.Fprintf(&b, "| %s | %s | %d | %d |\n",
				entry.File, entry.Analysis.FileType,
				entry.Analysis.ComplexityScore, entry.Analysis.LinesOfCode)
		}
	}

	fmt.Fprintf(&b, "\n---\n*Project complexity %d/10, analyzed in %dms*\n",
		report.ComplexityScore, result.DurationMs)

	return []byte(b.String()), nil
}

// describeLine is the structural fallback description used when no
// external describer provides prose.
func describeLine(report *analysis.ProjectReport) string {
	return fmt.Sprintf("Software project with %d files", report.FilesAnalyzed)
}

func bulletPoints(report *analysis.ProjectReport) []string {
	return []string{
		fmt.Sprintf("Contains %d source files", report.FilesAnalyzed),
		fmt.Sprintf("Uses %d different technologies", len(report.Technologies)),
		fmt.Sprintf("Total lines of code: %d", report.TotalLines),
	}
}
