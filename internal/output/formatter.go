// internal/output/formatter.go
package output

import (
	"github.com/Ani-2003-HD/portfolio-agent/internal/analysis"
	"github.com/Ani-2003-HD/portfolio-agent/internal/contextpack"
)

// Result holds everything an analyze run produces for rendering.
type Result struct {
	ProjectName string                  `json:"project_name"`
	Root        string                  `json:"root"`
	Report      *analysis.ProjectReport `json:"file_analysis"`
	Context     *contextpack.Pack       `json:"context,omitempty"`
	DurationMs  int64                   `json:"duration_ms"`
}

// Description returns the fallback one-line project description derived
// from the report, used when no external describer is wired in.
func (r *Result) Description() string {
	return describeLine(r.Report)
}

// BulletPoints returns the fallback highlight facts for the project.
func (r *Result) BulletPoints() []string {
	return bulletPoints(r.Report)
}

// Formatter formats a Result into output bytes.
type Formatter interface {
	Format(result *Result) ([]byte, error)
}
