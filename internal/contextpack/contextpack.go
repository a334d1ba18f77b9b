// Package contextpack collects raw file excerpts from a project for the
// external description-generation collaborator. It owns no analysis
// logic; it only gathers bounded, structured context.
package contextpack

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ani-2003-HD/portfolio-agent/internal/analysis"
)

const (
	// maxPriorityBytes bounds descriptor file excerpts.
	maxPriorityBytes = 5000
	// maxSourceBytes bounds sampled source files; larger files are
	// skipped entirely rather than truncated.
	maxSourceBytes = 1500
	// maxSourceFiles caps how many source files are sampled.
	maxSourceFiles = 5
)

// priorityFiles are always excerpted when present at the project root.
var priorityFiles = []string{"README.md", "package.json", "requirements.txt", "setup.py"}

// sourceExtensions are the file kinds eligible for sampling.
var sourceExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".tsx": true,
	".jsx": true, ".java": true, ".go": true, ".rs": true,
}

// excludeDirs mirror the analyzer's sweep exclusions.
var excludeDirs = []string{"node_modules", "build", "dist", "__pycache__", ".git", "venv"}

// File is one excerpt in a Pack.
type File struct {
	Path      string `json:"path"`
	Content   string `json:"content"`
	Truncated bool   `json:"truncated,omitempty"`
}

// Pack is the bounded project context handed to the describer.
type Pack struct {
	ProjectName string `json:"project_name"`
	Files       []File `json:"files"`
}

// Collect gathers descriptor files (truncated at maxPriorityBytes) and up
// to maxSourceFiles small source files from root. Unreadable files are
// logged and skipped; only a missing root is an error.
func Collect(root string) (*Pack, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", analysis.ErrNotFound, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	pack := &Pack{
		ProjectName: filepath.Base(abs),
		Files:       []File{},
	}

	for _, name := range priorityFiles {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("WARNING: could not read %s: %v", name, err)
			}
			continue
		}
		content := string(data)
		truncated := false
		if len(content) >= maxPriorityBytes {
			content = content[:maxPriorityBytes] + "... (truncated)"
			truncated = true
		}
		pack.Files = append(pack.Files, File{Path: name, Content: content, Truncated: truncated})
	}

	sampled := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if sampled >= maxSourceFiles {
			return fs.SkipAll
		}
		if d.IsDir() || !sourceExtensions[filepath.Ext(path)] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if isExcluded(rel) {
			return nil
		}
		sampled++
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("WARNING: could not read %s: %v", rel, err)
			return nil
		}
		if len(data) >= maxSourceBytes {
			return nil
		}
		pack.Files = append(pack.Files, File{Path: filepath.ToSlash(rel), Content: string(data)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sampling source files: %w", err)
	}

	return pack, nil
}

func isExcluded(rel string) bool {
	slashed := filepath.ToSlash(rel)
	for _, pattern := range excludeDirs {
		if strings.Contains(slashed, pattern) {
			return true
		}
	}
	return false
}
