package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// sourceHandler analyzes source files for one language family. Extraction
// is regex-heuristic on purpose: the scoring arithmetic is part of the
// contract and must not be replaced with an AST-accurate version.
type sourceHandler struct {
	kind        Kind
	label       string
	extensions  map[string]bool
	lineComment string
	importRe    *regexp.Regexp
	importName  func(match []string) string
	complexity  func(content string) int
	techs       patternTable
}

var (
	pythonDefRe   = regexp.MustCompile(`def\s+\w+`)
	pythonClassRe = regexp.MustCompile(`class\s+\w+`)
	pythonIfRe    = regexp.MustCompile(`if\s+`)

	jsFuncRe  = regexp.MustCompile(`function\s+\w+`)
	jsConstRe = regexp.MustCompile(`const\s+\w+\s*=`)
	jsIfRe    = regexp.MustCompile(`if\s*\(`)
)

// newPythonHandler builds the handler for .py files.
func newPythonHandler() *sourceHandler {
	return &sourceHandler{
		kind:        KindPython,
		label:       "Python",
		extensions:  map[string]bool{".py": true},
		lineComment: "#",
		importRe:    regexp.MustCompile(`(?m)^(?:from\s+(\w+)|import\s+(\w+))`),
		importName: func(match []string) string {
			if match[1] != "" {
				return match[1]
			}
			return match[2]
		},
		complexity: func(content string) int {
			score := len(pythonDefRe.FindAllString(content, -1)) +
				len(pythonClassRe.FindAllString(content, -1)) +
				len(pythonIfRe.FindAllString(content, -1))/5
			return clamp(score, 1, 10)
		},
		techs: newPatternTable(map[string]string{
			"Flask":         `from flask|import flask`,
			"Django":        `from django|import django`,
			"FastAPI":       `from fastapi|import fastapi`,
			"Pandas":        `import pandas|from pandas`,
			"NumPy":         `import numpy|from numpy`,
			"Matplotlib":    `import matplotlib|from matplotlib`,
			"Requests":      `import requests|from requests`,
			"SQLAlchemy":    `from sqlalchemy|import sqlalchemy`,
			"Pytest":        `import pytest|from pytest`,
			"Ollama":        `import ollama|from ollama`,
			"GitPython":     `import git|from git`,
			"Aiohttp":       `import aiohttp|from aiohttp`,
			"Httpx":         `import httpx|from httpx`,
			"PyPDF2":        `import PyPDF2|from PyPDF2`,
			"Click":         `import click|from click`,
			"Rich":          `import rich|from rich`,
			"PyYAML":        `import yaml|from yaml`,
			"Python-dotenv": `from dotenv|import dotenv`,
		}),
	}
}

// newJavaScriptHandler builds the handler for .js/.jsx/.ts/.tsx files.
func newJavaScriptHandler() *sourceHandler {
	return &sourceHandler{
		kind:        KindJavaScript,
		label:       "JS/TS",
		extensions:  map[string]bool{".js": true, ".jsx": true, ".ts": true, ".tsx": true},
		lineComment: "//",
		importRe:    regexp.MustCompile(`import\s+(?:.*?from\s+)?['"]([^'"]+)['"]`),
		importName: func(match []string) string {
			// "react-dom/client" -> "client", "./util.js" -> "util".
			name := match[1]
			if i := strings.LastIndex(name, "/"); i >= 0 {
				name = name[i+1:]
			}
			if i := strings.Index(name, "."); i >= 0 {
				name = name[:i]
			}
			return name
		},
		complexity: func(content string) int {
			score := len(jsFuncRe.FindAllString(content, -1)) +
				len(jsConstRe.FindAllString(content, -1))/3 +
				len(jsIfRe.FindAllString(content, -1))/2
			return clamp(score, 1, 10)
		},
		techs: newPatternTable(map[string]string{
			"React":      `import.*react|from.*react`,
			"Vue":        `import.*vue|from.*vue`,
			"Angular":    `import.*angular|from.*angular`,
			"Node.js":    `require\(|import.*node`,
			"Express":    `express|app\.(get|post|put|delete)`,
			"TypeScript": `interface|type\s+\w+|:\s*\w+`,
			"Next.js":    `next|pages/|app/`,
			"Vite":       `vite|import\.meta\.env`,
			"Webpack":    `webpack|module\.exports`,
			"Jest":       `jest|describe\(|test\(`,
			"Cypress":    `cypress|cy\.`,
			"Tailwind":   `tailwind|@apply`,
			"Bootstrap":  `bootstrap|@media`,
			"Axios":      `import.*axios|from.*axios`,
		}),
	}
}

// CanHandle claims files whose extension belongs to the language family.
func (h *sourceHandler) CanHandle(path string) bool {
	return h.extensions[filepath.Ext(path)]
}

// Analyze reads the file and extracts imports, technologies, a heuristic
// complexity score, and the substantive line count. Read failures yield a
// degraded record, never an error.
func (h *sourceHandler) Analyze(path string) FileAnalysis {
	data, err := os.ReadFile(path)
	if err != nil {
		return failureAnalysis(h.kind, "Error reading file")
	}
	content := string(data)

	loc := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, h.lineComment) {
			loc++
		}
	}

	components := []string{}
	for _, match := range h.importRe.FindAllStringSubmatch(content, -1) {
		if name := h.importName(match); name != "" {
			components = append(components, name)
		}
	}

	score := h.complexity(content)

	return FileAnalysis{
		FileType:        h.kind,
		ContentSummary:  fmt.Sprintf("%s file with %d imports and %d complexity", h.label, len(components), score),
		KeyComponents:   components,
		Technologies:    h.techs.detect(content),
		ComplexityScore: score,
		LinesOfCode:     loc,
	}
}
