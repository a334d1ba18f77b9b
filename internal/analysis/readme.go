package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)
	fencedCodeRe = regexp.MustCompile("```(\\w+)")
)

// readmeNames are the recognized documentation filenames, lowercase.
var readmeNames = map[string]bool{
	"readme.md":  true,
	"readme.txt": true,
	"readme":     true,
}

// readmeHandler analyzes README documentation files.
type readmeHandler struct {
	techs patternTable
}

func newReadmeHandler() *readmeHandler {
	return &readmeHandler{
		techs: newPatternTable(map[string]string{
			"Python":     `\bpython\b`,
			"JavaScript": `\bjavascript\b|\bjs\b`,
			"TypeScript": `\btypescript\b|\bts\b`,
			"React":      `\breact\b`,
			"Vue":        `\bvue\b`,
			"Angular":    `\bangular\b`,
			"Node.js":    `\bnode\.?js\b|\bnode\b`,
			"Express":    `\bexpress\b`,
			"Django":     `\bdjango\b`,
			"Flask":      `\bflask\b`,
			"FastAPI":    `\bfastapi\b`,
			"Docker":     `\bdocker\b`,
			"Kubernetes": `\bkubernetes\b|\bk8s\b`,
			"AWS":        `\baws\b|\bamazon\b`,
			"Azure":      `\bazure\b`,
			"GCP":        `\bgcp\b|\bgoogle cloud\b`,
			"Git":        `\bgit\b`,
			"GitHub":     `\bgithub\b`,
			"GitLab":     `\bgitlab\b`,
		}),
	}
}

func (h *readmeHandler) CanHandle(path string) bool {
	return readmeNames[strings.ToLower(filepath.Base(path))]
}

func (h *readmeHandler) Analyze(path string) FileAnalysis {
	data, err := os.ReadFile(path)
	if err != nil {
		return failureAnalysis(KindReadme, "Error reading README")
	}
	content := string(data)

	sections := []string{}
	for _, match := range headingRe.FindAllStringSubmatch(content, -1) {
		sections = append(sections, match[1])
	}
	// Only language-tagged fences count as code examples.
	codeBlocks := len(fencedCodeRe.FindAllString(content, -1))

	return FileAnalysis{
		FileType:        KindReadme,
		ContentSummary:  fmt.Sprintf("README with %d sections and %d code examples", len(sections), codeBlocks),
		KeyComponents:   sections,
		Technologies:    h.techs.detect(content),
		ComplexityScore: clamp(len(sections)+codeBlocks/2, 1, 10),
		LinesOfCode:     len(strings.Split(content, "\n")),
	}
}
