package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// packageJSONHandler analyzes Node package manifests.
type packageJSONHandler struct {
	techs tokenTable
}

func newPackageJSONHandler() *packageJSONHandler {
	return &packageJSONHandler{
		techs: tokenTable{
			{"react", "React"},
			{"vue", "Vue.js"},
			{"angular", "Angular"},
			{"express", "Express.js"},
			{"next", "Next.js"},
			{"vite", "Vite"},
			{"webpack", "Webpack"},
			{"jest", "Jest"},
			{"cypress", "Cypress"},
			{"tailwindcss", "Tailwind CSS"},
			{"bootstrap", "Bootstrap"},
			{"typescript", "TypeScript"},
			{"eslint", "ESLint"},
			{"prettier", "Prettier"},
			{"nodemon", "Nodemon"},
			{"axios", "Axios"},
			{"lodash", "Lodash"},
			{"moment", "Moment.js"},
			{"dayjs", "Day.js"},
		},
	}
}

func (h *packageJSONHandler) CanHandle(path string) bool {
	return filepath.Base(path) == "package.json"
}

func (h *packageJSONHandler) Analyze(path string) FileAnalysis {
	data, err := os.ReadFile(path)
	if err != nil {
		return failureAnalysis(KindPackageJSON, "Error reading package.json")
	}

	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return failureAnalysis(KindPackageJSON, "Error reading package.json")
	}

	scripts, err := scriptNames(data)
	if err != nil {
		return failureAnalysis(KindPackageJSON, "Error reading package.json")
	}

	allDeps := make([]string, 0, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name := range manifest.Dependencies {
		allDeps = append(allDeps, name)
	}
	for name := range manifest.DevDependencies {
		allDeps = append(allDeps, name)
	}

	return FileAnalysis{
		FileType:        KindPackageJSON,
		ContentSummary:  fmt.Sprintf("Node.js project with %d dependencies and %d scripts", len(manifest.Dependencies), len(scripts)),
		KeyComponents:   scripts,
		Technologies:    h.techs.detect(allDeps),
		ComplexityScore: clamp(len(allDeps)/5+1, 1, 10),
		LinesOfCode:     prettyLineCount(data),
	}
}

// scriptNames returns the keys of the top-level "scripts" object in
// document order. Returns an empty slice when the object is absent.
func scriptNames(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("manifest root is not an object")
	}

	scripts := []string{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		if key != "scripts" {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}

		open, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if open != json.Delim('{') {
			// "scripts" bound to a non-object; nothing to extract.
			continue
		}
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			if name, ok := nameTok.(string); ok {
				scripts = append(scripts, name)
			}
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, err
		}
	}
	return scripts, nil
}

// skipValue consumes one complete JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// prettyLineCount re-indents the parsed manifest and counts its lines, so
// the metric reflects structure rather than the author's formatting.
func prettyLineCount(data []byte) int {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0
	}
	pretty, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return 0
	}
	return len(strings.Split(string(pretty), "\n"))
}

// requirementsHandler analyzes plain Python dependency lists.
type requirementsHandler struct {
	techs tokenTable
}

func newRequirementsHandler() *requirementsHandler {
	return &requirementsHandler{
		techs: tokenTable{
			{"flask", "Flask"},
			{"django", "Django"},
			{"fastapi", "FastAPI"},
			{"pandas", "Pandas"},
			{"numpy", "NumPy"},
			{"matplotlib", "Matplotlib"},
			{"seaborn", "Seaborn"},
			{"requests", "Requests"},
			{"sqlalchemy", "SQLAlchemy"},
			{"pytest", "Pytest"},
			{"ollama", "Ollama"},
			{"gitpython", "GitPython"},
			{"aiohttp", "Aiohttp"},
			{"httpx", "Httpx"},
			{"pypdf2", "PyPDF2"},
			{"click", "Click"},
			{"rich", "Rich"},
			{"pyyaml", "PyYAML"},
			{"python-dotenv", "Python-dotenv"},
			{"black", "Black"},
			{"isort", "isort"},
			{"mypy", "MyPy"},
			{"pylint", "Pylint"},
			{"celery", "Celery"},
			{"redis", "Redis"},
			{"postgresql", "PostgreSQL"},
			{"mysql", "MySQL"},
			{"sqlite", "SQLite"},
		},
	}
}

func (h *requirementsHandler) CanHandle(path string) bool {
	return filepath.Base(path) == "requirements.txt"
}

func (h *requirementsHandler) Analyze(path string) FileAnalysis {
	data, err := os.ReadFile(path)
	if err != nil {
		return failureAnalysis(KindRequirements, "Error reading requirements.txt")
	}

	lines := strings.Split(string(data), "\n")
	deps := []string{}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		deps = append(deps, stripVersionQualifier(trimmed))
	}

	return FileAnalysis{
		FileType:        KindRequirements,
		ContentSummary:  fmt.Sprintf("Python project with %d dependencies", len(deps)),
		KeyComponents:   deps,
		Technologies:    h.techs.detect(deps),
		ComplexityScore: clamp(len(deps)/3+1, 1, 10),
		LinesOfCode:     len(lines),
	}
}

// stripVersionQualifier cuts "==", ">=" and "<=" constraints off a
// requirement line, keeping the bare package name.
func stripVersionQualifier(dep string) string {
	for _, qualifier := range []string{">=", "==", "<="} {
		if i := strings.Index(dep, qualifier); i >= 0 {
			dep = dep[:i]
		}
	}
	return dep
}
