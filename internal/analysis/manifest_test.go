package analysis

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageJSONHandlerCanHandle(t *testing.T) {
	h := newPackageJSONHandler()

	assert.True(t, h.CanHandle("package.json"))
	assert.True(t, h.CanHandle(filepath.Join("web", "package.json")))
	assert.False(t, h.CanHandle("package-lock.json"))
	assert.False(t, h.CanHandle("composer.json"))
}

func TestPackageJSONHandlerAnalyze(t *testing.T) {
	dir := t.TempDir()
	manifest := `{
  "name": "demo",
  "scripts": {
    "build": "vite build",
    "test": "jest",
    "lint": "eslint ."
  },
  "dependencies": {
    "react": "^18.2.0",
    "axios": "^1.6.0"
  },
  "devDependencies": {
    "jest": "^29.0.0"
  }
}`
	path := filepath.Join(dir, "package.json")
	writeFile(t, path, manifest)

	fa := newPackageJSONHandler().Analyze(path)

	assert.Equal(t, KindPackageJSON, fa.FileType)
	assert.Equal(t, "Node.js project with 2 dependencies and 3 scripts", fa.ContentSummary)
	// Script names in document order.
	assert.Equal(t, []string{"build", "test", "lint"}, fa.KeyComponents)
	assert.Equal(t, []string{"Axios", "Jest", "React"}, fa.Technologies)
	// 3 total dependencies -> 3/5 + 1.
	assert.Equal(t, 1, fa.ComplexityScore)
	assert.Greater(t, fa.LinesOfCode, 0)
}

func TestPackageJSONHandlerComplexityGrowsWithDependencies(t *testing.T) {
	dir := t.TempDir()
	manifest := `{"dependencies": {
		"a": "1", "b": "1", "c": "1", "d": "1", "e": "1",
		"f": "1", "g": "1", "h": "1", "i": "1", "j": "1", "k": "1"
	}}`
	path := filepath.Join(dir, "package.json")
	writeFile(t, path, manifest)

	fa := newPackageJSONHandler().Analyze(path)
	// 11 dependencies -> 11/5 + 1 = 3.
	assert.Equal(t, 3, fa.ComplexityScore)
	assert.Empty(t, fa.KeyComponents)
}

func TestPackageJSONHandlerMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	writeFile(t, path, "{not json")

	fa := newPackageJSONHandler().Analyze(path)

	assert.Equal(t, "Error reading package.json", fa.ContentSummary)
	assert.Equal(t, 1, fa.ComplexityScore)
	assert.Equal(t, 0, fa.LinesOfCode)
	assert.Empty(t, fa.KeyComponents)
	assert.Empty(t, fa.Technologies)
}

func TestScriptNamesDocumentOrder(t *testing.T) {
	data := []byte(`{
		"dependencies": {"x": "1"},
		"scripts": {"z-first": "a", "a-second": "b", "m-third": "c"},
		"nested": {"scripts": {"ignored": "d"}}
	}`)

	names, err := scriptNames(data)
	require.NoError(t, err)
	// Document order preserved, nested "scripts" objects ignored.
	assert.Equal(t, []string{"z-first", "a-second", "m-third"}, names)
}

func TestScriptNamesAbsent(t *testing.T) {
	names, err := scriptNames([]byte(`{"name": "demo"}`))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRequirementsHandlerCanHandle(t *testing.T) {
	h := newRequirementsHandler()

	assert.True(t, h.CanHandle("requirements.txt"))
	assert.True(t, h.CanHandle(filepath.Join("api", "requirements.txt")))
	assert.False(t, h.CanHandle("requirements-dev.txt"))
}

func TestRequirementsHandlerAnalyze(t *testing.T) {
	dir := t.TempDir()
	content := `flask==2.3.0
requests>=2.31
pandas<=2.0
# a comment

numpy
pytest==7.4.0
sqlalchemy>=2.0
click
rich
celery
`
	path := filepath.Join(dir, "requirements.txt")
	writeFile(t, path, content)

	fa := newRequirementsHandler().Analyze(path)

	assert.Equal(t, KindRequirements, fa.FileType)
	assert.Equal(t, "Python project with 9 dependencies", fa.ContentSummary)
	// Version qualifiers stripped from the left.
	assert.Equal(t, []string{
		"flask", "requests", "pandas", "numpy", "pytest",
		"sqlalchemy", "click", "rich", "celery",
	}, fa.KeyComponents)
	assert.Contains(t, fa.Technologies, "Flask")
	assert.Contains(t, fa.Technologies, "Pytest")
	// 9 dependencies -> 9/3 + 1 = 4.
	assert.Equal(t, 4, fa.ComplexityScore)
	// Raw line count including the comment, the blank and the trailing
	// newline's empty segment.
	assert.Equal(t, 12, fa.LinesOfCode)
}

func TestRequirementsHandlerUnreadable(t *testing.T) {
	fa := newRequirementsHandler().Analyze(filepath.Join(t.TempDir(), "requirements.txt"))

	assert.Equal(t, "Error reading requirements.txt", fa.ContentSummary)
	assert.Equal(t, 1, fa.ComplexityScore)
	assert.Equal(t, 0, fa.LinesOfCode)
}

func TestStripVersionQualifier(t *testing.T) {
	cases := map[string]string{
		"flask==2.3.0":   "flask",
		"requests>=2.31": "requests",
		"pandas<=2.0":    "pandas",
		"numpy":          "numpy",
	}
	for in, want := range cases {
		assert.Equal(t, want, stripVersionQualifier(in), in)
	}
}
