package contextpack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ani-2003-HD/portfolio-agent/internal/analysis"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func paths(pack *Pack) []string {
	var out []string
	for _, f := range pack.Files {
		out = append(out, f.Path)
	}
	return out
}

func TestCollectMissingRoot(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, analysis.ErrNotFound)
}

func TestCollectPriorityFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "README.md"), "# Demo\n")
	writeFile(t, filepath.Join(dir, "requirements.txt"), "flask\n")

	pack, err := Collect(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), pack.ProjectName)
	assert.Equal(t, []string{"README.md", "requirements.txt"}, paths(pack))
	assert.Equal(t, "# Demo\n", pack.Files[0].Content)
	assert.False(t, pack.Files[0].Truncated)
}

func TestCollectTruncatesLargeDescriptor(t *testing.T) {
	dir := t.TempDir()
	big := strings.Repeat("x", 6000)
	writeFile(t, filepath.Join(dir, "README.md"), big)

	pack, err := Collect(dir)
	require.NoError(t, err)

	require.Len(t, pack.Files, 1)
	f := pack.Files[0]
	assert.True(t, f.Truncated)
	assert.True(t, strings.HasSuffix(f.Content, "... (truncated)"))
	assert.Equal(t, 5000+len("... (truncated)"), len(f.Content))
}

func TestCollectSamplesAtMostFiveSourceFiles(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 8; i++ {
		writeFile(t, filepath.Join(dir, fmt.Sprintf("f%d.py", i)), "x = 1\n")
	}

	pack, err := Collect(dir)
	require.NoError(t, err)
	assert.Len(t, pack.Files, 5)
}

func TestCollectSkipsLargeSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "big.py"), strings.Repeat("x", 2000))
	writeFile(t, filepath.Join(dir, "small.py"), "x = 1\n")

	pack, err := Collect(dir)
	require.NoError(t, err)

	// The large file still counts toward the sample cap but is not
	// included.
	assert.Equal(t, []string{"small.py"}, paths(pack))
}

func TestCollectSkipsExcludedDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "node_modules", "index.js"), "x\n")
	writeFile(t, filepath.Join(dir, "src", "main.py"), "x = 1\n")

	pack, err := Collect(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.py"}, paths(pack))
}
