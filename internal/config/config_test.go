package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.False(t, cfg.Store.Enabled)
	assert.Empty(t, cfg.Scan.ExtraExcludeDirs)
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[output]
format = "json"

[store]
enabled = true
path = "/tmp/history.db"

[scan]
extra_exclude_dirs = ["generated", "third_party"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, "/tmp/history.db", cfg.Store.Path)
	assert.Equal(t, []string{"generated", "third_party"}, cfg.Scan.ExtraExcludeDirs)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store]\nenabled = true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, "markdown", cfg.Output.Format)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
