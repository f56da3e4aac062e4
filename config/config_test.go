package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscope/depscope/analyzer"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))

	require.NoError(t, err)
	assert.Equal(t, analyzer.DefaultConfig(), cfg)
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := []byte("concurrency: 8\naliases:\n  \"@app\": src\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, map[string]string{"@app": "src"}, cfg.Aliases)
	assert.Equal(t, analyzer.DefaultConfig().MaxDepth, cfg.MaxDepth)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("concurrency: 0\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(":not yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := analyzer.DefaultConfig()
	cfg.Concurrency = 2

	require.NoError(t, Write(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWriteRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Write(path, analyzer.DefaultConfig()))

	err := Write(path, analyzer.DefaultConfig())
	assert.ErrorIs(t, err, fs.ErrExist)

	require.NoError(t, Overwrite(path, analyzer.DefaultConfig()))
}
