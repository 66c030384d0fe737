package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_DefaultsWhenNoFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "newest", cfg.Sort)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_GlobalConfig(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, ConfigFileName), `
data_dir = "/tmp/todo-data"
sort = "oldest"

[log]
level = "debug"
`)

	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/todo-data", cfg.DataDir)
	assert.Equal(t, "oldest", cfg.Sort)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_LocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	localDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, ConfigFileName), `sort = "oldest"`)
	writeFile(t, filepath.Join(localDir, LocalFileName), `sort = "newest"`)

	loader := NewLoaderWithGlobalDir(localDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "newest", cfg.Sort)
}

func TestLoader_PartialOverlayKeepsDefaults(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, filepath.Join(localDir, LocalFileName), `sort = "oldest"`)

	loader := NewLoaderWithGlobalDir(localDir, t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "oldest", cfg.Sort)
	assert.Equal(t, "info", cfg.Log.Level, "unset fields keep defaults")
}

func TestLoader_MalformedFile(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, filepath.Join(localDir, LocalFileName), `sort = [broken`)

	loader := NewLoaderWithGlobalDir(localDir, t.TempDir())
	_, err := loader.Load()
	assert.ErrorContains(t, err, "parse")
}
