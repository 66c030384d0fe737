package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, dir string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	return string(content)
}

func TestLogger_WritesFormattedLine(t *testing.T) {
	dir := t.TempDir()
	l := New(dir, slog.LevelInfo)
	defer func() { _ = l.Close() }()

	l.Info("store", "added task #42")

	content := readLog(t, dir)
	assert.Contains(t, content, "[INFO] [store] added task #42")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	l := New(dir, slog.LevelWarn)
	defer func() { _ = l.Close() }()

	l.Debug("store", "too quiet")
	l.Info("store", "still too quiet")
	l.Warn("store", "heard")
	l.Error("store", "also heard")

	content := readLog(t, dir)
	assert.NotContains(t, content, "too quiet")
	assert.Contains(t, content, "[WARN] [store] heard")
	assert.Contains(t, content, "[ERROR] [store] also heard")
}

func TestLogger_DisabledWhenDirEmpty(t *testing.T) {
	l := New("", slog.LevelDebug)
	l.Info("store", "goes nowhere")
	assert.NoError(t, l.Close())
}

func TestLogger_AppendsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	l1 := New(dir, slog.LevelInfo)
	l1.Info("store", "first run")
	require.NoError(t, l1.Close())

	l2 := New(dir, slog.LevelInfo)
	l2.Info("store", "second run")
	require.NoError(t, l2.Close())

	content := readLog(t, dir)
	assert.Contains(t, content, "first run")
	assert.Contains(t, content, "second run")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC)
	line := formatLog(ts, slog.LevelInfo, "store", "hello")
	assert.Equal(t, "[2025-12-30 09:32:51] [INFO] [store] hello\n", line)
}
