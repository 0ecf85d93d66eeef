package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWriterLevels(t *testing.T) {
	var out bytes.Buffer
	closeFn, err := Init(Options{Level: slog.LevelWarn, Writer: &out})
	require.NoError(t, err)
	defer closeFn()

	L.Info("hidden")
	L.Warn("shown", "file", "a.rofl")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "file=a.rofl")
}

func TestInitJSON(t *testing.T) {
	var out bytes.Buffer
	_, err := Init(Options{Level: slog.LevelDebug, JSON: true, Writer: &out})
	require.NoError(t, err)

	L.Debug("parsed", "step", "infer")
	assert.Contains(t, out.String(), `"step":"infer"`)
}

func TestInitLogDir(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "roflctl-2000-01-01.log")
	unrelated := filepath.Join(dir, "notes.log")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(unrelated, []byte("keep"), 0o644))

	closeFn, err := Init(Options{Level: slog.LevelInfo, LogDir: dir})
	require.NoError(t, err)
	L.Info("indexed", "count", 3)
	require.NoError(t, closeFn())

	assert.NoFileExists(t, stale)
	assert.FileExists(t, unrelated)

	today := filepath.Join(dir, "roflctl-"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(today)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"count":3`)
}
