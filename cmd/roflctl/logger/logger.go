// Package logger holds the process-wide structured logger for roflctl.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It discards all output until Init is called.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix     = "roflctl-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Level  slog.Level // minimum level
	JSON   bool       // JSON records instead of key=value text
	Writer io.Writer  // destination when LogDir is empty. Default: os.Stderr
	LogDir string     // when set, records go to a daily file in this directory
}

// Init configures logging. Call before any log calls. The returned func
// closes the log file, if one was opened.
func Init(opts Options) (func() error, error) {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	noop := func() error { return nil }

	if opts.LogDir == "" {
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		L = slog.New(newHandler(w, opts.JSON, handlerOpts))
		return noop, nil
	}

	if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
		return noop, err
	}
	cleanOldLogs(opts.LogDir, time.Now())

	filename := filepath.Join(opts.LogDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return noop, err
	}
	// Files are always JSON so they can be grepped with jq.
	L = slog.New(slog.NewJSONHandler(f, handlerOpts))
	return f.Close, nil
}

func newHandler(w io.Writer, asJSON bool, opts *slog.HandlerOptions) slog.Handler {
	if asJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// cleanOldLogs removes log files older than retentionDays. Best-effort.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		// roflctl-2024-01-05.log
		logDate, err := time.Parse("2006-01-02", strings.TrimSuffix(strings.TrimPrefix(name, logPrefix), logSuffix))
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			_ = os.Remove(filepath.Join(logDir, name))
		}
	}
}
