// Package logger holds the process-wide structured logger. It discards all
// output until Init is called.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It's initialized to discard all output by default.
var L = slog.New(slog.DiscardHandler)

// logFile is the dated file opened for Options.LogDir, closed when Init
// replaces it.
var logFile *os.File

const (
	logPrefix     = "heapctl-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
	JSON    bool       // JSON handler instead of the text handler
	Writer  io.Writer  // Destination. Default: os.Stderr
	LogDir  string     // When set, log to a dated file in this directory instead of Writer
}

// Init configures logging. Call from main() before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) error {
	prev := logFile
	defer func() {
		if prev != nil && prev != logFile {
			_ = prev.Close()
		}
	}()

	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		logFile = nil
		return nil
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	json := opts.JSON
	var file *os.File

	if opts.LogDir != "" {
		if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
			return err
		}

		// Clean up old logs (best-effort, ignore errors)
		cleanOldLogs(opts.LogDir)

		filename := filepath.Join(opts.LogDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
		f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		w = f
		file = f
		json = true
	}
	logFile = file

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if json {
		L = slog.New(slog.NewJSONHandler(w, handlerOpts))
	} else {
		L = slog.New(slog.NewTextHandler(w, handlerOpts))
	}
	return nil
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// Parse date from filename: heapctl-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
