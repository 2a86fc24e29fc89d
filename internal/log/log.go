// Package log provides the application-wide leveled, categorized logger.
// Log lines go to a file so they never corrupt terminal output; before Init
// is called every log call is a no-op.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Level is the log severity.
type Level int

const (
	// LevelDebug logs everything.
	LevelDebug Level = iota
	// LevelInfo logs info and above.
	LevelInfo
	// LevelWarn logs warnings and errors.
	LevelWarn
	// LevelError logs errors only.
	LevelError
)

// String returns the level name as it appears in log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a config string to a Level. Unknown values default to
// LevelDebug.
func ParseLevel(s string) Level {
	switch s {
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelDebug
	}
}

// Category tags a log line with the subsystem it came from.
type Category string

const (
	// CatHistory covers block history mutations and navigation.
	CatHistory Category = "history"
	// CatStorage covers snapshot save/load and exports.
	CatStorage Category = "storage"
	// CatConfig covers configuration loading.
	CatConfig Category = "config"
	// CatCLI covers command-line entry points.
	CatCLI Category = "cli"
)

var (
	mu       sync.RWMutex
	logger   *slog.Logger
	minLevel = LevelDebug
)

// Init opens (or creates) the log file at path and installs the file-backed
// logger. It returns a cleanup function that flushes and closes the file.
func Init(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	install(f)

	cleanup := func() {
		mu.Lock()
		logger = nil
		mu.Unlock()
		_ = f.Close()
	}
	return cleanup, nil
}

func install(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// SetMinLevel sets the minimum severity that gets written.
func SetMinLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

// Debug logs a debug-level line.
func Debug(cat Category, msg string, kv ...any) {
	write(LevelDebug, cat, msg, kv...)
}

// Info logs an info-level line.
func Info(cat Category, msg string, kv ...any) {
	write(LevelInfo, cat, msg, kv...)
}

// Warn logs a warning.
func Warn(cat Category, msg string, kv ...any) {
	write(LevelWarn, cat, msg, kv...)
}

// Error logs an error.
func Error(cat Category, msg string, kv ...any) {
	write(LevelError, cat, msg, kv...)
}

func write(l Level, cat Category, msg string, kv ...any) {
	mu.RLock()
	lg := logger
	min := minLevel
	mu.RUnlock()

	if lg == nil || l < min {
		return
	}

	args := make([]any, 0, len(kv)+2)
	args = append(args, "cat", string(cat))
	args = append(args, kv...)

	switch l {
	case LevelDebug:
		lg.Debug(msg, args...)
	case LevelInfo:
		lg.Info(msg, args...)
	case LevelWarn:
		lg.Warn(msg, args...)
	case LevelError:
		lg.Error(msg, args...)
	}
}
