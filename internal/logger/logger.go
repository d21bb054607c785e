// Package logger provides leveled logging for the catalog CLI.
// Debug, Info and Warn only print in verbose mode (--verbose). Error always
// prints, so failed mutations leave a trace even when the TUI is quiet.
// While the TUI owns the terminal, output is redirected to a log file and
// every line is prefixed with a timestamp.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type level string

const (
	levelDebug level = "DEBUG"
	levelInfo  level = "INFO"
	levelWarn  level = "WARN"
	levelError level = "ERROR"
)

var (
	mu      sync.RWMutex
	verbose bool
	stamped bool
	output  io.Writer = os.Stderr

	// now is replaced in tests.
	now = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs and turns timestamps off.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	stamped = false
}

// ToFile redirects all log output to path, creating parent directories.
// The returned function restores the previous writer and closes the file.
func ToFile(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	mu.Lock()
	prevOut, prevStamped := output, stamped
	output, stamped = f, true
	mu.Unlock()

	return func() {
		mu.Lock()
		output, stamped = prevOut, prevStamped
		mu.Unlock()
		_ = f.Close()
	}, nil
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(levelDebug, format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(levelInfo, format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf(levelWarn, format, args...)
}

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) {
	logf(levelError, format, args...)
}

func logf(lvl level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if lvl != levelError && !verbose {
		return
	}
	prefix := "[" + string(lvl) + "] "
	if stamped {
		prefix = now().Format(time.RFC3339) + " " + prefix
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
