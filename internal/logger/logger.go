// Package logger provides verbose logging for the Vibeyf CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to trace the questionnaire run. While the
// full-screen chat view owns the terminal, output is redirected to a file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	now               = time.Now
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

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// RedirectToFile appends verbose logs to the file at path, creating parent
// directories as needed. The returned function restores stderr output and
// closes the file. When verbose mode is off nothing is opened.
func RedirectToFile(path string) (func(), error) {
	if !IsVerbose() {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	mu.Lock()
	prev := output
	output = f
	mu.Unlock()

	return func() {
		mu.Lock()
		output = prev
		mu.Unlock()
		_ = f.Close()
	}, nil
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write("[DEBUG] ", format, args...)
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
	write("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write("[WARN] ", format, args...)
}

// Timed logs how long an operation took once the returned func is called.
//
//	defer logger.Timed("submit")()
func Timed(name string) func() {
	start := now()
	return func() {
		Debug("%s took %s", name, now().Sub(start).Round(time.Millisecond))
	}
}

func write(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}
