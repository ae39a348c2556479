// Package logger provides verbose logging for bordermap.
// When verbose mode is enabled via the --verbose flag, messages are printed
// to stderr so users can follow what the border engine accepted or rejected.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
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

func emit(level, scope, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	if scope != "" {
		fmt.Fprintf(output, "[%s] %s: %s\n", level, scope, fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { emit("DEBUG", "", format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { emit("INFO", "", format, args...) }

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) { emit("WARN", "", format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Scoped prefixes every message with a component name.
type Scoped struct {
	name string
}

// Scope returns a logger that tags its messages with name.
func Scope(name string) *Scoped {
	return &Scoped{name: name}
}

// Debug prints a scoped message if verbose mode is enabled.
func (s *Scoped) Debug(format string, args ...any) { emit("DEBUG", s.name, format, args...) }

// Info prints a scoped message if verbose mode is enabled.
func (s *Scoped) Info(format string, args ...any) { emit("INFO", s.name, format, args...) }

// Warn prints a scoped message if verbose mode is enabled.
func (s *Scoped) Warn(format string, args ...any) { emit("WARN", s.name, format, args...) }
