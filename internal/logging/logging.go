// Package logging carries the process-wide logger. It starts out writing
// to a discarded sink so any package can log unconditionally; main points
// it somewhere useful once configuration is known. While the TUI owns the
// terminal, a file is the only sane destination.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// L is the package-level logger. Callers use the helpers below.
var L = log.NewWithOptions(io.Discard, log.Options{ReportTimestamp: true})

// Setup points L at w with the given level. An unknown level string falls
// back to info.
func Setup(w io.Writer, level string) {
	L.SetOutput(w)
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	L.SetLevel(lvl)
}

// SetupFile appends logs to the named file, creating it as needed, and
// returns the handle for closing on shutdown.
func SetupFile(path, level string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Setup(f, level)
	return f, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
