// Package logging builds the charmbracelet/log logger used across the grid.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const Prefix = "grid"

// New returns a text logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		if lvl, err = log.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          Prefix,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
	}), nil
}

// Discard is a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile appends to path and returns the logger with the file to close.
// The TUI owns the terminal, so interactive sessions log here or nowhere.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	l, err := New(f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return l, f, nil
}
