// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
//
// Loggers write to stderr since stdout carries the IPC stream in server mode.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed charm log that follows the global log level.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter is New writing to w.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
