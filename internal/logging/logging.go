// Package logging provides the zerolog-backed leveled logger used by the
// CLI and TUI layers. The almanac library itself never logs.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with printf-style leveled methods.
type Logger struct {
	zlog zerolog.Logger
}

// ParseLevel parses a log level string, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN", "warning", "WARNING":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a logger writing human-readable lines to stderr. Logs go to
// stderr so they never interleave with command output or the TUI on stdout.
func New(level zerolog.Level) *Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05.000",
	}
	zlog := zerolog.New(writer).With().Timestamp().Logger().Level(level)
	return &Logger{zlog: zlog}
}

// NewJSON creates a logger writing structured JSON lines to w.
func NewJSON(w io.Writer, level zerolog.Level) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	zlog := zerolog.New(w).With().Timestamp().Logger().Level(level)
	return &Logger{zlog: zlog}
}

// WithComponent returns a child logger tagged with a component field.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{zlog: l.zlog.With().Str("component", component).Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.zlog.Debug().Msgf(format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.zlog.Info().Msgf(format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.zlog.Warn().Msgf(format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.zlog.Error().Msgf(format, args...)
}

// Discard returns a logger that drops all output.
func Discard() *Logger {
	return &Logger{zlog: zerolog.New(io.Discard).Level(zerolog.Disabled)}
}
