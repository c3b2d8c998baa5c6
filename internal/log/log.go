// Package log provides leveled, context-aware logging for venvfind.
//
// Diagnostics go to stderr; primary data output is the output package's
// job. Three levels exist: silent (nothing), info (progress messages),
// and verbose (every probe and cache decision).
package log

import (
	"context"
	"fmt"
	"io"
)

// Level controls how much the logger emits.
type Level int

const (
	Silent Level = iota
	Info
	Verbose
)

// ParseLevel maps a config log_level string onto a Level.
// Unknown strings map to Info.
func ParseLevel(s string) Level {
	switch s {
	case "silent":
		return Silent
	case "verbose":
		return Verbose
	default:
		return Info
	}
}

type ctxKey struct{}

// Logger writes leveled diagnostics.
type Logger struct {
	out   io.Writer
	level Level
}

// New creates a new logger.
func New(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a silent logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard, level: Silent}
}

// Infof writes a formatted line at info level.
func (l *Logger) Infof(format string, args ...any) {
	if l.level >= Info {
		fmt.Fprintf(l.out, format+"\n", args...)
	}
}

// Verbosef writes a formatted line at verbose level.
func (l *Logger) Verbosef(format string, args ...any) {
	if l.level >= Verbose {
		fmt.Fprintf(l.out, format+"\n", args...)
	}
}

// Warnf writes a formatted warning. Warnings are shown unless silent.
func (l *Logger) Warnf(format string, args ...any) {
	if l.level >= Info {
		fmt.Fprintf(l.out, "Warning: "+format+"\n", args...)
	}
}

// Level returns the logger's level.
func (l *Logger) Level() Level {
	return l.level
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
