// Package logging provides the leveled, field-based logger used by every
// tabchroma component.
package logging

import (
	"context"
	"fmt"
	"maps"
	"strings"
)

// Level orders log entries by severity.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if l < DebugLevel || l > FatalLevel {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel converts a case-insensitive level name into a Level. An empty
// name means InfoLevel and "warning" is accepted for WarnLevel.
func ParseLevel(name string) (Level, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	switch n {
	case "":
		return InfoLevel, nil
	case "WARNING":
		return WarnLevel, nil
	}
	for i, s := range levelNames {
		if s == n {
			return Level(i), nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", name)
}

// Fields are key/value pairs attached to an entry.
type Fields map[string]any

// merged returns a new map holding f overlaid with every map in more.
func (f Fields) merged(more ...Fields) Fields {
	out := make(Fields, len(f))
	maps.Copy(out, f)
	for _, m := range more {
		maps.Copy(out, m)
	}
	return out
}

type contextKey struct{}

// ContextWithFields returns a context carrying fields that WithContext picks up.
func ContextWithFields(ctx context.Context, fields Fields) context.Context {
	return context.WithValue(ctx, contextKey{}, fields)
}

func fieldsFromContext(ctx context.Context) (Fields, bool) {
	if ctx == nil {
		return nil, false
	}
	fields, ok := ctx.Value(contextKey{}).(Fields)
	return fields, ok
}

// Logger is what the parser, walker and serializer log through.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	Fatal(err error, msg string, fields ...Fields)

	// WithFields returns a child logger that adds fields to every entry.
	WithFields(fields Fields) Logger

	// WithContext returns a child logger carrying the fields stored by
	// ContextWithFields, or the logger itself when there are none.
	WithContext(ctx context.Context) Logger

	SetLevel(level Level)
}

var globalLogger Logger = NewDefaultLogger()

// SetGlobalLogger replaces the process-wide logger. nil silences logging.
func SetGlobalLogger(logger Logger) {
	if logger == nil {
		logger = NoOpLogger{}
	}
	globalLogger = logger
}

func GetGlobalLogger() Logger {
	return globalLogger
}

// OrGlobal returns logger, or the global logger when logger is nil.
func OrGlobal(logger Logger) Logger {
	if logger == nil {
		return globalLogger
	}
	return logger
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...Fields)        {}
func (NoOpLogger) Info(string, ...Fields)         {}
func (NoOpLogger) Warn(string, ...Fields)         {}
func (NoOpLogger) Error(error, string, ...Fields) {}
func (NoOpLogger) Fatal(error, string, ...Fields) {}
func (NoOpLogger) SetLevel(Level)                 {}

func (n NoOpLogger) WithFields(Fields) Logger           { return n }
func (n NoOpLogger) WithContext(context.Context) Logger { return n }
