package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
)

const colorReset = "\033[0m"

var levelColors = map[Level]string{
	WarnLevel:  "\033[33m",
	ErrorLevel: "\033[31m",
	FatalLevel: "\033[1m\033[31m",
}

// DefaultLogger prints one timestamped line per entry:
//
//	[LEVEL] message: error key=value ...
//
// Debug and Info go to the out writer, everything else to errOut. Fatal
// exits the process after writing.
type DefaultLogger struct {
	out    *log.Logger
	errOut *log.Logger
	level  Level
	fields Fields
	colors bool
	exit   func(code int)
}

// NewDefaultLogger logs to stdout and stderr, colored when stdout is a
// terminal.
func NewDefaultLogger() *DefaultLogger {
	l := NewDefaultLoggerWithWriters(os.Stdout, os.Stderr)
	if fi, err := os.Stdout.Stat(); err == nil {
		l.colors = fi.Mode()&os.ModeCharDevice != 0
	}
	return l
}

// NewDefaultLoggerWithWriters returns an uncolored logger at InfoLevel.
func NewDefaultLoggerWithWriters(out, errOut io.Writer) *DefaultLogger {
	return &DefaultLogger{
		out:    log.New(out, "", log.LstdFlags),
		errOut: log.New(errOut, "", log.LstdFlags),
		level:  InfoLevel,
		fields: Fields{},
		exit:   os.Exit,
	}
}

// formatLine renders an entry; keys are sorted so output is stable.
func formatLine(level Level, err error, msg string, fields Fields) string {
	var b strings.Builder
	b.WriteString("[" + level.String() + "] " + msg)
	if err != nil {
		b.WriteString(": " + err.Error())
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

func (d *DefaultLogger) write(level Level, err error, msg string, extra []Fields) {
	if level < d.level {
		return
	}
	line := formatLine(level, err, msg, d.fields.merged(extra...))
	if c, ok := levelColors[level]; ok && d.colors {
		line = c + line + colorReset
	}

	if level <= InfoLevel {
		d.out.Println(line)
		return
	}
	d.errOut.Println(line)
	if level == FatalLevel {
		d.exit(1)
	}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) { d.write(DebugLevel, nil, msg, fields) }
func (d *DefaultLogger) Info(msg string, fields ...Fields)  { d.write(InfoLevel, nil, msg, fields) }
func (d *DefaultLogger) Warn(msg string, fields ...Fields)  { d.write(WarnLevel, nil, msg, fields) }

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.write(ErrorLevel, err, msg, fields)
}

func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	d.write(FatalLevel, err, msg, fields)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	child := *d
	child.fields = d.fields.merged(fields)
	return &child
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return d.WithFields(fields)
	}
	return d
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level = level
}
