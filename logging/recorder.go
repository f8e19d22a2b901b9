package logging

import (
	"context"
	"sync"
)

// Entry is one log call captured by a Recorder.
type Entry struct {
	Level   Level
	Message string
	Err     error
	Fields  Fields
}

// Recorder is a Logger that keeps entries in memory. Loggers derived with
// WithFields share the parent's entry list.
type Recorder struct {
	mu      *sync.Mutex
	entries *[]Entry
	fields  Fields
	level   Level
}

// NewRecorder returns an empty Recorder that records every level.
func NewRecorder() *Recorder {
	return &Recorder{
		mu:      &sync.Mutex{},
		entries: &[]Entry{},
		fields:  make(Fields),
		level:   DebugLevel,
	}
}

func (r *Recorder) record(level Level, err error, msg string, fields ...Fields) {
	if level < r.level {
		return
	}
	all := r.fields.merged(fields...)

	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = append(*r.entries, Entry{Level: level, Message: msg, Err: err, Fields: all})
}

func (r *Recorder) Debug(msg string, fields ...Fields) { r.record(DebugLevel, nil, msg, fields...) }
func (r *Recorder) Info(msg string, fields ...Fields)  { r.record(InfoLevel, nil, msg, fields...) }
func (r *Recorder) Warn(msg string, fields ...Fields)  { r.record(WarnLevel, nil, msg, fields...) }

func (r *Recorder) Error(err error, msg string, fields ...Fields) {
	r.record(ErrorLevel, err, msg, fields...)
}

func (r *Recorder) Fatal(err error, msg string, fields ...Fields) {
	r.record(FatalLevel, err, msg, fields...)
}

func (r *Recorder) WithFields(fields Fields) Logger {
	return &Recorder{mu: r.mu, entries: r.entries, fields: r.fields.merged(fields), level: r.level}
}

func (r *Recorder) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return r.WithFields(fields)
	}
	return r
}

func (r *Recorder) SetLevel(level Level) {
	r.level = level
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(*r.entries))
	copy(out, *r.entries)
	return out
}

// AtLevel returns the recorded entries with exactly the given level.
func (r *Recorder) AtLevel(level Level) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
