package theme

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/thematic/internal/ports"
)

type logRecord struct {
	level  string
	msg    string
	fields []interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	records *[]logRecord
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{records: &[]logRecord{}}
}

func (l *recordingLogger) add(level, msg string, fields []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.records = append(*l.records, logRecord{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(_ context.Context, msg string, fields ...interface{}) {
	l.add("debug", msg, fields)
}
func (l *recordingLogger) Info(_ context.Context, msg string, fields ...interface{}) {
	l.add("info", msg, fields)
}
func (l *recordingLogger) Warn(_ context.Context, msg string, fields ...interface{}) {
	l.add("warn", msg, fields)
}
func (l *recordingLogger) Error(_ context.Context, msg string, fields ...interface{}) {
	l.add("error", msg, fields)
}
func (l *recordingLogger) With(...interface{}) ports.Logger { return l }

func (l *recordingLogger) warnings() []logRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logRecord
	for _, r := range *l.records {
		if r.level == "warn" {
			out = append(out, r)
		}
	}
	return out
}
