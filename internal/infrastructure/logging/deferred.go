package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/thematic/internal/ports"
)

const defaultDeferredLimit = 1000

type entryLevel int

const (
	levelDebug entryLevel = iota
	levelInfo
	levelWarn
	levelError
)

type deferredEntry struct {
	ctx    context.Context
	level  entryLevel
	msg    string
	fields []interface{}
}

// Deferred holds log entries until Release is called, then forwards
// everything to the released delegate. The CLI uses it before configuration
// has chosen a real logger and while the preview owns the terminal.
type Deferred struct {
	mu       sync.Mutex
	limit    int
	entries  []deferredEntry
	delegate ports.Logger
	dropped  int
}

// NewDeferred creates a Deferred that keeps at most limit entries, dropping
// the oldest once full. limit <= 0 selects 1000.
func NewDeferred(limit int) *Deferred {
	if limit <= 0 {
		limit = defaultDeferredLimit
	}
	return &Deferred{limit: limit}
}

// Logger returns a ports.Logger writing into d.
func (d *Deferred) Logger() ports.Logger {
	return &deferredLogger{sink: d}
}

// Hold stops forwarding and starts buffering again.
func (d *Deferred) Hold() {
	d.mu.Lock()
	d.delegate = nil
	d.mu.Unlock()
}

// Release replays held entries to delegate in order and forwards later
// entries directly. Entries logged during the replay are held and replayed
// after the older ones. It returns how many entries were dropped for space.
func (d *Deferred) Release(delegate ports.Logger) int {
	dropped := 0
	for {
		d.mu.Lock()
		pending := d.entries
		dropped += d.dropped
		d.entries = nil
		d.dropped = 0
		if len(pending) == 0 || delegate == nil {
			d.delegate = delegate
			d.mu.Unlock()
			return dropped
		}
		d.delegate = nil
		d.mu.Unlock()

		for _, entry := range pending {
			emit(delegate, entry)
		}
	}
}

func (d *Deferred) add(entry deferredEntry) {
	d.mu.Lock()
	if delegate := d.delegate; delegate != nil {
		d.mu.Unlock()
		emit(delegate, entry)
		return
	}
	defer d.mu.Unlock()

	if len(d.entries) == d.limit {
		copy(d.entries, d.entries[1:])
		d.entries[len(d.entries)-1] = entry
		d.dropped++
		return
	}
	d.entries = append(d.entries, entry)
}

func emit(delegate ports.Logger, entry deferredEntry) {
	switch entry.level {
	case levelDebug:
		delegate.Debug(entry.ctx, entry.msg, entry.fields...)
	case levelWarn:
		delegate.Warn(entry.ctx, entry.msg, entry.fields...)
	case levelError:
		delegate.Error(entry.ctx, entry.msg, entry.fields...)
	default:
		delegate.Info(entry.ctx, entry.msg, entry.fields...)
	}
}

type deferredLogger struct {
	sink   *Deferred
	fields []interface{}
}

func (l *deferredLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, levelDebug, msg, fields)
}

func (l *deferredLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, levelInfo, msg, fields)
}

func (l *deferredLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, levelWarn, msg, fields)
}

func (l *deferredLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, levelError, msg, fields)
}

func (l *deferredLogger) With(fields ...interface{}) ports.Logger {
	return &deferredLogger{sink: l.sink, fields: mergeFields(l.fields, fields)}
}

func (l *deferredLogger) add(ctx context.Context, level entryLevel, msg string, fields []interface{}) {
	if l == nil || l.sink == nil {
		return
	}
	l.sink.add(deferredEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: mergeFields(l.fields, fields),
	})
}
