package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/thematic/internal/infrastructure/kvstore"
	"github.com/alexisbeaulieu97/thematic/internal/ports"
	"github.com/alexisbeaulieu97/thematic/internal/preferences"
)

var errUnavailable = errors.New("storage unavailable")

// fakeKV wraps a MemoryStore with optional gates that hold Get or Set until
// released, plus failure switches and a log of writes.
type fakeKV struct {
	inner *kvstore.MemoryStore

	mu       sync.Mutex
	getGate  chan struct{}
	setGate  chan struct{}
	failGet  bool
	failSet  bool
	gets     int
	writes   []string
	getEnter chan struct{}
}

func newFakeKV() *fakeKV {
	return &fakeKV{inner: kvstore.NewMemoryStore()}
}

func (f *fakeKV) seed(t *testing.T, value string) {
	t.Helper()
	require.NoError(t, f.inner.Set(context.Background(), preferences.ThemeNameKey, value))
}

func (f *fakeKV) stored(t *testing.T) (string, bool) {
	t.Helper()
	value, ok, err := f.inner.Get(context.Background(), preferences.ThemeNameKey)
	require.NoError(t, err)
	return value, ok
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	f.gets++
	gate, fail, enter := f.getGate, f.failGet, f.getEnter
	f.mu.Unlock()

	if enter != nil {
		close(enter)
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", false, ctx.Err()
		}
	}
	if fail {
		return "", false, errUnavailable
	}
	return f.inner.Get(ctx, key)
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	gate, fail := f.setGate, f.failSet
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	f.writes = append(f.writes, value)
	f.mu.Unlock()
	if fail {
		return errUnavailable
	}
	return f.inner.Set(ctx, key, value)
}

func (f *fakeKV) Delete(ctx context.Context, key string) error {
	return f.inner.Delete(ctx, key)
}

func (f *fakeKV) getCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

func (f *fakeKV) writeLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

type logEntry struct {
	level string
	msg   string
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{}
}

func (r *recordingLogger) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, logEntry{level: level, msg: msg})
}

func (r *recordingLogger) Debug(_ context.Context, msg string, _ ...interface{}) { r.add("debug", msg) }
func (r *recordingLogger) Info(_ context.Context, msg string, _ ...interface{})  { r.add("info", msg) }
func (r *recordingLogger) Warn(_ context.Context, msg string, _ ...interface{})  { r.add("warn", msg) }
func (r *recordingLogger) Error(_ context.Context, msg string, _ ...interface{}) { r.add("error", msg) }
func (r *recordingLogger) With(...interface{}) ports.Logger                      { return r }

func (r *recordingLogger) warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		if e.level == "warn" {
			out = append(out, e.msg)
		}
	}
	return out
}

func newTestStore(t *testing.T, kv ports.KeyValueStore, opts Options) (*Store, *recordingLogger) {
	t.Helper()
	logs := newRecordingLogger()
	if opts.Logger == nil {
		opts.Logger = logs
	}
	if kv != nil && opts.Preferences == nil {
		opts.Preferences = preferences.NewAdapter(kv, opts.Logger)
	}
	s := New(opts)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Close(ctx)
	})
	return s, logs
}

func waitReady(t *testing.T, s *Store) {
	t.Helper()
	select {
	case <-s.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("store never became active")
	}
}

func closeStore(t *testing.T, s *Store) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Close(ctx))
}
