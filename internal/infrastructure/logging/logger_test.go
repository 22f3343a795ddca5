package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/thematic/internal/ports"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	raw := strings.TrimSpace(buf.String())
	if raw == "" {
		return nil
	}
	var out []map[string]interface{}
	for _, line := range strings.Split(raw, "\n") {
		payload := make(map[string]interface{})
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			t.Fatalf("failed to parse log line %q: %v", line, err)
		}
		out = append(out, payload)
	}
	return out
}

func TestLoggerIncludesCorrelationIDAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Level:     "debug",
		Formatter: cblog.JSONFormatter,
		Component: "resolver",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Warn(ctx, "theme not found, falling back", "theme", "solarized", "fallback", "light")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	payload := lines[0]
	if payload["component"] != "resolver" {
		t.Fatalf("expected component field, got %v", payload["component"])
	}
	if payload["correlation_id"] != "abc123" {
		t.Fatalf("expected correlation_id abc123, got %v", payload["correlation_id"])
	}
	if payload["theme"] != "solarized" || payload["fallback"] != "light" {
		t.Fatalf("expected theme fields, got %+v", payload)
	}
	if payload["msg"] != "theme not found, falling back" {
		t.Fatalf("expected message to be recorded, got %v", payload["msg"])
	}
	if payload["level"] != "warn" {
		t.Fatalf("expected warn level, got %v", payload["level"])
	}
}

func TestLoggerWithOverridesFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Formatter: cblog.JSONFormatter,
		Component: "cli",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	child := logger.With("component", "store")
	child.Info(context.Background(), "theme changed", "theme", "dark")

	payload := decodeLines(t, &buf)[0]
	if payload["component"] != "store" {
		t.Fatalf("expected component=store, got %v", payload["component"])
	}
	if payload["theme"] != "dark" {
		t.Fatalf("expected theme dark, got %v", payload["theme"])
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "warn", Formatter: cblog.JSONFormatter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info(context.Background(), "quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %s", buf.String())
	}
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "chatty"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestMergeFieldsReplacesInPlace(t *testing.T) {
	got := mergeFields(
		[]interface{}{"a", 1, "b", 2},
		[]interface{}{"b", 3, 42, "skipped", "c", 4},
	)
	want := []interface{}{"a", 1, "b", 3, "c", 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNoOpLogger(t *testing.T) {
	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello world")

	if noOp.With("key", "value") != noOp {
		t.Fatalf("expected With to return same no-op logger instance")
	}
	if OrNoOp(nil) == nil {
		t.Fatal("expected OrNoOp to substitute a logger")
	}
	if OrNoOp(noOp) != noOp {
		t.Fatal("expected OrNoOp to keep a non-nil logger")
	}
}
