package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	traceID := func(ctx context.Context) string { return "abc123" }
	log := New(&buf, LevelInfo, "concerts", traceID)

	log.Info(context.Background(), "created", "id", 1)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	want := map[string]any{
		"level":    "info",
		"msg":      "created",
		"service":  "concerts",
		"trace_id": "abc123",
		"id":       float64(1),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
	if caller, _ := entry["caller"].(string); !strings.Contains(caller, "logger_test.go") {
		t.Errorf("caller = %q, want this file", caller)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, "concerts", nil)

	log.Debug(context.Background(), "debug")
	log.Info(context.Background(), "info")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}
	log.Error(context.Background(), "boom")
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("expected error entry, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "trace_id") {
		t.Fatalf("unexpected trace_id without traceIDFn: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"ERROR", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
