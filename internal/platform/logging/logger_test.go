package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"
)

type stringerValue struct{}

func (stringerValue) String() string { return "*beef" }

func TestLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).Named("test").With("component", "ids")

	logger.Info("asset created", "asset_id", stringerValue{}, "error", errors.New("boom"), "count", 3)

	var entry map[string]any
	if err := sonic.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log entry: %v (%s)", err, buf.String())
	}
	if got := entry["msg"]; got != "asset created" {
		t.Fatalf("unexpected msg: %v", got)
	}
	if got := entry["logger"]; got != "test" {
		t.Fatalf("unexpected logger name: %v", got)
	}
	if got := entry["component"]; got != "ids" {
		t.Fatalf("unexpected component: %v", got)
	}
	if got := entry["asset_id"]; got != "*beef" {
		t.Fatalf("expected stringer field to use String(), got %v", got)
	}
	if got := entry["error"]; got != "boom" {
		t.Fatalf("unexpected error field: %v", got)
	}
	if got, _ := entry["count"].(float64); got != 3 {
		t.Fatalf("unexpected count: %v", entry["count"])
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelWarn, &buf)

	logger.Info("ignored")
	logger.DebugContext(context.Background(), "ignored")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.WarnContext(context.Background(), "kept")
	if buf.Len() == 0 {
		t.Fatalf("expected warn entry to be written")
	}
}

func TestLogger_NilIsSafe(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
	if logger.With("k", "v") == nil {
		t.Fatalf("expected nop logger from nil With")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
