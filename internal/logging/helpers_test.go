package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersNoopWithoutLogger(t *testing.T) {
	Debug(nil, "debug")
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "failed", errors.New("boom"), FieldOperation, "start")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "operation=start") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestDebugRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Debug(logger, "details", FieldCount, 3)
	if !strings.Contains(buf.String(), "count=3") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}

	buf.Reset()
	Debug(slog.New(slog.NewTextHandler(&buf, nil)), "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug suppressed at info level, got %q", buf.String())
	}
}
