package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, "debug")
	ctx := NewContext(context.Background(), l)

	FromContext(ctx).Debug("hello", "k", "v")

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected log line in buffer, got %q", buf.String())
	}
}

func TestFromContext_Default(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Error("expected slog.Default() when no logger stored")
	}
}
