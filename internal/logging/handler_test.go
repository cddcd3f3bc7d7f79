package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h)

	logger.Warn("bad value",
		"section", "Emulation",
		"key", "C64Model",
		"value", "FOO",
	)

	output := buf.String()
	for _, want := range []string{"WARN", "bad value", "Emulation", "C64Model", "FOO"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
	// Buffer is not a TTY, so no ANSI escapes
	if strings.Contains(output, "\x1b[") {
		t.Errorf("output should not contain color codes for non-TTY writer: %q", output)
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := context.Background()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("Info should be disabled at Warn level")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("Error should be enabled at Warn level")
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)
	logger := slog.New(h).With("section", "Audio")

	logger.Info("reading keys")

	if !strings.Contains(buf.String(), "section=Audio") {
		t.Errorf("output missing inherited attribute: %s", buf.String())
	}
}

func TestHandler_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})
	logger := slog.New(h)

	logger.Log(context.Background(), LevelTrace, "key lookup", "key", "Frequency")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("trace records should be labelled TRACE: %s", buf.String())
	}
}
