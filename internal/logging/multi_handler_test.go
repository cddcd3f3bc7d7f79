package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandler_DispatchesToAll(t *testing.T) {
	var text, jsonOut bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&jsonOut, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	logger := slog.New(h)

	logger.Info("config written", "path", "/tmp/sidplayfp.ini")

	if !strings.Contains(text.String(), "config written") {
		t.Errorf("text handler missing record: %s", text.String())
	}
	if !strings.Contains(jsonOut.String(), `"msg":"config written"`) {
		t.Errorf("json handler missing record: %s", jsonOut.String())
	}
}

func TestMultiHandler_RespectsPerHandlerLevels(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	logger := slog.New(h)

	logger.Debug("noisy detail")

	if !strings.Contains(debugBuf.String(), "noisy detail") {
		t.Error("debug handler should receive debug records")
	}
	if warnBuf.Len() != 0 {
		t.Errorf("warn handler should drop debug records, got: %s", warnBuf.String())
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	h := NewMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled should be true if any handler accepts the level")
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled should be false if no handler accepts the level")
	}
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, nil))
	logger := slog.New(h).With("component", "ini")

	logger.Info("parsed")

	if !strings.Contains(buf.String(), "component=ini") {
		t.Errorf("attrs not propagated: %s", buf.String())
	}
}
