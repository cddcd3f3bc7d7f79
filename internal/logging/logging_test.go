package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("loading config", "path", "/tmp/sidplayfp.ini")

	output := buf.String()
	if !strings.Contains(output, "loading config") {
		t.Errorf("output missing message: %s", output)
	}
	if !strings.Contains(output, "/tmp/sidplayfp.ini") {
		t.Errorf("output missing attribute value: %s", output)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("loading config", "path", "/tmp/sidplayfp.ini")

	output := buf.String()
	if !strings.Contains(output, `"msg":"loading config"`) {
		t.Errorf("expected JSON output, got: %s", output)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("dropped")
	logger.Info("also dropped")
	logger.Warn("kept")

	output := buf.String()
	if strings.Contains(output, "dropped") {
		t.Errorf("output should not contain filtered messages: %s", output)
	}
	if !strings.Contains(output, "kept") {
		t.Errorf("output missing warn message: %s", output)
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	// Should not panic and produce no observable output
	logger.Error("discarded")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		got := LevelFromVerbosity(tt.verbosity)
		if got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
}

func TestContext_RoundTrip(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext should return the stored logger")
	}
}

func TestFromContext_Fallback(t *testing.T) {
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext should fall back to a non-nil logger")
	}
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	n, err := tw.Write([]byte("message with newline\n"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len("message with newline\n") {
		t.Errorf("Write() n = %d, want %d", n, len("message with newline\n"))
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	// Trace-level messages must be enabled
	if !logger.Enabled(context.Background(), LevelTrace) {
		t.Error("ForTest logger should be enabled at trace level")
	}
	logger.Debug("visible with -v only")
}
