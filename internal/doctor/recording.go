package doctor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// recordingHandler captures warning-level log records emitted by the typed
// reader during a dry run, so coercion failures surface as check details
// instead of log output.
type recordingHandler struct {
	mu       sync.Mutex
	messages []string
}

var _ slog.Handler = (*recordingHandler)(nil)

func (h *recordingHandler) logger() *slog.Logger {
	return slog.New(h)
}

func (h *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn
}

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	var parts []string
	parts = append(parts, r.Message)
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, fmt.Sprintf("%s=%v", a.Key, a.Value.Any()))
		return true
	})

	h.mu.Lock()
	h.messages = append(h.messages, strings.Join(parts, " "))
	h.mu.Unlock()
	return nil
}

func (h *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *recordingHandler) WithGroup(_ string) slog.Handler {
	return h
}
