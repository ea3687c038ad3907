// Package testutil provides test utilities for structured logging.
package testutil

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// LogRecorder captures JSON log lines so tests can assert on attributes.
type LogRecorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewRecordingLogger returns a debug-level JSON logger and its recorder.
func NewRecordingLogger() (*slog.Logger, *LogRecorder) {
	rec := &LogRecorder{}
	return slog.New(slog.NewJSONHandler(rec, &slog.HandlerOptions{Level: slog.LevelDebug})), rec
}

func (r *LogRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

// String returns everything logged so far.
func (r *LogRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}
