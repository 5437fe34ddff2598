package pixelgrid

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a window goroutine is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for pixelgrid and its sub-packages.
// By default, pixelgrid produces no log output.
//
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by pixelgrid:
//   - [slog.LevelDebug]: drag sessions and marker moves
//   - [slog.LevelInfo]: overlay mode transitions, threshold crossings
//   - [slog.LevelWarn]: rejected prime overlay requests
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pixelgrid.
// The render package calls this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
