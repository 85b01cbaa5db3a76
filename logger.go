package torch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent discards every record. Enabled is false, so disabled calls cost
// only the level check.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (silent) WithAttrs([]slog.Attr) slog.Handler        { return silent{} }
func (silent) WithGroup(string) slog.Handler             { return silent{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(silent{}))
}

// SetLogger sets the logger used by torch and its sub-packages. torch is
// silent until SetLogger is called; nil makes it silent again.
//
// Levels:
//   - [slog.LevelDebug]: ignored events and touches beyond an object's cap
//   - [slog.LevelWarn]: pointer mapping through a singular transform
//   - [slog.LevelError]: panics recovered from hit-tests, handlers, draw and tick
//
// Recovered panics are logged as *HandlerError values under the "err" key:
//
//	torch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelWarn,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silent{})
	}
	logger.Store(l)
}

// Logger returns the logger set with SetLogger. Safe for concurrent use,
// so hosts may swap loggers from another goroutine.
func Logger() *slog.Logger {
	return logger.Load()
}
