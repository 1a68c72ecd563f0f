// Package logging holds the logger shared by projective and its
// sub-packages. It lives in its own package so that leaf packages such as
// roots can log without importing the geometry package.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// Set stores l as the active logger. A nil logger restores the silent
// default.
func Set(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger. It never returns nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// DebugEnabled reports whether the active logger would emit debug records.
// Numeric loops check it before assembling attributes.
func DebugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
