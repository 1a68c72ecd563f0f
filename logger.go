package projective

import (
	"log/slog"

	"honnef.co/go/projective/internal/logging"
)

// SetLogger sets the logger used by this package and its sub-packages. By
// default nothing is logged. Passing nil restores the silent default.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger. It never returns nil.
func Logger() *slog.Logger {
	return logging.Logger()
}
