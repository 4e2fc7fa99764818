package ember

import (
	"context"
	"io"
	"log/slog"
)

// DefaultLogger is used for all contexts that have not set anything
// themselves.
var DefaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type loggerContextKey struct{}

// WithLogger sets the logger for this Context.
func WithLogger(ctx Context, logger *slog.Logger) Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// GetLogger returns the logger attached to the context, or DefaultLogger if
// none was set.
func GetLogger(ctx Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok {
		return logger
	}
	return DefaultLogger
}
