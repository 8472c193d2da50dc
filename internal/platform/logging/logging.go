// Package logging builds the service's slog logger and carries
// request-scoped loggers through context.Context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContextOr(ctx, logger).InfoContext(ctx, "form opened")
//
// Error logs name the operation and the form, and carry the whole chain:
//
//	logger.WarnContext(ctx, "form submission failed",
//	    slog.String("operation", "Submit"),
//	    slog.String("form_id", id),
//	    slog.Any("error", err),
//	)
//
// Credentials and profile PII are masked by the handler itself, so a value
// that slips into an attribute still never reaches the output.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type loggerKey struct{}

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", "error", or an offset such as "warn+2"; anything else means info).
// Format "text" selects logfmt-style output and every other value JSON.
// Debug loggers also report the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger carried by ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger carried by ctx, or fallback. Components
// with an injected logger use it so request attributes are kept when the
// call comes from an HTTP request.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}
