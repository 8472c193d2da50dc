package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response):
//
//	Chain(Recovery(logger), RequestID(), Logging(logger))(handler)
//
// is equivalent to:
//
//	Recovery(logger)(RequestID()(Logging(logger)(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Standard returns the inbound pipeline in execution order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout
//
// RequestID must precede CorrelationID, which falls back to the request ID,
// and both must precede Logging, which attaches them to the request logger.
// metrics may be nil.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}
