package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/logging"
)

// Logging derives a request logger carrying request_id and correlation_id,
// stores it in the request context, and logs the request on arrival and on
// completion. Request headers are logged, redacted, at debug level.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)
			where := []any{slog.String("method", r.Method), slog.String("path", r.URL.Path)}

			reqLogger.InfoContext(ctx, "request started", where...)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request headers", headerGroup(r.Header))
			}

			ww := observe(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.InfoContext(ctx, "request completed", append(where,
				slog.String("route", routePattern(r)),
				slog.Int("status", statusOf(ww)),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)...)
		})
	}
}
