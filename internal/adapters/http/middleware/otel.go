package middleware

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/middleware"

// OpenTelemetry returns middleware that continues the caller's W3C trace,
// opens a server span per request and records request metrics. metrics may
// be nil.
//
// Spans are named "METHOD route" once chi has matched a route; before that,
// and for unmatched requests, the name is the method alone so form ids never
// reach span names or metric attributes.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			ww := observe(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			route := routePattern(r)
			if route != "" {
				span.SetName(r.Method + " " + route)
				span.SetAttributes(telemetry.AttrHTTPRoute.String(route))
			}

			status := statusOf(ww)
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			if metrics != nil {
				recordServerRequest(ctx, metrics, r.Method, route, status, time.Since(start))
			}
		})
	}
}

func recordServerRequest(ctx context.Context, m *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}
