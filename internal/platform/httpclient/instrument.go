package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/telemetry"
)

const tracerName = "httpclient"

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.name),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.name),
		),
	)
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// requestResult labels an outbound call as success, error, or circuit_open.
func requestResult(resp *http.Response, err error) string {
	switch {
	case isBreakerRejection(err):
		return "circuit_open"
	case resp != nil && resp.StatusCode < http.StatusBadRequest:
		return "success"
	default:
		return "error"
	}
}

// recordRequest is called outside the breaker so rejected calls are counted.
func (c *Client) recordRequest(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(requestResult(resp, err)),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func (c *Client) recordRetry(ctx context.Context, method string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ClientRetryTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrPeerService.String(c.name),
	))
}
