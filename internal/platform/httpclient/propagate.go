package httpclient

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Headers copied from the inbound request context to every outbound call.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type outboundHeadersKey struct{}

// WithHeader returns a context whose outbound requests carry name: value.
// An empty value leaves ctx unchanged.
func WithHeader(ctx context.Context, name, value string) context.Context {
	if value == "" {
		return ctx
	}
	headers := outboundHeaders(ctx).Clone()
	if headers == nil {
		headers = make(http.Header, 1)
	}
	headers.Set(name, value)
	return context.WithValue(ctx, outboundHeadersKey{}, headers)
}

// WithRequestID propagates id as the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return WithHeader(ctx, HeaderRequestID, id)
}

// WithCorrelationID propagates id as the X-Correlation-ID header.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return WithHeader(ctx, HeaderCorrelationID, id)
}

func outboundHeaders(ctx context.Context) http.Header {
	h, _ := ctx.Value(outboundHeadersKey{}).(http.Header)
	return h
}

// propagate writes the context's outbound headers and its W3C trace context
// into h.
func propagate(ctx context.Context, h http.Header) {
	for name, values := range outboundHeaders(ctx) {
		h[name] = append([]string(nil), values...)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(h))
}
