package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/httpclient"
)

// maxIDLength bounds caller-supplied request and correlation IDs.
const maxIDLength = 128

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// RequestID returns middleware that assigns every request an X-Request-ID.
// A valid ID sent by the caller is kept; otherwise a UUID v4 is generated.
// The ID is stored in the context, echoed on the response, and forwarded on
// outbound calls made with the request context.
func RequestID() func(http.Handler) http.Handler {
	return identify(httpclient.HeaderRequestID, requestIDKey, httpclient.WithRequestID,
		func(*http.Request) string { return uuid.NewString() },
	)
}

// CorrelationID returns middleware that assigns every request an
// X-Correlation-ID, falling back to the request ID. It must run after
// RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return identify(httpclient.HeaderCorrelationID, correlationIDKey, httpclient.WithCorrelationID,
		func(r *http.Request) string { return RequestIDFromContext(r.Context()) },
	)
}

// RequestIDFromContext returns the request ID, or "" outside RequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// CorrelationIDFromContext returns the correlation ID, or "" outside
// CorrelationID.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

func identify(
	header string,
	key idKey,
	forward func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !validID(id) {
				id = fallback(r)
			}

			ctx := context.WithValue(r.Context(), key, id)
			ctx = forward(ctx, id)
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validID accepts short IDs of printable ASCII so caller input cannot forge
// log lines or bloat headers.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
