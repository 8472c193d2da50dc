package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/middleware"
)

// tag returns middleware that appends name to trace on the way in and out.
func tag(trace *[]string, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, ">"+name)
			next.ServeHTTP(w, r)
			*trace = append(*trace, "<"+name)
		})
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{name: "empty chain calls the handler", want: []string{"handler"}},
		{name: "single", names: []string{"a"}, want: []string{">a", "handler", "<a"}},
		{
			name:  "first is outermost",
			names: []string{"a", "b", "c"},
			want:  []string{">a", ">b", ">c", "handler", "<c", "<b", "<a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var trace []string
			mws := make([]func(http.Handler) http.Handler, 0, len(tt.names))
			for _, n := range tt.names {
				mws = append(mws, tag(&trace, n))
			}

			handler := middleware.Chain(mws...)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				trace = append(trace, "handler")
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			assert.Equal(t, tt.want, trace)
		})
	}
}

func TestStandard_PropagatesIDsAndLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var gotReqID, gotCorrID string
	handler := middleware.Chain(middleware.Standard(testLogger(&buf), nil, time.Second)...)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotReqID = middleware.RequestIDFromContext(r.Context())
			gotCorrID = middleware.CorrelationIDFromContext(r.Context())
			w.WriteHeader(http.StatusCreated)
		}),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms", http.NoBody)
	req.Header.Set("X-Request-ID", "req-standard")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "req-standard", gotReqID)
	assert.Equal(t, "req-standard", gotCorrID, "correlation ID falls back to the request ID")
	assert.Equal(t, "req-standard", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-standard", rec.Header().Get("X-Correlation-ID"))

	out := buf.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "request_id=req-standard")
	assert.Contains(t, out, "status=201")
}

func TestStandard_PanicBehindTimeoutIsRecovered(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Chain(middleware.Standard(testLogger(&buf), nil, time.Second)...)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/forms/42", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.Contains(buf.String(), "boom"), "panic value not logged: %s", buf.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), "IDs are set before the panic")
}

func TestStandard_TimeoutProducesGatewayTimeout(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain(middleware.Standard(discardLogger(), nil, 20*time.Millisecond)...)(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/forms/42/submit", http.NoBody))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
