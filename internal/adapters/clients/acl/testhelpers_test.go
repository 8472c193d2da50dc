package acl

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/config"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/httpclient"
)

// newTestTransport creates a Transport pointing at the given test server with
// retries disabled and the circuit breaker configured for fast test execution.
func newTestTransport(t *testing.T, baseURL string) *Transport {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)

	return NewTransport(httpclient.New(cfg, ProfileAPIName, nil, logger), logger)
}

// respond writes body with the given content type and status.
func respond(w http.ResponseWriter, contentType string, status int, body string) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
