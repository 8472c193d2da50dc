// Package httpclient is the outbound HTTP client the downstream adapters
// share. Each call passes through, in order:
//
//	circuit breaker → rate limiter → client span + header propagation → retry → net/http
//
// Usage:
//
//	client := httpclient.New(&cfg.Client, "profile-api", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/config"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/telemetry"
)

// Client sends requests to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil disables rate limiting
	retry   config.RetryConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client for the downstream service called name, which is used
// as the breaker name, the peer.service attribute, and the health check name.
// A nil metrics skips metric recording.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		breaker: newBreaker(cfg.CircuitBreaker, name, logger),
		limiter: limiter,
		retry:   cfg.Retry,
		metrics: metrics,
		logger:  logger,
	}
}

// BaseURL returns the configured base URL of the downstream API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req. The caller owns the response body.
//
// A non-retryable response is returned with a nil error. When every retry
// ends in a retryable status, the last response is returned together with
// an error and its body must still be closed. Breaker rejections and
// transport errors return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()
		propagate(spanCtx, req.Header)

		resp, err := c.send(spanCtx, req)
		endSpan(span, resp, err)
		return resp, err
	})

	c.recordRequest(ctx, req.Method, start, resp, err)
	return resp, err
}
