package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/logging"
)

// jitterFraction spreads each backoff delay by ±25%.
const jitterFraction = 0.25

// send performs req, retrying transport errors and 429/5xx responses with
// exponential backoff. Only idempotent methods are retried; a POST is sent
// exactly once.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.MaxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be at least 1, got %d", c.retry.MaxAttempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	attempts := c.retry.MaxAttempts
	if !isIdempotent(req.Method) {
		attempts = 1
	}

	req = req.WithContext(ctx)
	attempt := 0

	operation := func() (*http.Response, error) {
		attempt++
		body.rewind(req)

		resp, err := c.http.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		statusErr := fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.name)
		if attempt == attempts {
			return resp, statusErr
		}
		discard(resp)
		return nil, statusErr
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(attempts)), //nolint:gosec // attempts >= 1
		backoff.WithNotify(func(err error, delay time.Duration) {
			c.recordRetry(ctx, req.Method)
			logging.FromContextOr(ctx, c.logger).WarnContext(ctx, "retrying HTTP request",
				slog.String("operation", "httpclient.Do"),
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.String("peer_service", c.name),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", attempts),
				slog.Duration("backoff", delay),
				slog.Any("error", err),
			)
		}),
	)
}

func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.InitialInterval
	b.MaxInterval = c.retry.MaxInterval
	b.Multiplier = c.retry.Multiplier
	b.RandomizationFactor = jitterFraction
	return b
}

// requestBody holds a buffered request body so every attempt can send it.
type requestBody []byte

func snapshotBody(req *http.Request) (requestBody, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func (b requestBody) rewind(req *http.Request) {
	if b == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	req.ContentLength = int64(len(b))
}

// discard drains and closes resp so its connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable reports whether a transport error may succeed on another
// attempt. Cancellation and deadlines end the call.
func isRetryable(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// isIdempotent reports whether method may be replayed without side effects
// (RFC 9110 section 9.2.2).
func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace,
		http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// isRetryableStatus reports 429 and every 5xx as retryable.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
