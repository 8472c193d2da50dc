// Package submission gates profile submissions so that at most one is in
// flight per form, and reports each outcome through callbacks.
package submission

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/profile"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

// ErrSubmissionInProgress is returned by Submit while another submission on
// the same Coordinator has not finished.
var ErrSubmissionInProgress = fmt.Errorf("submission already in progress: %w", domain.ErrConflict)

// Callbacks receive the outcome of a submission. Either may be nil.
type Callbacks struct {
	// OnSuccess is called after the remote service accepted the profile.
	OnSuccess func()
	// OnFailure is called with the failure's user-facing message, or "" when
	// the error carries none.
	OnFailure func(message string)
}

// Coordinator forwards one profile submission at a time to the profile
// client. It performs no retries and leaves form state to its callbacks.
type Coordinator struct {
	client    ports.ProfileClient
	logger    *slog.Logger
	metrics   *telemetry.Metrics
	callbacks Callbacks

	submitting atomic.Bool
}

// New creates a Coordinator. If metrics is nil, metric recording is skipped.
func New(client ports.ProfileClient, logger *slog.Logger, metrics *telemetry.Metrics, callbacks Callbacks) *Coordinator {
	return &Coordinator{
		client:    client,
		logger:    logger,
		metrics:   metrics,
		callbacks: callbacks,
	}
}

// IsSubmitting reports whether a submission is in flight.
func (c *Coordinator) IsSubmitting() bool {
	return c.submitting.Load()
}

// Submit sends p to the profile client. IsSubmitting is true from before the
// client is called until Submit returns, whatever the outcome; callbacks run
// while it is still true. The client's error is returned unchanged.
func (c *Coordinator) Submit(ctx context.Context, p profile.Profile) error {
	if !c.submitting.CompareAndSwap(false, true) {
		return ErrSubmissionInProgress
	}
	defer c.submitting.Store(false)

	start := time.Now()
	err := c.client.Submit(ctx, p)
	c.record(ctx, start, err)

	if err != nil {
		message, _ := domain.UserMessage(err)
		c.logger.WarnContext(ctx, "profile submission failed",
			slog.String("operation", "submission.Submit"),
			slog.Bool("has_message", message != ""),
			slog.Any("error", err),
		)
		if c.callbacks.OnFailure != nil {
			c.callbacks.OnFailure(message)
		}
		return err
	}

	c.logger.InfoContext(ctx, "profile submitted",
		slog.String("operation", "submission.Submit"),
	)
	if c.callbacks.OnSuccess != nil {
		c.callbacks.OnSuccess()
	}
	return nil
}

func (c *Coordinator) record(ctx context.Context, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "failure"
	}
	attrs := metric.WithAttributes(telemetry.AttrResult.String(result))

	c.metrics.SubmissionDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.SubmissionTotal.Add(ctx, 1, attrs)
}
