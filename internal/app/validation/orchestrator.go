// Package validation drives the corporation-number field through its remote
// verification state machine.
//
// Every call to Watch resets the field to idle and invalidates any pending or
// in-flight check. A well-formed number arms a fixed debounce timer; when it
// fires the number is checked remotely and the outcome is applied only if no
// newer Watch or Reset happened in the meantime.
package validation

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/corporation"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

// DebounceInterval is the quiet period after the last edit before a remote
// check starts. It is fixed.
const DebounceInterval = 300 * time.Millisecond

// MsgUnverified is the i18n key shown when a check fails without a
// user-facing message, e.g. the downstream is unreachable.
const MsgUnverified = "validation.corporationNumberUnverified"

// timer is the part of *time.Timer the orchestrator uses.
type timer interface {
	Stop() bool
}

// checkResult is the outcome of one remote check after cancellation has been
// classified. Only checkOK and checkFailed change the visible state.
type checkResult int

const (
	checkOK checkResult = iota + 1
	checkFailed
	checkCancelled
)

func (r checkResult) String() string {
	switch r {
	case checkOK:
		return "valid"
	case checkFailed:
		return "invalid"
	case checkCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// inFlightCheck owns the debounce timer and cancellation handle of the one
// check that may currently be pending. seq identifies it; a callback whose
// seq no longer matches belongs to a superseded check.
type inFlightCheck struct {
	seq    uint64
	timer  timer
	cancel context.CancelFunc
}

// Orchestrator owns the verification state of one corporation-number field.
// It is safe for concurrent use.
type Orchestrator struct {
	client    ports.CorporationClient
	logger    *slog.Logger
	metrics   *telemetry.Metrics
	afterFunc func(time.Duration, func()) timer

	mu           sync.Mutex
	seq          uint64
	check        inFlightCheck
	verification corporation.Verification
	closed       bool
}

// New creates an idle Orchestrator. If metrics is nil, metric recording is
// skipped.
func New(client ports.CorporationClient, logger *slog.Logger, metrics *telemetry.Metrics) *Orchestrator {
	return &Orchestrator{
		client:  client,
		logger:  logger,
		metrics: metrics,
		afterFunc: func(d time.Duration, f func()) timer {
			return time.AfterFunc(d, f)
		},
		verification: corporation.Idle(),
	}
}

// Watch reports a new value of the field. The state returns to idle before
// Watch returns. If value is a well-formed corporation number, a check is
// scheduled after DebounceInterval.
//
// ctx supplies request-scoped values (logger, request IDs) for the check but
// not its lifetime: the check outlives the call that scheduled it and is
// cancelled only by a later Watch, Reset, or Close.
func (o *Orchestrator) Watch(ctx context.Context, value string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}

	o.invalidateLocked()
	o.verification = corporation.Idle()

	if !corporation.IsWellFormed(value) {
		return
	}

	seq := o.check.seq
	checkCtx := context.WithoutCancel(ctx)
	o.check.timer = o.afterFunc(DebounceInterval, func() {
		o.run(checkCtx, seq, value)
	})
}

// Reset returns the field to idle and abandons any pending or in-flight check.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.invalidateLocked()
	o.verification = corporation.Idle()
}

// Verification returns the current state and error.
func (o *Orchestrator) Verification() corporation.Verification {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.verification
}

// Close abandons any pending or in-flight check. Later calls to Watch are
// ignored.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.invalidateLocked()
	o.closed = true
}

// invalidateLocked stops the pending timer, cancels the in-flight request, and
// retires the current sequence number. o.mu must be held.
func (o *Orchestrator) invalidateLocked() {
	if o.check.timer != nil {
		o.check.timer.Stop()
	}
	if o.check.cancel != nil {
		o.check.cancel()
	}
	o.seq++
	o.check = inFlightCheck{seq: o.seq}
}

// run is the debounce timer callback. It performs the remote check for the
// check identified by seq.
func (o *Orchestrator) run(ctx context.Context, seq uint64, value string) {
	o.mu.Lock()
	if o.closed || seq != o.check.seq {
		o.mu.Unlock()
		return
	}
	if o.check.cancel != nil {
		o.check.cancel()
	}
	checkCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	o.check.timer = nil
	o.check.cancel = cancel
	o.verification = corporation.Verifying()
	o.mu.Unlock()

	err := o.client.Check(checkCtx, value)
	result, message := classify(checkCtx, err)

	o.mu.Lock()
	if seq != o.check.seq {
		result = checkCancelled
	}
	switch result {
	case checkOK:
		o.verification = corporation.Valid()
	case checkFailed:
		o.verification = corporation.Invalid(message, MsgUnverified)
	case checkCancelled:
	}
	o.mu.Unlock()

	o.record(ctx, result, err)
}

// classify converts the client's return into an explicit result. A cancelled
// context or a cancellation error always yields checkCancelled, whatever the
// error's other properties.
func classify(ctx context.Context, err error) (checkResult, string) {
	if err == nil {
		return checkOK, ""
	}
	if ctx.Err() != nil || errors.Is(err, domain.ErrCancelled) || errors.Is(err, context.Canceled) {
		return checkCancelled, ""
	}
	message, _ := domain.UserMessage(err)
	return checkFailed, message
}

func (o *Orchestrator) record(ctx context.Context, result checkResult, err error) {
	switch result {
	case checkFailed:
		o.logger.InfoContext(ctx, "corporation number check failed",
			slog.String("operation", "validation.Check"),
			slog.Any("error", err),
		)
	case checkCancelled:
		o.logger.DebugContext(ctx, "corporation number check superseded",
			slog.String("operation", "validation.Check"),
		)
	case checkOK:
	}

	if o.metrics == nil {
		return
	}
	o.metrics.CorporationCheckTotal.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrResult.String(result.String())),
	)
}
