// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/profile"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

// Compile-time checks that FormService implements its ports.
var (
	_ ports.FormService   = (*FormService)(nil)
	_ ports.HealthChecker = (*FormService)(nil)
)

// FormLimits bounds the number and lifetime of open forms.
type FormLimits struct {
	// TTL is how long a form may stay unused before it is swept.
	TTL time.Duration
	// MaxForms is the maximum number of open forms.
	MaxForms int
}

// FormService implements ports.FormService by keeping onboarding forms in
// memory. Each form owns its corporation-number validation pipeline and its
// submission gate; the service only routes calls to the right form and
// enforces FormLimits.
type FormService struct {
	corpClient    ports.CorporationClient
	profileClient ports.ProfileClient
	limits        FormLimits
	logger        *slog.Logger
	metrics       *telemetry.Metrics
	now           func() time.Time

	mu    sync.RWMutex
	forms map[string]*form
}

// NewFormService creates a FormService. If logger is nil, a no-op logger is
// used. If metrics is nil, metric recording is skipped.
func NewFormService(
	corpClient ports.CorporationClient,
	profileClient ports.ProfileClient,
	limits FormLimits,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *FormService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FormService{
		corpClient:    corpClient,
		profileClient: profileClient,
		limits:        limits,
		logger:        logger,
		metrics:       metrics,
		now:           time.Now,
		forms:         make(map[string]*form),
	}
}

// Open creates a new, empty form. Forms idle longer than the TTL are swept
// first; if the limit is still reached, Open returns domain.ErrUnavailable.
func (s *FormService) Open(ctx context.Context) (*ports.FormView, error) {
	s.mu.Lock()
	s.sweepLocked(ctx)
	if len(s.forms) >= s.limits.MaxForms {
		s.mu.Unlock()
		s.log(ctx).WarnContext(ctx, "form limit reached",
			slog.String("operation", "Open"),
			slog.Int("max_forms", s.limits.MaxForms),
		)
		return nil, fmt.Errorf("form limit of %d reached: %w", s.limits.MaxForms, domain.ErrUnavailable)
	}

	id := uuid.NewString()
	f := newForm(id, s.corpClient, s.profileClient, s.logger, s.metrics, s.now)
	s.forms[id] = f
	s.mu.Unlock()
	s.recordOpenForms(ctx, 1)

	s.log(ctx).InfoContext(ctx, "form opened", slog.String("form_id", id))
	return f.view(), nil
}

// Get returns the current read model of a form.
func (s *FormService) Get(ctx context.Context, id string) (*ports.FormView, error) {
	f, err := s.lookup(ctx, id, "Get")
	if err != nil {
		return nil, err
	}
	f.markActive()
	return f.view(), nil
}

// Update replaces the form's field values and returns the new read model.
// A changed corporation number restarts its remote verification; the view
// returned reflects the reset to idle.
func (s *FormService) Update(ctx context.Context, id string, fields profile.Profile) (*ports.FormView, error) {
	f, err := s.lookup(ctx, id, "Update")
	if err != nil {
		return nil, err
	}
	f.update(ctx, fields)
	return f.view(), nil
}

// Submit sends the form's profile to the remote service. It fails with
// domain.ErrValidation when the form is not submittable and with
// domain.ErrConflict when a submission is already in flight. Downstream
// failures are returned unchanged; their outcome is also recorded on the form.
func (s *FormService) Submit(ctx context.Context, id string) (*ports.FormView, error) {
	f, err := s.lookup(ctx, id, "Submit")
	if err != nil {
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "submitting form", slog.String("form_id", id))

	if err := f.submit(ctx); err != nil {
		s.log(ctx).WarnContext(ctx, "form submission failed",
			slog.String("operation", "Submit"),
			slog.String("form_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return f.view(), nil
}

// Reset clears the form's fields, verification, and last submission.
func (s *FormService) Reset(ctx context.Context, id string) (*ports.FormView, error) {
	f, err := s.lookup(ctx, id, "Reset")
	if err != nil {
		return nil, err
	}
	f.reset()
	return f.view(), nil
}

// Close cancels any pending verification for the form and forgets it.
func (s *FormService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	f, ok := s.forms[id]
	if ok {
		delete(s.forms, id)
	}
	s.mu.Unlock()

	if !ok {
		return s.notFound(ctx, id, "Close")
	}
	f.close()
	s.recordOpenForms(ctx, -1)

	s.log(ctx).InfoContext(ctx, "form closed", slog.String("form_id", id))
	return nil
}

// RunSweeper removes idle forms every interval until ctx is cancelled.
// It always returns nil.
func (s *FormService) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.mu.Lock()
			s.sweepLocked(ctx)
			s.mu.Unlock()
		}
	}
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (s *FormService) Name() string {
	return "form-sessions"
}

// HealthCheck reports an error when no new form can be opened.
func (s *FormService) HealthCheck(_ context.Context) error {
	s.mu.RLock()
	n := len(s.forms)
	s.mu.RUnlock()

	if n >= s.limits.MaxForms {
		return fmt.Errorf("form-sessions: at capacity (%d/%d)", n, s.limits.MaxForms)
	}
	return nil
}

// log returns the request-scoped logger when ctx carries one.
func (s *FormService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func (s *FormService) recordOpenForms(ctx context.Context, delta int64) {
	if s.metrics == nil {
		return
	}
	s.metrics.FormsOpen.Add(ctx, delta)
}

func (s *FormService) lookup(ctx context.Context, id, operation string) (*form, error) {
	s.mu.RLock()
	f, ok := s.forms[id]
	s.mu.RUnlock()

	if !ok {
		return nil, s.notFound(ctx, id, operation)
	}
	return f, nil
}

func (s *FormService) notFound(ctx context.Context, id, operation string) error {
	s.log(ctx).InfoContext(ctx, "form not found",
		slog.String("operation", operation),
		slog.String("form_id", id),
	)
	return fmt.Errorf("form %q: %w", id, domain.ErrNotFound)
}

// sweepLocked closes and forgets forms idle longer than the TTL. s.mu must
// be held for writing.
func (s *FormService) sweepLocked(ctx context.Context) {
	cutoff := s.now().Add(-s.limits.TTL)
	for id, f := range s.forms {
		lastActive, idle := f.idleSince()
		if !idle || !lastActive.Before(cutoff) {
			continue
		}
		delete(s.forms, id)
		f.close()
		s.recordOpenForms(ctx, -1)
		s.log(ctx).DebugContext(ctx, "form expired", slog.String("form_id", id))
	}
}
