package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/corporation"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/profile"
)

// FormService defines the service port for onboarding form sessions.
// Implemented by the application layer; called by inbound adapters (handlers).
// Each form owns one corporation-number validation pipeline and one
// submission gate.
type FormService interface {
	// Open creates a new, empty form.
	// Returns domain.ErrUnavailable if the form limit is reached.
	Open(ctx context.Context) (*FormView, error)

	// Get returns the current read model of a form.
	// Returns domain.ErrNotFound if the form does not exist.
	Get(ctx context.Context, id string) (*FormView, error)

	// Update replaces the form's field values. A changed corporation number
	// restarts its remote verification.
	// Returns domain.ErrNotFound if the form does not exist.
	Update(ctx context.Context, id string, fields profile.Profile) (*FormView, error)

	// Submit sends the form's profile to the remote service. On success the
	// form is cleared for reuse.
	// Returns domain.ErrValidation if the form is not submittable and
	// domain.ErrConflict if a submission is already in flight.
	Submit(ctx context.Context, id string) (*FormView, error)

	// Reset clears the form's fields and verification state.
	// Returns domain.ErrNotFound if the form does not exist.
	Reset(ctx context.Context, id string) (*FormView, error)

	// Close cancels any pending work for the form and forgets it.
	// Returns domain.ErrNotFound if the form does not exist.
	Close(ctx context.Context, id string) error
}

// SubmissionStatus is the outcome of the most recent submission of a form.
type SubmissionStatus string

const (
	SubmissionNone      SubmissionStatus = ""
	SubmissionSucceeded SubmissionStatus = "succeeded"
	SubmissionFailed    SubmissionStatus = "failed"
)

// SubmissionOutcome records the last submission result. Message is empty when
// the failure carried no user-facing message; clients show a generic notice.
type SubmissionOutcome struct {
	Status  SubmissionStatus
	Message string
	At      time.Time
}

// FormView is the read model of a form exposed to clients.
type FormView struct {
	ID     string
	Fields profile.Profile

	// FieldErrors holds form-level errors for fields the user has touched.
	FieldErrors map[string]string

	Corporation corporation.Verification

	// CorporationError is the message to display for the corporation number:
	// the format error when present, otherwise the verification error.
	CorporationError string

	IsSubmitting   bool
	IsSubmittable  bool
	LastSubmission SubmissionOutcome
}
