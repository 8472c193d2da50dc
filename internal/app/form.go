package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-onboarding-service/internal/app/submission"
	"github.com/jsamuelsen11/go-onboarding-service/internal/app/validation"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/corporation"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/profile"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

// ErrNotVerified is returned when a submit is attempted before the
// corporation number has been confirmed remotely.
var ErrNotVerified = fmt.Errorf("corporation number not verified: %w", domain.ErrValidation)

// form is one onboarding session. It owns the corporation-number
// verification pipeline and the submission gate for its fields.
type form struct {
	id        string
	validator *validation.Orchestrator
	submitter *submission.Coordinator
	now       func() time.Time

	mu             sync.Mutex
	fields         profile.Profile
	touched        map[string]bool
	lastSubmission ports.SubmissionOutcome
	lastActive     time.Time
}

func newForm(
	id string,
	corpClient ports.CorporationClient,
	profileClient ports.ProfileClient,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
	now func() time.Time,
) *form {
	f := &form{
		id:         id,
		now:        now,
		touched:    make(map[string]bool),
		lastActive: now(),
	}
	formLogger := logger.With(slog.String("form_id", id))
	f.validator = validation.New(corpClient, formLogger, metrics)
	f.submitter = submission.New(profileClient, formLogger, metrics, submission.Callbacks{
		OnSuccess: f.submitSucceeded,
		OnFailure: f.submitFailed,
	})
	return f
}

// update replaces the field values. Changed fields become touched, and a
// changed corporation number is handed to the validator.
func (f *form) update(ctx context.Context, fields profile.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()

	old := f.fields
	f.fields = fields
	f.lastActive = f.now()

	f.touchIfChanged(profile.FieldFirstName, old.FirstName, fields.FirstName)
	f.touchIfChanged(profile.FieldLastName, old.LastName, fields.LastName)
	f.touchIfChanged(profile.FieldPhone, old.Phone, fields.Phone)
	if f.touchIfChanged(profile.FieldCorporationNumber, old.CorporationNumber, fields.CorporationNumber) {
		f.validator.Watch(ctx, fields.CorporationNumber)
	}
}

func (f *form) touchIfChanged(field, old, updated string) bool {
	if old == updated {
		return false
	}
	f.touched[field] = true
	return true
}

// submit checks that the form is submittable and forwards its profile to the
// coordinator. The fields and their verification are read together; the form
// lock is not held during the remote call.
func (f *form) submit(ctx context.Context) error {
	f.mu.Lock()
	f.lastActive = f.now()
	p := f.fields
	if err := p.Validate(); err != nil {
		for field := range p.FieldErrors() {
			f.touched[field] = true
		}
		f.mu.Unlock()
		return err
	}
	// Read under f.mu so the verification belongs to p's corporation number.
	verified := f.validator.Verification().State == corporation.StateValid
	f.mu.Unlock()

	if !verified {
		return ErrNotVerified
	}

	return f.submitter.Submit(ctx, p)
}

// submitSucceeded clears the form for reuse.
func (f *form) submitSucceeded() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fields = profile.Profile{}
	f.touched = make(map[string]bool)
	f.lastSubmission = ports.SubmissionOutcome{Status: ports.SubmissionSucceeded, At: f.now()}
	f.validator.Reset()
}

// submitFailed records the failure and leaves the fields untouched so the
// user can resubmit.
func (f *form) submitFailed(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastSubmission = ports.SubmissionOutcome{Status: ports.SubmissionFailed, Message: message, At: f.now()}
}

func (f *form) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fields = profile.Profile{}
	f.touched = make(map[string]bool)
	f.lastSubmission = ports.SubmissionOutcome{}
	f.lastActive = f.now()
	f.validator.Reset()
}

func (f *form) close() {
	f.validator.Close()
}

func (f *form) markActive() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastActive = f.now()
}

// idleSince reports when the form was last used. A form with a submission in
// flight is never idle.
func (f *form) idleSince() (time.Time, bool) {
	if f.submitter.IsSubmitting() {
		return time.Time{}, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastActive, true
}

// view builds the read model.
func (f *form) view() *ports.FormView {
	f.mu.Lock()
	fields := f.fields
	touched := make(map[string]bool, len(f.touched))
	for k, v := range f.touched {
		touched[k] = v
	}
	last := f.lastSubmission
	f.mu.Unlock()

	verification := f.validator.Verification()
	submitting := f.submitter.IsSubmitting()

	allErrors := fields.FieldErrors()
	fieldErrors := make(map[string]string, len(allErrors))
	for field, msg := range allErrors {
		if touched[field] {
			fieldErrors[field] = msg
		}
	}

	corpError := verification.Error
	if msg, ok := fieldErrors[profile.FieldCorporationNumber]; ok {
		corpError = msg
	}

	return &ports.FormView{
		ID:               f.id,
		Fields:           fields,
		FieldErrors:      fieldErrors,
		Corporation:      verification,
		CorporationError: corpError,
		IsSubmitting:     submitting,
		IsSubmittable:    isSubmittable(len(allErrors) == 0, verification, submitting),
		LastSubmission:   last,
	}
}

// isSubmittable combines form-level validity, remote verification, and the
// submission gate.
func isSubmittable(formValid bool, v corporation.Verification, submitting bool) bool {
	return formValid && v.State == corporation.StateValid && !submitting
}
