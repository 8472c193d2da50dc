package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-onboarding-service/internal/app/submission"
	"github.com/jsamuelsen11/go-onboarding-service/internal/app/validation"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/corporation"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/profile"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
	"github.com/jsamuelsen11/go-onboarding-service/mocks"
)

const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validProfile() profile.Profile {
	return profile.Profile{
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Phone:             "+13062776103",
		CorporationNumber: "826417395",
	}
}

func defaultLimits() FormLimits {
	return FormLimits{TTL: 30 * time.Minute, MaxForms: 100}
}

type testDeps struct {
	corp    *mocks.MockCorporationClient
	profile *mocks.MockProfileClient
}

func newTestFormService(t *testing.T, limits FormLimits) (*FormService, testDeps) {
	t.Helper()

	deps := testDeps{
		corp:    mocks.NewMockCorporationClient(t),
		profile: mocks.NewMockProfileClient(t),
	}
	svc := NewFormService(deps.corp, deps.profile, limits, discardLogger(), nil)
	return svc, deps
}

// openVerified opens a form, fills it with a valid profile, and waits for the
// corporation number to be confirmed.
func openVerified(t *testing.T, svc *FormService, deps testDeps) string {
	t.Helper()

	deps.corp.EXPECT().Check(mock.Anything, validProfile().CorporationNumber).Return(nil).Once()

	view, err := svc.Open(context.Background())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), view.ID, validProfile())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		v, err := svc.Get(context.Background(), view.ID)
		return err == nil && v.IsSubmittable
	}, waitFor, tick)

	return view.ID
}

// --- NewFormService ---

func TestNewFormService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewFormService(mocks.NewMockCorporationClient(t), mocks.NewMockProfileClient(t), defaultLimits(), nil, nil)
	if svc.logger == nil {
		t.Fatal("NewFormService(nil logger) should create a no-op logger, got nil")
	}
}

// --- Open / Get / Close ---

func TestOpen_NewFormIsEmptyAndIdle(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, defaultLimits())

	view, err := svc.Open(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(view.ID)
	assert.NoError(t, err, "form id should be a UUID")
	assert.Equal(t, profile.Profile{}, view.Fields)
	assert.Empty(t, view.FieldErrors, "untouched fields must not report errors")
	assert.Equal(t, corporation.Idle(), view.Corporation)
	assert.False(t, view.IsSubmittable)
	assert.False(t, view.IsSubmitting)
	assert.Equal(t, ports.SubmissionNone, view.LastSubmission.Status)
}

func TestOpen_LogsWithRequestLogger(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, defaultLimits())

	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-1"))
	ctx := logging.WithLogger(context.Background(), reqLogger)

	view, err := svc.Open(ctx)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "form opened")
	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), view.ID)
}

func TestGet_UnknownForm(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, defaultLimits())

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClose_ForgetsForm(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, defaultLimits())

	view, err := svc.Open(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Close(context.Background(), view.ID))

	_, err = svc.Get(context.Background(), view.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Close(context.Background(), view.ID), domain.ErrNotFound)
}

func TestOpen_FormLimit(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, FormLimits{TTL: time.Hour, MaxForms: 1})

	_, err := svc.Open(context.Background())
	require.NoError(t, err)
	assert.Error(t, svc.HealthCheck(context.Background()))

	_, err = svc.Open(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestOpen_SweepsIdleForms(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, FormLimits{TTL: time.Minute, MaxForms: 1})

	var mu sync.Mutex
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	first, err := svc.Open(context.Background())
	require.NoError(t, err)

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	second, err := svc.Open(context.Background())
	require.NoError(t, err, "expired form should have been swept")
	assert.NotEqual(t, first.ID, second.ID)

	_, err = svc.Get(context.Background(), first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Error(t, svc.HealthCheck(context.Background()), "at capacity again")
}

func TestRunSweeper_StopsOnCancel(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, defaultLimits())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.RunSweeper(ctx, time.Millisecond) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("RunSweeper did not return after cancel")
	}
}

// --- Update ---

func TestUpdate_FieldErrorsOnlyForTouchedFields(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, defaultLimits())

	view, err := svc.Open(context.Background())
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), view.ID, profile.Profile{Phone: "555-0100"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{profile.FieldPhone: profile.MsgInvalidPhone}, got.FieldErrors)
	assert.False(t, got.IsSubmittable)
}

func TestUpdate_FormatErrorTakesPrecedence(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, defaultLimits())

	view, err := svc.Open(context.Background())
	require.NoError(t, err)

	p := validProfile()
	p.CorporationNumber = "12345"
	got, err := svc.Update(context.Background(), view.ID, p)
	require.NoError(t, err)

	assert.Equal(t, profile.MsgInvalidCorporationNumber, got.CorporationError)
	assert.Equal(t, corporation.Idle(), got.Corporation)
}

func TestUpdate_VerifiesCorporationNumber(t *testing.T) {
	t.Parallel()

	svc, deps := newTestFormService(t, defaultLimits())
	id := openVerified(t, svc, deps)

	view, err := svc.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, corporation.Valid(), view.Corporation)
	assert.Empty(t, view.CorporationError)
	assert.Empty(t, view.FieldErrors)
}

func TestUpdate_RemoteRejectionShownAsCorporationError(t *testing.T) {
	t.Parallel()

	svc, deps := newTestFormService(t, defaultLimits())
	deps.corp.EXPECT().Check(mock.Anything, "123456789").
		Return(&domain.RejectionError{Message: "Invalid corporation number"}).Once()

	view, err := svc.Open(context.Background())
	require.NoError(t, err)

	p := validProfile()
	p.CorporationNumber = "123456789"
	_, err = svc.Update(context.Background(), view.ID, p)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		v, _ := svc.Get(context.Background(), view.ID)
		return v.Corporation.State == corporation.StateInvalid
	}, waitFor, tick)

	got, err := svc.Get(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, "Invalid corporation number", got.CorporationError)
	assert.False(t, got.IsSubmittable)
}

func TestUpdate_UnchangedCorporationNumberKeepsVerification(t *testing.T) {
	t.Parallel()

	svc, deps := newTestFormService(t, defaultLimits())
	id := openVerified(t, svc, deps)

	p := validProfile()
	p.FirstName = "Augusta"
	got, err := svc.Update(context.Background(), id, p)
	require.NoError(t, err)

	assert.Equal(t, corporation.Valid(), got.Corporation)
	assert.True(t, got.IsSubmittable)
}

func TestUpdate_ChangedCorporationNumberResetsToIdle(t *testing.T) {
	t.Parallel()

	svc, deps := newTestFormService(t, defaultLimits())
	id := openVerified(t, svc, deps)

	p := validProfile()
	p.CorporationNumber = "82641739"
	got, err := svc.Update(context.Background(), id, p)
	require.NoError(t, err)

	assert.Equal(t, corporation.Idle(), got.Corporation)
	assert.False(t, got.IsSubmittable)
}

// --- Submit ---

func TestSubmit_NotVerified(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, defaultLimits())

	view, err := svc.Open(context.Background())
	require.NoError(t, err)

	// Valid fields that never went through Update, so no check was started.
	svc.forms[view.ID].fields = validProfile()

	_, err = svc.Submit(context.Background(), view.ID)

	assert.ErrorIs(t, err, ErrNotVerified)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSubmit_InvalidFields(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, defaultLimits())

	view, err := svc.Open(context.Background())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), view.ID)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)

	got, err := svc.Get(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Len(t, got.FieldErrors, 4, "a rejected submit marks every failing field as touched")
}

func TestSubmit_SuccessClearsForm(t *testing.T) {
	t.Parallel()

	svc, deps := newTestFormService(t, defaultLimits())
	id := openVerified(t, svc, deps)
	deps.profile.EXPECT().Submit(mock.Anything, validProfile()).Return(nil).Once()

	got, err := svc.Submit(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, profile.Profile{}, got.Fields)
	assert.Equal(t, corporation.Idle(), got.Corporation)
	assert.Empty(t, got.FieldErrors)
	assert.False(t, got.IsSubmitting)
	assert.False(t, got.IsSubmittable)
	assert.Equal(t, ports.SubmissionSucceeded, got.LastSubmission.Status)
}

func TestSubmit_FailureKeepsFields(t *testing.T) {
	t.Parallel()

	svc, deps := newTestFormService(t, defaultLimits())
	id := openVerified(t, svc, deps)
	deps.profile.EXPECT().Submit(mock.Anything, validProfile()).
		Return(&domain.RejectionError{Message: "Invalid phone number"}).Once()

	_, err := svc.Submit(context.Background(), id)
	require.Error(t, err)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, validProfile(), got.Fields)
	assert.Equal(t, corporation.Valid(), got.Corporation)
	assert.True(t, got.IsSubmittable, "user may resubmit")
	assert.Equal(t, ports.SubmissionOutcome{
		Status:  ports.SubmissionFailed,
		Message: "Invalid phone number",
		At:      got.LastSubmission.At,
	}, got.LastSubmission)
}

func TestSubmit_ConcurrentSubmitConflicts(t *testing.T) {
	t.Parallel()

	svc, deps := newTestFormService(t, defaultLimits())
	id := openVerified(t, svc, deps)

	started := make(chan struct{})
	release := make(chan struct{})
	deps.profile.EXPECT().Submit(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, profile.Profile) error {
		close(started)
		<-release
		return nil
	}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), id)
		done <- err
	}()
	<-started

	view, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, view.IsSubmitting)
	assert.False(t, view.IsSubmittable, "a form with a submission in flight is not submittable")

	_, err = svc.Submit(context.Background(), id)
	assert.ErrorIs(t, err, submission.ErrSubmissionInProgress)
	assert.ErrorIs(t, err, domain.ErrConflict)

	close(release)
	require.NoError(t, <-done)
}

func TestSubmit_SendsOnlyVerifiedCorporationNumber(t *testing.T) {
	t.Parallel()

	svc, deps := newTestFormService(t, defaultLimits())
	id := openVerified(t, svc, deps)
	t.Cleanup(func() { _ = svc.Close(context.Background(), id) })

	const rejected = "111111111"
	deps.corp.EXPECT().Check(mock.Anything, rejected).
		Return(&domain.RejectionError{Message: "Invalid corporation number"}).Maybe()
	deps.corp.EXPECT().Check(mock.Anything, validProfile().CorporationNumber).Return(nil).Maybe()

	var (
		mu   sync.Mutex
		sent []string
	)
	deps.profile.EXPECT().Submit(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p profile.Profile) error {
			mu.Lock()
			sent = append(sent, p.CorporationNumber)
			mu.Unlock()
			return errors.New("upstream down")
		}).Maybe()

	other := validProfile()
	other.CorporationNumber = rejected

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 50 {
			_, _ = svc.Update(context.Background(), id, other)
			_, _ = svc.Update(context.Background(), id, validProfile())
		}
	}()
	for range 100 {
		_, _ = svc.Submit(context.Background(), id)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	for _, number := range sent {
		assert.Equal(t, validProfile().CorporationNumber, number)
	}
}

// --- Reset ---

func TestReset_ClearsForm(t *testing.T) {
	t.Parallel()

	svc, deps := newTestFormService(t, defaultLimits())
	id := openVerified(t, svc, deps)

	got, err := svc.Reset(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, profile.Profile{}, got.Fields)
	assert.Equal(t, corporation.Idle(), got.Corporation)
	assert.Empty(t, got.FieldErrors)
	assert.False(t, got.IsSubmittable)
}

func TestReset_UnknownForm(t *testing.T) {
	t.Parallel()

	svc, _ := newTestFormService(t, defaultLimits())

	_, err := svc.Reset(context.Background(), "missing")

	assert.True(t, errors.Is(err, domain.ErrNotFound), "Reset() error = %v, want ErrNotFound", err)
}

// --- isSubmittable ---

func TestIsSubmittable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		formValid  bool
		v          corporation.Verification
		submitting bool
		want       bool
	}{
		{"all conditions met", true, corporation.Valid(), false, true},
		{"form invalid", false, corporation.Valid(), false, false},
		{"idle", true, corporation.Idle(), false, false},
		{"verifying", true, corporation.Verifying(), false, false},
		{"invalid", true, corporation.Invalid("x", validation.MsgUnverified), false, false},
		{"submitting", true, corporation.Valid(), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isSubmittable(tt.formValid, tt.v, tt.submitting))
		})
	}
}
