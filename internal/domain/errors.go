package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrCancelled marks work that was abandoned because a newer request
	// superseded it. Callers discard results carrying it.
	ErrCancelled = errors.New("cancelled")

	// ErrRejected marks a value the remote service explicitly declared invalid.
	ErrRejected = errors.New("rejected")

	// ErrMalformedResponse marks a downstream payload that matched none of the
	// expected shapes.
	ErrMalformedResponse = errors.New("malformed response")
)

// MsgInvalidResponse is the default message of a MalformedResponseError.
const MsgInvalidResponse = "Invalid response"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// RejectionError is returned when the remote service answers a check with an
// explicit negative verdict. Message is the server-supplied reason.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

func (e *RejectionError) Unwrap() error {
	return ErrRejected
}

// UserMessage implements the user-facing message contract read by UserMessage.
func (e *RejectionError) UserMessage() string {
	return e.Message
}

// MalformedResponseError is returned when a downstream payload cannot be
// interpreted. It is never used for business rejections.
type MalformedResponseError struct {
	Message string
}

func (e *MalformedResponseError) Error() string {
	if e.Message == "" {
		return MsgInvalidResponse
	}
	return e.Message
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}

// UserMessage implements the user-facing message contract read by UserMessage.
func (e *MalformedResponseError) UserMessage() string {
	return e.Error()
}

// userMessager is implemented by errors whose text is safe to show to an end
// user. Infrastructure errors (dial failures, circuit breaker rejections) do
// not implement it.
type userMessager interface {
	UserMessage() string
}

// UserMessage returns the first user-facing message found in err's chain.
// The boolean is false when err is nil, carries no such message, or the
// message is empty; callers then render their own fallback.
func UserMessage(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var um userMessager
	if !errors.As(err, &um) {
		return "", false
	}
	msg := um.UserMessage()
	return msg, msg != ""
}
