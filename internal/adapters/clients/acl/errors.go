// Package acl implements the Anti-Corruption Layer between the downstream
// profile API and domain types. The Transport normalizes JSON and plain-text
// responses into payloads or typed errors; endpoint-specific DTOs and parsers
// live in subpackages (acl/corporation, acl/profile).
package acl

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
)

// Fallback messages used when a failed response carries no usable text.
const (
	MsgUnexpectedPlainText = "Unexpected plain text response"
	MsgUnexpectedType      = "Unexpected response type"
	MsgRequestCancelled    = "Request cancelled"
)

// ErrorKind classifies a TransportError.
type ErrorKind int

const (
	// KindHTTP is a completed exchange whose response was not acceptable:
	// a non-2xx status, an unexpected content type, or plain text where JSON
	// was expected.
	KindHTTP ErrorKind = iota + 1
	// KindParse is a response whose body did not parse under its declared
	// content type.
	KindParse
	// KindCancelled is a request abandoned by its caller.
	KindCancelled
)

func (k ErrorKind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	case KindCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// TransportError is the typed failure returned by Transport. Status is zero
// when no response was received.
type TransportError struct {
	Status  int
	Message string
	Kind    ErrorKind

	cause error
}

func (e *TransportError) Error() string {
	return e.Message
}

// Unwrap exposes the domain sentinel matching the failure so callers can use
// errors.Is without knowing about transport kinds. Cancelled errors unwrap to
// domain.ErrCancelled and the underlying context error.
func (e *TransportError) Unwrap() []error {
	var errs []error
	switch e.Kind {
	case KindCancelled:
		errs = append(errs, domain.ErrCancelled)
	case KindParse:
		errs = append(errs, domain.ErrMalformedResponse)
	case KindHTTP:
		if sentinel := statusSentinel(e.Status); sentinel != nil {
			errs = append(errs, sentinel)
		}
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// UserMessage returns the server-supplied message of an HTTP failure.
// Parse and cancellation failures carry no user-facing text.
func (e *TransportError) UserMessage() string {
	if e.Kind != KindHTTP {
		return ""
	}
	return e.Message
}

// IsCancelled reports whether err is a transport cancellation.
func IsCancelled(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Kind == KindCancelled
}

// httpError builds a KindHTTP error, falling back to fallback when the
// response carried no message.
func httpError(status int, message, fallback string) *TransportError {
	if message == "" {
		message = fallback
	}
	return &TransportError{Status: status, Message: message, Kind: KindHTTP}
}

func parseError(status int, cause error) *TransportError {
	return &TransportError{
		Status:  status,
		Message: fmt.Sprintf("parsing response: %v", cause),
		Kind:    KindParse,
		cause:   cause,
	}
}

// cancelledError converts a context cancellation into a typed error. Any
// other error is returned unchanged.
func cancelledError(err error) error {
	if !errors.Is(err, context.Canceled) {
		return err
	}
	return &TransportError{Message: MsgRequestCancelled, Kind: KindCancelled, cause: err}
}

// statusSentinel maps an HTTP status code to the domain sentinel it implies.
func statusSentinel(status int) error {
	switch {
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case status == http.StatusConflict:
		return domain.ErrConflict
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.ErrForbidden
	case status >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}
