package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/logging"
)

const (
	// ContentTypeProblem is the media type of every error body.
	ContentTypeProblem = "application/problem+json"

	problemTypeBlank = "about:blank"
	internalDetail   = "internal server error"
)

// ErrorResponse is an RFC 9457 Problem Details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level failure. Location is "body.<field>".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusRules maps domain sentinels to HTTP statuses. The first match wins.
var statusRules = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrRejected, http.StatusUnprocessableEntity},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{domain.ErrMalformedResponse, http.StatusBadGateway},
}

// StatusFor returns the HTTP status for err, or 500 when no rule matches.
func StatusFor(err error) int {
	for _, rule := range statusRules {
		if errors.Is(err, rule.target) {
			return rule.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem body for err. A user-facing message in
// the error chain becomes the detail. Unmapped errors get a generic detail so
// internal error text is not exposed.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusFor(err)

	detail, ok := domain.UserMessage(err)
	switch {
	case ok:
	case status == http.StatusInternalServerError:
		detail = internalDetail
	default:
		detail = err.Error()
	}

	resp := newProblem(r, status, detail)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem body for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes a problem body for a failure with no domain error,
// such as a request timeout.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, newProblem(r, status, detail))
}

func newProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     problemTypeBlank,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		ctx := r.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

// fieldDetails converts validation fields to ErrorDetails ordered by location.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
