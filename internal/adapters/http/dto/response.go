// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

// FormFields holds the form's current values.
type FormFields struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Phone             string `json:"phone"`
	CorporationNumber string `json:"corporationNumber"`
}

// CorporationResponse reports the remote verification of the corporation
// number. Error is the message to display, if any.
type CorporationResponse struct {
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

// SubmissionResponse reports the most recent submission.
type SubmissionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	At      string `json:"at"`
}

// FormResponse represents a single onboarding form in HTTP responses.
type FormResponse struct {
	ID             string              `json:"id"`
	Fields         FormFields          `json:"fields"`
	FieldErrors    map[string]string   `json:"fieldErrors"`
	Corporation    CorporationResponse `json:"corporation"`
	IsSubmitting   bool                `json:"isSubmitting"`
	IsSubmittable  bool                `json:"isSubmittable"`
	LastSubmission *SubmissionResponse `json:"lastSubmission,omitempty"`
}

// ToFormResponse converts a form view to an HTTP response DTO.
func ToFormResponse(v *ports.FormView) FormResponse {
	fieldErrors := v.FieldErrors
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}

	resp := FormResponse{
		ID: v.ID,
		Fields: FormFields{
			FirstName:         v.Fields.FirstName,
			LastName:          v.Fields.LastName,
			Phone:             v.Fields.Phone,
			CorporationNumber: v.Fields.CorporationNumber,
		},
		FieldErrors: fieldErrors,
		Corporation: CorporationResponse{
			State: string(v.Corporation.State),
			Error: v.CorporationError,
		},
		IsSubmitting:  v.IsSubmitting,
		IsSubmittable: v.IsSubmittable,
	}

	if v.LastSubmission.Status != ports.SubmissionNone {
		resp.LastSubmission = &SubmissionResponse{
			Status:  string(v.LastSubmission.Status),
			Message: v.LastSubmission.Message,
			At:      v.LastSubmission.At.Format(time.RFC3339),
		}
	}

	return resp
}
