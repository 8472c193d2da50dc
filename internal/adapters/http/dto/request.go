package dto

import (
	"fmt"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/profile"
)

// maxFieldBytes bounds each form field. Form rules (required, length, format)
// are reported through the form view, not as request errors.
const maxFieldBytes = 1024

// UpdateFormRequest represents the JSON body for replacing a form's fields.
// Missing fields are treated as empty.
type UpdateFormRequest struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Phone             string `json:"phone"`
	CorporationNumber string `json:"corporationNumber"`
}

// Validate rejects oversized values. Returns a *domain.ValidationError if any
// checks fail.
func (r *UpdateFormRequest) Validate() error {
	fields := make(map[string]string)

	for name, value := range map[string]string{
		profile.FieldFirstName:         r.FirstName,
		profile.FieldLastName:          r.LastName,
		profile.FieldPhone:             r.Phone,
		profile.FieldCorporationNumber: r.CorporationNumber,
	} {
		if len(value) > maxFieldBytes {
			fields[name] = fmt.Sprintf("must be at most %d bytes", maxFieldBytes)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToProfile converts the request to the domain profile.
func (r *UpdateFormRequest) ToProfile() profile.Profile {
	return profile.Profile{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Phone:             r.Phone,
		CorporationNumber: r.CorporationNumber,
	}
}
