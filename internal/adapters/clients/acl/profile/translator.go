package profile

import (
	domprofile "github.com/jsamuelsen11/go-onboarding-service/internal/domain/profile"
)

// ToSubmitRequest converts a domain profile to the downstream request body.
func ToSubmitRequest(p domprofile.Profile) SubmitRequestDTO {
	return SubmitRequestDTO{
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Phone:             p.Phone,
		CorporationNumber: p.CorporationNumber,
	}
}
