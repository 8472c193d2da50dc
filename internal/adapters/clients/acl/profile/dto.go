// Package profile implements the Anti-Corruption Layer translators for the
// downstream profile submission endpoint.
package profile

// Endpoint is the submission path segment, relative to the downstream base URL.
const Endpoint = "profile-details"

// SubmitRequestDTO matches the downstream profile-details request body.
type SubmitRequestDTO struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Phone             string `json:"phone"`
	CorporationNumber string `json:"corporationNumber"`
}

// SubmitResponseDTO is the plain-text acknowledgement wrapped by the
// transport as {"message": text}.
type SubmitResponseDTO struct {
	Message string `json:"message"`
}
