// Package corporation implements the Anti-Corruption Layer for the downstream
// corporation-number check: the response DTO, the strict shape it must match,
// and its translation into a domain outcome.
package corporation

import "net/url"

// endpointPrefix is the path segment of the check endpoint, relative to the
// downstream base URL.
const endpointPrefix = "corporation-number/"

// CheckResponseDTO matches either arm of the downstream check response:
// {"valid": true, "corporationNumber": "..."} or
// {"valid": false, "message": "..."}.
type CheckResponseDTO struct {
	Valid             bool   `json:"valid"`
	CorporationNumber string `json:"corporationNumber,omitempty"`
	Message           string `json:"message,omitempty"`
}

// Endpoint returns the check endpoint for number.
func Endpoint(number string) string {
	return endpointPrefix + url.PathEscape(number)
}
