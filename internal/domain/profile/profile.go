// Package profile holds the onboarding profile entity and its form-level
// validation rules.
package profile

import (
	"regexp"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/corporation"
)

// Field names as exposed to clients.
const (
	FieldFirstName         = "firstName"
	FieldLastName          = "lastName"
	FieldPhone             = "phone"
	FieldCorporationNumber = "corporationNumber"
)

// Validation messages are i18n keys; clients translate them.
const (
	MsgRequired                 = "validation.required"
	MsgMaxLength                = "validation.maxLength"
	MsgInvalidPhone             = "validation.invalidPhone"
	MsgInvalidCorporationNumber = "validation.invalidCorporationNumber"
)

// MaxNameLength is the maximum number of characters in a first or last name.
const MaxNameLength = 50

// phonePattern accepts North American numbers in E.164 form.
var phonePattern = regexp.MustCompile(`^\+1\d{10}$`)

// Profile is the user profile collected by the onboarding form.
type Profile struct {
	FirstName         string
	LastName          string
	Phone             string
	CorporationNumber string
}

// Validate checks the form-level rules for every field.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) keyed by
// field name, or nil if all rules pass.
func (p *Profile) Validate() error {
	fields := p.FieldErrors()
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// FieldErrors returns the first failing rule per field. The map is empty when
// the profile is valid.
func (p *Profile) FieldErrors() map[string]string {
	fields := make(map[string]string)

	if msg := validateName(p.FirstName); msg != "" {
		fields[FieldFirstName] = msg
	}
	if msg := validateName(p.LastName); msg != "" {
		fields[FieldLastName] = msg
	}

	switch {
	case p.Phone == "":
		fields[FieldPhone] = MsgRequired
	case !phonePattern.MatchString(p.Phone):
		fields[FieldPhone] = MsgInvalidPhone
	}

	switch {
	case p.CorporationNumber == "":
		fields[FieldCorporationNumber] = MsgRequired
	case !corporation.IsWellFormed(p.CorporationNumber):
		fields[FieldCorporationNumber] = MsgInvalidCorporationNumber
	}

	return fields
}

func validateName(name string) string {
	switch {
	case name == "":
		return MsgRequired
	case utf8.RuneCountInString(name) > MaxNameLength:
		return MsgMaxLength
	default:
		return ""
	}
}
