package corporation

import (
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	domcorp "github.com/jsamuelsen11/go-onboarding-service/internal/domain/corporation"
)

// responseSchema accepts exactly one of the two response arms. The valid
// discriminator is required so a payload missing it matches neither arm.
// Unknown fields are tolerated.
const responseSchema = `
{
	valid!:             true
	corporationNumber!: string
} | {
	valid!:   false
	message!: string
}
`

// ParseOutcome validates a raw check response against the tagged union and
// translates it into a domain outcome. Any payload that matches neither arm
// yields a *domain.MalformedResponseError; a well-formed rejection is not an
// error at this layer.
func ParseOutcome(raw json.RawMessage) (domcorp.Outcome, error) {
	if err := validateShape(raw); err != nil {
		return domcorp.Outcome{}, &domain.MalformedResponseError{}
	}

	var dto CheckResponseDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domcorp.Outcome{}, &domain.MalformedResponseError{}
	}

	return ToDomainOutcome(dto), nil
}

// ToDomainOutcome converts a shape-checked DTO to a domain outcome.
func ToDomainOutcome(dto CheckResponseDTO) domcorp.Outcome {
	if dto.Valid {
		return domcorp.Confirmed(dto.CorporationNumber)
	}
	return domcorp.Rejected(dto.Message)
}

// validateShape decodes raw as JSON, unifies it with responseSchema and
// requires a concrete result. A cue.Context is not safe for concurrent use, so each call builds
// its own.
func validateShape(raw json.RawMessage) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(responseSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling response schema: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	data := ctx.Encode(decoded)
	if err := data.Err(); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if data.IncompleteKind() != cue.StructKind {
		return fmt.Errorf("response is %v, want struct", data.IncompleteKind())
	}

	unified := schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("response shape: %w", err)
	}
	return nil
}
