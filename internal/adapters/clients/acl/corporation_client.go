package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/clients/acl/corporation"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

// Compile-time interface check.
var _ ports.CorporationClient = (*CorporationClient)(nil)

// CorporationClient is the outbound adapter for the downstream
// corporation-number check. It implements [ports.CorporationClient].
//
// Responses are validated against the strict tagged union in
// [corporation.ParseOutcome] before any field is trusted.
type CorporationClient struct {
	transport *Transport
	logger    *slog.Logger
}

// NewCorporationClient creates a CorporationClient that sends requests through
// the given Transport.
func NewCorporationClient(transport *Transport, logger *slog.Logger) *CorporationClient {
	return &CorporationClient{transport: transport, logger: logger}
}

// Check issues GET corporation-number/{number}. It returns nil when the
// number is confirmed, a *domain.RejectionError carrying the server's reason
// when it is not, and a *domain.MalformedResponseError when the payload
// matches neither response arm. Transport errors, including cancellation,
// are returned unchanged.
func (c *CorporationClient) Check(ctx context.Context, number string) error {
	raw, err := c.transport.Get(ctx, corporation.Endpoint(number))
	if err != nil {
		return err
	}

	outcome, err := corporation.ParseOutcome(raw)
	if err != nil {
		c.logger.WarnContext(ctx, "malformed corporation check response",
			slog.String("operation", "CorporationClient.Check"),
			slog.Any("error", err),
		)
		return err
	}

	if !outcome.Valid {
		return &domain.RejectionError{Message: outcome.Message}
	}
	return nil
}
