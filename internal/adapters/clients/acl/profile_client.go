package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/clients/acl/profile"
	domprofile "github.com/jsamuelsen11/go-onboarding-service/internal/domain/profile"
	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ProfileClient = (*ProfileClient)(nil)

// ProfileClient is the outbound adapter for the downstream profile
// submission endpoint. It implements [ports.ProfileClient].
type ProfileClient struct {
	transport *Transport
	logger    *slog.Logger
}

// NewProfileClient creates a ProfileClient that sends requests through the
// given Transport.
func NewProfileClient(transport *Transport, logger *slog.Logger) *ProfileClient {
	return &ProfileClient{transport: transport, logger: logger}
}

// Submit issues POST profile-details. The downstream acknowledges with a
// plain-text body, which is accepted as success. Error responses are
// returned as *TransportError whose message is the server's reason.
func (c *ProfileClient) Submit(ctx context.Context, p domprofile.Profile) error {
	raw, err := c.transport.Post(ctx, profile.Endpoint, profile.ToSubmitRequest(p),
		WithExpect(ContentTypePlainText),
	)
	if err != nil {
		return err
	}

	ack, err := Decode[profile.SubmitResponseDTO](raw)
	if err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "profile submitted",
		slog.String("operation", "ProfileClient.Submit"),
		slog.String("ack", ack.Message),
	)
	return nil
}
