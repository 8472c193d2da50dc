package ports

import (
	"context"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/profile"
)

// CorporationClient defines the client port for remote corporation-number
// checks. Implemented by the ACL adapter; called by the validation
// orchestrator.
type CorporationClient interface {
	// Check verifies a 9-digit corporation number. It returns nil when the
	// remote service confirms the number.
	// Returns a *domain.RejectionError when the service declares it invalid,
	// a *domain.MalformedResponseError when the payload has an unexpected
	// shape, and an error wrapping domain.ErrCancelled when ctx was cancelled
	// while the call was in flight.
	Check(ctx context.Context, number string) error
}

// ProfileClient defines the client port for submitting onboarding profiles.
// Implemented by the ACL adapter; called by the submission coordinator.
type ProfileClient interface {
	// Submit sends the profile to the remote service. It returns nil once the
	// service acknowledges it.
	Submit(ctx context.Context, p profile.Profile) error
}
