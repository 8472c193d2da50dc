package acl

import "context"

// ProfileAPIName identifies the downstream profile API in health results,
// traces, and metrics.
const ProfileAPIName = "profile-api"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (t *Transport) Name() string {
	return t.client.Name()
}

// HealthCheck reports the downstream's availability from the circuit breaker
// of the underlying client. Forms can still be opened and edited while the
// downstream is failing, so the result is informational.
func (t *Transport) HealthCheck(ctx context.Context) error {
	return t.client.HealthCheck(ctx)
}
