package ports

import "context"

// HealthChecker is a readiness dependency such as the profile API breaker or
// the in-memory form store.
type HealthChecker interface {
	// Name identifies the component in readiness output, e.g. "profile-api".
	Name() string
	// HealthCheck returns nil when the component can serve traffic. It must
	// return promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates HealthCheckers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every check and returns the results by name; nil means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
