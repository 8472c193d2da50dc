// Package health tracks the components the readiness probe depends on.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single health check.
const DefaultCheckTimeout = 2 * time.Second

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets how long each check may run before it is reported
// as failed.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Registry runs registered [ports.HealthChecker]s concurrently. Checkers are
// keyed by name; registering a second checker under a taken name replaces
// the first.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		timeout:  DefaultCheckTimeout,
		checkers: make(map[string]ports.HealthChecker),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker, replacing any checker with the same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// CheckAll runs every check in parallel and returns the results by name.
// A nil value means healthy. A check still running after the check timeout
// is reported as failed; its goroutine is left to observe the cancelled
// context.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
		g       errgroup.Group
	)
	for name, c := range checkers {
		g.Go(func() error {
			err := r.check(ctx, c)
			mu.Lock()
			results[name] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: health check: %w", c.Name(), err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: health check: %w", c.Name(), ctx.Err())
	}
}
