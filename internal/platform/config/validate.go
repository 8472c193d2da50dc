package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"
)

// minFormTTL keeps the idle-form sweep from running more than once a second.
const minFormTTL = 10 * time.Second

// problems collects every invalid setting so they are reported together.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	c.Onboarding.validate(&p)
	return errors.Join(p...)
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
}

func (l *LogConfig) validate(p *problems) {
	p.check(slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level),
		"log.level must be one of debug, info, warn, error; got %q", l.Level)
	p.check(slices.Contains([]string{"json", "text"}, l.Format),
		"log.format must be one of json, text; got %q", l.Format)
}

func (cl *ClientConfig) validate(p *problems) {
	u, err := url.Parse(cl.BaseURL)
	p.check(err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "",
		"client.base_url must be an absolute http(s) URL, got %q", cl.BaseURL)
	p.check(cl.Timeout > 0, "client.timeout must be positive")

	r := cl.Retry
	p.check(r.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", r.MaxAttempts)
	p.check(r.Multiplier >= 1, "client.retry.multiplier must be >= 1, got %g", r.Multiplier)
	p.check(r.InitialInterval > 0 && r.InitialInterval <= r.MaxInterval,
		"client.retry.initial_interval must be positive and not exceed max_interval (%s > %s)",
		r.InitialInterval, r.MaxInterval)

	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d", rl.BurstSize)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.check(t.Exporter == "stdout" || t.Exporter == "otlp",
		"telemetry.exporter must be one of stdout, otlp; got %q", t.Exporter)
	p.check(t.Exporter != "otlp" || t.Endpoint != "",
		"telemetry.endpoint must not be empty when exporter is otlp")
	p.check(t.ServiceName != "", "telemetry.service_name must not be empty")
}

func (o *OnboardingConfig) validate(p *problems) {
	p.check(o.FormTTL >= minFormTTL, "onboarding.form_ttl must be at least %s, got %s", minFormTTL, o.FormTTL)
	p.check(o.MaxForms >= 1, "onboarding.max_forms must be >= 1, got %d", o.MaxForms)
}
