package config

// defaults is the bottom configuration layer. Every key a YAML file or
// environment variable may set appears here, which also lets envProvider
// resolve names containing underscores.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          8080,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "2m",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081/api",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              3,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                2.0,
		"client.circuit_breaker.max_failures":    5,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": 1,
		"client.rate_limit.requests_per_second":  0.0,
		"client.rate_limit.burst_size":           10,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "onboarding-service",

		"onboarding.form_ttl":  "30m",
		"onboarding.max_forms": 10000,
	}
}
