package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the HTTP headers (lowercase) that carry
// credentials. The HTTP middleware masks them when dumping request headers
// and the handler masks attributes with these names.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// sensitiveFields are attribute keys whose values are always masked: secrets
// and the personal fields of an onboarding profile.
var sensitiveFields = []string{
	"password", "secret", "token",
	"phone", "firstName", "lastName", "first_name", "last_name",
}

var sensitivePrefixes = []string{"secret_", "api_key"}

// sensitivePatterns catch raw values that escaped call-site redaction.
var sensitivePatterns = []*regexp.Regexp{
	// Bearer tokens.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; at least 10 characters per segment so version strings survive.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline "api_key=..." or "apikey: ...".
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// North American E.164 numbers, e.g. echoed back in a downstream error.
	regexp.MustCompile(`\+1\d{10}`),
}

// newRedactAttr returns the masq ReplaceAttr used by every handler New
// builds.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitivePatterns))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitivePatterns {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
