package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders converts request headers into log attributes sorted by header
// name. Headers listed in logging.SensitiveHeaders are replaced with
// "[REDACTED]"; multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		value := redactedValue
		if !logging.SensitiveHeaders[strings.ToLower(key)] {
			value = strings.Join(headers[key], ",")
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}

// headerGroup wraps the redacted headers in a single "headers" group.
func headerGroup(headers http.Header) slog.Attr {
	attrs := RedactHeaders(headers)
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return slog.Group("headers", args...)
}
