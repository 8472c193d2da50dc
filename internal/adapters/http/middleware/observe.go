// Package middleware holds the inbound request pipeline of the form API.
// Each middleware is a func(http.Handler) http.Handler; Standard returns
// them in order and Chain composes them.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// observe wraps w so the status and size of the response can be read after
// the handler returns. A writer wrapped by an outer middleware is reused.
func observe(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	if ww, ok := w.(chimw.WrapResponseWriter); ok {
		return ww
	}
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf returns the status sent through ww. A handler that wrote nothing
// produces an implicit 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

// routePattern returns the chi route pattern matched for r, or "" when the
// request was not routed by chi or matched no route.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
