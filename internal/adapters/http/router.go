// Package http is the inbound HTTP adapter: routes and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/handlers"
)

// NewRouter mounts the health probes and the form API. middlewares wrap
// every route, first outermost. Unknown paths and methods get problem
// responses like every other error.
func NewRouter(
	forms *handlers.FormHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound, "no route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed, req.Method+" is not supported on "+req.URL.Path)
	})

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)
	r.Route("/api/v1", func(r chi.Router) {
		mountForms(r, forms)
	})

	return r
}

func mountForms(r chi.Router, forms *handlers.FormHandler) {
	r.Post("/forms", forms.OpenForm)
	r.Get("/forms/{id}", forms.GetForm)
	r.Put("/forms/{id}", forms.UpdateForm)
	r.Delete("/forms/{id}", forms.CloseForm)
	r.Post("/forms/{id}/submit", forms.SubmitForm)
	r.Post("/forms/{id}/reset", forms.ResetForm)
}
