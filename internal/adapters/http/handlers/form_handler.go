package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

// FormHandler serves the onboarding form API.
type FormHandler struct {
	forms ports.FormService
}

// NewFormHandler creates a FormHandler backed by forms.
func NewFormHandler(forms ports.FormService) *FormHandler {
	return &FormHandler{forms: forms}
}

// formAction is a FormService call on an existing form.
type formAction func(ctx context.Context, id string) (*ports.FormView, error)

// onForm resolves the form id and answers 200 with the view act returns.
func (h *FormHandler) onForm(w http.ResponseWriter, r *http.Request, act formAction) {
	id, err := formID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	view, err := act(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToFormResponse(view))
}

// OpenForm handles POST /api/v1/forms.
func (h *FormHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	view, err := h.forms.Open(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Location", r.URL.Path+"/"+view.ID)
	respond(w, r, http.StatusCreated, dto.ToFormResponse(view))
}

// GetForm handles GET /api/v1/forms/{id}.
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	h.onForm(w, r, h.forms.Get)
}

// UpdateForm handles PUT /api/v1/forms/{id}. The body replaces every field.
func (h *FormHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.UpdateFormRequest
	if !readBody(w, r, &req) {
		return
	}
	view, err := h.forms.Update(r.Context(), id, req.ToProfile())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToFormResponse(view))
}

// SubmitForm handles POST /api/v1/forms/{id}/submit.
func (h *FormHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	h.onForm(w, r, h.forms.Submit)
}

// ResetForm handles POST /api/v1/forms/{id}/reset.
func (h *FormHandler) ResetForm(w http.ResponseWriter, r *http.Request) {
	h.onForm(w, r, h.forms.Reset)
}

// CloseForm handles DELETE /api/v1/forms/{id}.
func (h *FormHandler) CloseForm(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if err := h.forms.Close(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
