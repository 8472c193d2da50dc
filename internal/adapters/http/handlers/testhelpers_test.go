package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/corporation"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain/profile"
	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

const testFormID = "3f9c2a7e-8d41-4b6a-9c0e-5a1d2b3c4e5f"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withFormID(r *http.Request) *http.Request {
	return withChiParams(r, map[string]string{"id": testFormID})
}

func validProfile() profile.Profile {
	return profile.Profile{
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Phone:             "+13062776103",
		CorporationNumber: "826417395",
	}
}

func emptyView() *ports.FormView {
	return &ports.FormView{
		ID:          testFormID,
		FieldErrors: map[string]string{},
		Corporation: corporation.Idle(),
	}
}

func verifiedView() *ports.FormView {
	return &ports.FormView{
		ID:            testFormID,
		Fields:        validProfile(),
		FieldErrors:   map[string]string{},
		Corporation:   corporation.Valid(),
		IsSubmittable: true,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
