package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MiB.
const maxJSONBodyBytes = 1 << 20

const contentTypeJSON = "application/json"

var errUnsupportedMediaType = errors.New("unsupported media type")

// formID returns the {id} path parameter when it is a UUID.
func formID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		return "", &domain.ValidationError{Fields: map[string]string{"id": "must be a valid UUID"}}
	}
	return id, nil
}

// respond writes v as a JSON body with status.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctx := r.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "encoding response", slog.Any("error", err))
	}
}

// validatable is implemented by request DTOs that check their own fields.
type validatable interface {
	Validate() error
}

// readBody decodes and validates a JSON request body into dst. On failure it
// writes the error response and returns false. A missing Content-Type is
// accepted as JSON.
func readBody[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err != nil || mediaType != contentTypeJSON {
			dto.WriteProblem(w, r, http.StatusUnsupportedMediaType, errUnsupportedMediaType.Error()+": "+ct)
			return false
		}
	}

	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		msg := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "body too large"
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": msg}})
		return false
	}

	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
