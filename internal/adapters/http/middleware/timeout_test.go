package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/middleware"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		timeout    time.Duration
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name:    "fast handler response is forwarded",
			timeout: time.Second,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Location", "/api/v1/forms/f-1")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"f-1"}`))
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"f-1"}`,
			wantHeader: "/api/v1/forms/f-1",
		},
		{
			name:    "write without status is a 200",
			timeout: time.Second,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("implicit"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "implicit",
		},
		{
			name:    "slow handler gets a 504 problem",
			timeout: 20 * time.Millisecond,
			handler: func(_ http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:    "buffered output of a slow handler is discarded",
			timeout: 20 * time.Millisecond,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "/api/v1/forms/f-2")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("half a body"))
				<-r.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Timeout(tt.timeout)(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/forms", http.NoBody))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Location"))
			if tt.wantStatus == http.StatusGatewayTimeout {
				assert.Equal(t, dto.ContentTypeProblem, rec.Header().Get("Content-Type"))
				assert.Contains(t, rec.Body.String(), "request timed out")
				assert.NotContains(t, rec.Body.String(), "half a body")
				return
			}
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestTimeout_LateWritesFail(t *testing.T) {
	t.Parallel()

	lateErr := make(chan error, 1)
	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(20 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		lateErr <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/forms/f-1/submit", http.NoBody))

	select {
	case err := <-lateErr:
		assert.True(t, errors.Is(err, http.ErrHandlerTimeout), "late Write() error = %v", err)
	case <-time.After(time.Second):
		t.Fatal("handler did not finish")
	}
	assert.NotContains(t, rec.Body.String(), "too late")
}

func TestTimeout_HandlerContextHasDeadline(t *testing.T) {
	t.Parallel()

	var remaining time.Duration
	handler := middleware.Timeout(time.Minute)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if deadline, ok := r.Context().Deadline(); ok {
			remaining = time.Until(deadline)
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/forms/f-1", http.NoBody))

	assert.Greater(t, remaining, 50*time.Second)
	assert.LessOrEqual(t, remaining, time.Minute)
}

func TestTimeout_ReraisesHandlerPanic(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	assert.PanicsWithValue(t, "boom", func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/forms/f-1", http.NoBody))
	})
}
