package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/logging"
)

const msgTimeout = "request timed out"

// Timeout bounds each request by d. The handler runs on its own goroutine
// with a deadline on its context and writes into a buffer. If it finishes in
// time the buffer is copied to the client; otherwise the client gets a 504
// problem response and later writes fail with http.ErrHandlerTimeout.
//
// A handler panic is re-raised on the serving goroutine so Recovery sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			finished := make(chan any, 1)

			go func() {
				var p any
				defer func() {
					if rec := recover(); rec != nil {
						p = rec
					}
					finished <- p
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case p := <-finished:
				if p != nil {
					panic(p)
				}
				bw.copyTo(w)
			case <-ctx.Done():
				bw.expire()
				logging.FromContext(ctx).WarnContext(ctx, msgTimeout,
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", d),
				)
				dto.WriteProblem(w, r, http.StatusGatewayTimeout, msgTimeout)
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether
// to send it.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(status int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.status == 0 && !bw.expired {
		bw.status = status
	}
}

func (bw *bufferedWriter) Write(p []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(p)
}

func (bw *bufferedWriter) expire() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.expired = true
}

// copyTo sends the buffered response. It is only called after the handler
// has returned.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	_, _ = bw.body.WriteTo(w)
}
