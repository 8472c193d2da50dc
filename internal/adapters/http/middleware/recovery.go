package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/logging"
)

var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a 500 problem response and an error
// log with the stack. The panic value never reaches the client. When the
// handler already started its response only the log is written.
//
// Recovery must be the outermost middleware; Timeout re-raises handler
// panics on the serving goroutine so they arrive here.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := observe(w, r)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				ctx := r.Context()
				logging.FromContextOr(ctx, logger).ErrorContext(ctx, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
					slog.String("stack", string(debug.Stack())),
				)
				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errPanic)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
