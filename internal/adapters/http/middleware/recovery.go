package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/http/dto"
)

// errInternalServer is what the client sees for a recovered panic. The panic
// value and stack only go to the log.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into a logged stack
// trace and an RFC 9457 500 response. If the handler already started its
// response, only the log entry is written.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
// quietly, as it does for a client that hangs up mid-upload.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r)),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
