package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/contractor-portal/internal/platform/logging"
)

// Logging returns middleware that logs the start and end of each request. It
// stores a child logger carrying request_id and correlation_id in the context
// for handlers and services to use.
//
// The completion entry is logged at Error for 5xx, Warn for 4xx and Info
// otherwise. Requests matched by quiet (probes, mostly) log at Debug unless
// they fail.
func Logging(logger *slog.Logger, quiet Skipper) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			baseLevel := slog.LevelInfo
			if quiet.match(r) {
				baseLevel = slog.LevelDebug
			}

			child.Log(ctx, baseLevel, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int64("content_length", r.ContentLength),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.Log(ctx, completionLevel(baseLevel, rw.statusCode), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(base slog.Level, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return base
	}
}
