package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/contractor-portal/internal/platform/httpclient"
)

const headerAuthorization = "Authorization"

// ForwardAuthorization returns middleware that stores the caller's
// Authorization header in the request context. Outbound clients configured
// with forward_auth attach it to their requests; the object store client does
// not. Requests without the header pass through unchanged, and the backend
// decides whether they are allowed.
func ForwardAuthorization() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth := r.Header.Get(headerAuthorization); auth != "" {
				r = r.WithContext(httpclient.WithAuthorization(r.Context(), auth))
			}
			next.ServeHTTP(w, r)
		})
	}
}
