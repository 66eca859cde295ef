package middleware

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
)

// Skipper reports whether a middleware should treat r specially, for example
// by not applying a deadline or by logging it quietly.
type Skipper func(r *http.Request) bool

// MatchPaths returns a Skipper that matches requests whose URL path matches
// any of the path.Match patterns, e.g. "/api/v1/signatures/*/pdf".
func MatchPaths(patterns ...string) Skipper {
	return func(r *http.Request) bool {
		for _, p := range patterns {
			if ok, _ := path.Match(p, r.URL.Path); ok {
				return true
			}
		}
		return false
	}
}

func (s Skipper) match(r *http.Request) bool {
	return s != nil && s(r)
}

// routePattern returns the chi route template for r, such as
// "/api/v1/{kind}/{id}". It is only complete once routing has run, so read it
// after calling the next handler. Requests outside chi fall back to the path.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
