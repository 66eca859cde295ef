// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/http/handlers"
)

// Handlers groups the route handlers. Attachment is nil when attachment
// storage is disabled, and its route is then not mounted.
type Handlers struct {
	Resource   *handlers.ResourceHandler
	Upload     *handlers.UploadHandler
	Dashboard  *handlers.DashboardHandler
	Attachment *handlers.AttachmentHandler
	Health     *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// API v1 routes. Static segments take precedence over {kind}.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", h.Dashboard.Summary)

		r.Get("/settings", h.Resource.GetSettings)
		r.Put("/settings", h.Resource.UpdateSettings)

		// Signed PDF uploads.
		r.Post("/signatures/{signatureId}/pdf", h.Upload.Start)
		r.Get("/uploads", h.Upload.List)
		r.Get("/uploads/{uploadId}", h.Upload.Progress)

		if h.Attachment != nil {
			r.Post("/attachments/presign", h.Attachment.Presign)
		}

		// Backend collections.
		r.Get("/{kind}", h.Resource.List)
		r.Post("/{kind}", h.Resource.Create)
		r.Get("/{kind}/{id}", h.Resource.Get)
		r.Patch("/{kind}/{id}", h.Resource.Update)
		r.Delete("/{kind}/{id}", h.Resource.Delete)
		r.Post("/{kind}/{id}/actions/{action}", h.Resource.Perform)
	})

	return r
}
