// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/resource"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// ResourceHandler proxies the backend collections (clients, estimates, jobs,
// messages) and the settings document. Bodies pass through as raw JSON.
type ResourceHandler struct {
	svc ports.ResourceService
}

// NewResourceHandler creates a new ResourceHandler with the given service port.
func NewResourceHandler(svc ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// List handles GET /api/v1/{kind}. Query parameters are forwarded.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	payload, err := h.svc.List(r.Context(), pathKind(r), resource.NewQuery(r.URL.Query()))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePayload(w, http.StatusOK, payload)
}

// Create handles POST /api/v1/{kind}.
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, ok := readPayload(w, r)
	if !ok {
		return
	}

	payload, err := h.svc.Create(r.Context(), pathKind(r), body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePayload(w, http.StatusCreated, payload)
}

// Get handles GET /api/v1/{kind}/{id}.
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	payload, err := h.svc.Get(r.Context(), pathKind(r), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePayload(w, http.StatusOK, payload)
}

// Update handles PATCH /api/v1/{kind}/{id}.
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, ok := readPayload(w, r)
	if !ok {
		return
	}

	payload, err := h.svc.Update(r.Context(), pathKind(r), chi.URLParam(r, "id"), body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePayload(w, http.StatusOK, payload)
}

// Delete handles DELETE /api/v1/{kind}/{id}.
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), pathKind(r), chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Perform handles POST /api/v1/{kind}/{id}/actions/{action}. The body is
// optional.
func (h *ResourceHandler) Perform(w http.ResponseWriter, r *http.Request) {
	body, ok := readPayload(w, r)
	if !ok {
		return
	}

	action := resource.Action(chi.URLParam(r, "action"))
	payload, err := h.svc.Perform(r.Context(), pathKind(r), chi.URLParam(r, "id"), action, body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePayload(w, http.StatusOK, payload)
}

// GetSettings handles GET /api/v1/settings.
func (h *ResourceHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	payload, err := h.svc.GetSettings(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePayload(w, http.StatusOK, payload)
}

// UpdateSettings handles PUT /api/v1/settings.
func (h *ResourceHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	body, ok := readPayload(w, r)
	if !ok {
		return
	}

	payload, err := h.svc.UpdateSettings(r.Context(), body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePayload(w, http.StatusOK, payload)
}
