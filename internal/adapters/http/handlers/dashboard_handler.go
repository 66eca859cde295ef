package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// DashboardHandler serves the landing-page summary.
type DashboardHandler struct {
	svc ports.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the given service port.
func NewDashboardHandler(svc ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary handles GET /api/v1/dashboard. Failed sections are reported inline
// and the response is still 200.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Summary(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDashboardResponse(d))
}
