package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// AttachmentHandler issues presigned URLs for direct attachment uploads.
type AttachmentHandler struct {
	svc ports.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler with the given service port.
func NewAttachmentHandler(svc ports.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// Presign handles POST /api/v1/attachments/presign.
func (h *AttachmentHandler) Presign(w http.ResponseWriter, r *http.Request) {
	var req dto.PresignAttachmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	presigned, err := h.svc.Presign(r.Context(), req.ToAttachmentRequest())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPresignedUploadResponse(presigned))
}
