package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/contractor-portal/internal/domain"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// PresignAttachmentRequest represents the JSON body for presigning an
// attachment upload.
type PresignAttachmentRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Validate checks that required fields are present. Content type and size
// limits are enforced by the attachment service.
// Returns a *domain.ValidationError if any checks fail.
func (r *PresignAttachmentRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.FileName) == "" {
		fields["file_name"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.ContentType) == "" {
		fields["content_type"] = domain.MsgRequired
	}
	if r.Size <= 0 {
		fields["size"] = fmt.Sprintf("must be positive, got %d", r.Size)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToAttachmentRequest converts the DTO to the service request.
func (r *PresignAttachmentRequest) ToAttachmentRequest() ports.AttachmentRequest {
	return ports.AttachmentRequest{
		FileName:    strings.TrimSpace(r.FileName),
		ContentType: strings.TrimSpace(r.ContentType),
		Size:        r.Size,
	}
}
