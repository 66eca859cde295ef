// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
// Backend resources pass through as raw JSON and have no DTOs here.
package dto

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// UploadAcceptedResponse is returned when a signed PDF upload is queued.
type UploadAcceptedResponse struct {
	TrackingID string `json:"tracking_id"`
	Status     string `json:"status"`
	StatusURL  string `json:"status_url"`
}

// UploadProgressResponse represents one tracked upload.
type UploadProgressResponse struct {
	ID             string `json:"id"`
	SignatureID    string `json:"signature_id"`
	UploadID       string `json:"upload_id,omitempty"`
	FileName       string `json:"file_name"`
	Status         string `json:"status"`
	TotalParts     int    `json:"total_parts"`
	CompletedParts int    `json:"completed_parts"`
	TotalBytes     int64  `json:"total_bytes"`
	UploadedBytes  int64  `json:"uploaded_bytes"`
	Percent        int    `json:"percent"`
	Location       string `json:"location,omitempty"`
	Error          string `json:"error,omitempty"`
	StartedAt      string `json:"started_at"`
	UpdatedAt      string `json:"updated_at"`
}

// UploadListResponse represents every tracked upload.
type UploadListResponse struct {
	Uploads []UploadProgressResponse `json:"uploads"`
	Count   int                      `json:"count"`
}

// ToUploadProgressResponse converts a progress snapshot to an HTTP response DTO.
func ToUploadProgressResponse(p *upload.Progress) UploadProgressResponse {
	return UploadProgressResponse{
		ID:             p.ID,
		SignatureID:    p.SignatureID,
		UploadID:       p.UploadID,
		FileName:       p.FileName,
		Status:         p.State.String(),
		TotalParts:     p.TotalParts,
		CompletedParts: p.CompletedParts,
		TotalBytes:     p.TotalBytes,
		UploadedBytes:  p.UploadedBytes,
		Percent:        p.Percent(),
		Location:       p.Location,
		Error:          p.Error,
		StartedAt:      p.StartedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

// ToUploadListResponse converts progress snapshots to an HTTP list response DTO.
func ToUploadListResponse(progress []upload.Progress) UploadListResponse {
	items := make([]UploadProgressResponse, len(progress))
	for i := range progress {
		items[i] = ToUploadProgressResponse(&progress[i])
	}
	return UploadListResponse{
		Uploads: items,
		Count:   len(items),
	}
}

// DashboardSectionResponse is one dashboard collection. Error is set instead
// of Data when the backend call for the section failed.
type DashboardSectionResponse struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// DashboardResponse maps each section kind to its result.
type DashboardResponse struct {
	Sections map[string]DashboardSectionResponse `json:"sections"`
	Partial  bool                                `json:"partial"`
}

// ToDashboardResponse converts a dashboard to an HTTP response DTO. Partial
// is true when at least one section failed.
func ToDashboardResponse(d *ports.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Sections: make(map[string]DashboardSectionResponse, len(d.Sections)),
	}
	for _, s := range d.Sections {
		if s.Err != nil {
			resp.Sections[s.Kind.String()] = DashboardSectionResponse{Error: s.Err.Error()}
			resp.Partial = true
			continue
		}
		resp.Sections[s.Kind.String()] = DashboardSectionResponse{Data: json.RawMessage(s.Data)}
	}
	return resp
}

// PresignedUploadResponse describes how to upload an attachment directly.
type PresignedUploadResponse struct {
	URL       string            `json:"url"`
	Method    string            `json:"method"`
	Key       string            `json:"key"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt string            `json:"expires_at"`
}

// ToPresignedUploadResponse converts a presigned upload to an HTTP response DTO.
func ToPresignedUploadResponse(p *ports.PresignedUpload) PresignedUploadResponse {
	return PresignedUploadResponse{
		URL:       p.URL,
		Method:    p.Method,
		Key:       p.Key,
		Headers:   p.Headers,
		ExpiresAt: p.ExpiresAt.Format(time.RFC3339),
	}
}
