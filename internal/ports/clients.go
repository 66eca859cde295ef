package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/contractor-portal/internal/domain/resource"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
)

// ResourceClient defines the client port for the backend's resource API.
// Implemented by the backend adapter; called by the application layer.
// Payloads are forwarded without interpretation.
type ResourceClient interface {
	// List returns the collection for kind, filtered by query.
	List(ctx context.Context, kind resource.Kind, query resource.Query) (resource.Payload, error)

	// Get returns a single resource.
	// Returns an error wrapping domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, kind resource.Kind, id string) (resource.Payload, error)

	// Create creates a resource and returns the backend's representation.
	Create(ctx context.Context, kind resource.Kind, payload resource.Payload) (resource.Payload, error)

	// Update applies a partial update and returns the updated resource.
	Update(ctx context.Context, kind resource.Kind, id string, payload resource.Payload) (resource.Payload, error)

	// Delete removes a resource.
	Delete(ctx context.Context, kind resource.Kind, id string) error

	// Perform triggers a named state transition. The payload may be empty.
	Perform(ctx context.Context, kind resource.Kind, id string, action resource.Action,
		payload resource.Payload) (resource.Payload, error)

	// GetSettings returns the account settings document.
	GetSettings(ctx context.Context) (resource.Payload, error)

	// UpdateSettings replaces the account settings document.
	UpdateSettings(ctx context.Context, payload resource.Payload) (resource.Payload, error)
}

// InitiateUpload carries the file metadata sent when opening a multipart upload.
type InitiateUpload struct {
	SignatureID string
	FileName    string
	ContentType string
	FileSize    int64
	PartCount   int
}

// SignatureUploadClient defines the backend's multipart upload endpoints for
// signed documents. Each call is a single REST request; retries and
// sequencing are the caller's job.
type SignatureUploadClient interface {
	// Initiate opens a multipart upload and returns its session.
	Initiate(ctx context.Context, in InitiateUpload) (*upload.Session, error)

	// PresignPart returns a URL that accepts an HTTP PUT of the given part.
	PresignPart(ctx context.Context, session upload.Session, partNumber int) (string, error)

	// Complete assembles the uploaded parts, which must be in ascending
	// part-number order, and returns the final object location.
	Complete(ctx context.Context, session upload.Session, parts []upload.CompletedPart) (string, error)

	// Abort discards an unfinished upload and its parts.
	Abort(ctx context.Context, session upload.Session) error
}

// PartStore uploads part bytes to a presigned URL.
type PartStore interface {
	// PutPart sends data with an HTTP PUT and returns the ETag header of the
	// response. A response without an ETag is an error.
	PutPart(ctx context.Context, url string, data []byte) (string, error)
}

// PresignedUpload is a time-limited URL a client can upload to directly.
type PresignedUpload struct {
	URL       string
	Method    string
	Key       string
	Headers   map[string]string
	ExpiresAt time.Time
}

// AttachmentPresigner issues presigned object store URLs for attachments.
type AttachmentPresigner interface {
	// PresignPut returns a URL that accepts a PUT of exactly size bytes of
	// contentType at key.
	PresignPut(ctx context.Context, key, contentType string, size int64) (*PresignedUpload, error)
}
