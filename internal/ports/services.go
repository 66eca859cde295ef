package ports

import (
	"context"

	"github.com/jsamuelsen11/contractor-portal/internal/domain/resource"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
)

// ResourceService defines the service port for backend resource operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// It validates kinds, identifiers, actions, and payloads before forwarding.
type ResourceService interface {
	// List returns the collection for kind.
	// Returns domain.ErrValidation if kind is unknown.
	List(ctx context.Context, kind resource.Kind, query resource.Query) (resource.Payload, error)

	// Get returns a single resource.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, kind resource.Kind, id string) (resource.Payload, error)

	// Create creates a resource from a JSON object payload.
	Create(ctx context.Context, kind resource.Kind, payload resource.Payload) (resource.Payload, error)

	// Update applies a partial update from a JSON object payload.
	Update(ctx context.Context, kind resource.Kind, id string, payload resource.Payload) (resource.Payload, error)

	// Delete removes a resource.
	Delete(ctx context.Context, kind resource.Kind, id string) error

	// Perform triggers a state transition allowed for kind.
	// Returns domain.ErrValidation if the action is not allowed.
	Perform(ctx context.Context, kind resource.Kind, id string, action resource.Action,
		payload resource.Payload) (resource.Payload, error)

	// GetSettings returns the account settings document.
	GetSettings(ctx context.Context) (resource.Payload, error)

	// UpdateSettings replaces the account settings document.
	UpdateSettings(ctx context.Context, payload resource.Payload) (resource.Payload, error)
}

// DashboardSection is one collection on the dashboard. Exactly one of Data
// and Err is set.
type DashboardSection struct {
	Kind resource.Kind
	Data resource.Payload
	Err  error
}

// Dashboard holds the sections in a fixed order. A failed section does not
// fail the dashboard.
type Dashboard struct {
	Sections []DashboardSection
}

// DashboardService defines the service port for the landing-page summary.
type DashboardService interface {
	// Summary fetches every dashboard section concurrently.
	Summary(ctx context.Context) (*Dashboard, error)
}

// UploadService defines the service port for signed PDF uploads.
type UploadService interface {
	// Start validates req and begins uploading in the background. It returns
	// a tracking ID for Progress. The request context only bounds validation;
	// the upload outlives it.
	Start(ctx context.Context, req upload.Request) (string, error)

	// Progress returns a snapshot of a tracked upload.
	// Returns domain.ErrNotFound for unknown or pruned IDs.
	Progress(id string) (upload.Progress, error)

	// List returns snapshots of every tracked upload, newest first.
	List() []upload.Progress
}

// AttachmentRequest describes a file the caller wants to upload directly to
// object storage.
type AttachmentRequest struct {
	FileName    string
	ContentType string
	Size        int64
}

// AttachmentService defines the service port for attachment presigning.
type AttachmentService interface {
	// Presign checks the request against the attachment policy and returns a
	// presigned upload URL.
	// Returns domain.ErrValidation for disallowed types or sizes.
	Presign(ctx context.Context, req AttachmentRequest) (*PresignedUpload, error)
}
