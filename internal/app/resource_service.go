// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/contractor-portal/internal/domain"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/resource"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// Compile-time check that ResourceService implements ports.ResourceService.
var _ ports.ResourceService = (*ResourceService)(nil)

// ResourceService implements ports.ResourceService by forwarding to the
// backend through the ResourceClient port. It rejects requests the backend
// could never accept (unknown kinds, bad identifiers, disallowed actions,
// non-object payloads) and logs failures, but leaves the payload alone.
type ResourceService struct {
	client ports.ResourceClient
	logger *slog.Logger
}

// NewResourceService creates a ResourceService. A nil logger discards output.
func NewResourceService(client ports.ResourceClient, logger *slog.Logger) *ResourceService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ResourceService{client: client, logger: logger}
}

// List returns the collection for kind.
func (s *ResourceService) List(ctx context.Context, kind resource.Kind, query resource.Query) (resource.Payload, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "listing resources", slog.String("kind", kind.String()))

	out, err := s.client.List(ctx, kind, query)
	if err != nil {
		s.logFailure(ctx, "List", kind, "", err)
		return nil, err
	}
	return out, nil
}

// Get returns a single resource.
func (s *ResourceService) Get(ctx context.Context, kind resource.Kind, id string) (resource.Payload, error) {
	if err := validateTarget(kind, id); err != nil {
		return nil, err
	}

	out, err := s.client.Get(ctx, kind, id)
	if err != nil {
		s.logFailure(ctx, "Get", kind, id, err)
		return nil, err
	}
	return out, nil
}

// Create creates a resource from a JSON object payload.
func (s *ResourceService) Create(ctx context.Context, kind resource.Kind, payload resource.Payload) (resource.Payload, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := resource.ValidatePayload(payload); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating resource", slog.String("kind", kind.String()))

	out, err := s.client.Create(ctx, kind, payload)
	if err != nil {
		s.logFailure(ctx, "Create", kind, "", err)
		return nil, err
	}
	return out, nil
}

// Update applies a partial update from a JSON object payload.
func (s *ResourceService) Update(
	ctx context.Context, kind resource.Kind, id string, payload resource.Payload,
) (resource.Payload, error) {
	if err := validateTarget(kind, id); err != nil {
		return nil, err
	}
	if err := resource.ValidatePayload(payload); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating resource", slog.String("kind", kind.String()), slog.String("id", id))

	out, err := s.client.Update(ctx, kind, id, payload)
	if err != nil {
		s.logFailure(ctx, "Update", kind, id, err)
		return nil, err
	}
	return out, nil
}

// Delete removes a resource.
func (s *ResourceService) Delete(ctx context.Context, kind resource.Kind, id string) error {
	if err := validateTarget(kind, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleting resource", slog.String("kind", kind.String()), slog.String("id", id))

	if err := s.client.Delete(ctx, kind, id); err != nil {
		s.logFailure(ctx, "Delete", kind, id, err)
		return err
	}
	return nil
}

// Perform triggers a state transition allowed for kind. The payload is
// optional; when present it must be a JSON object.
func (s *ResourceService) Perform(
	ctx context.Context, kind resource.Kind, id string, action resource.Action, payload resource.Payload,
) (resource.Payload, error) {
	if err := validateTarget(kind, id); err != nil {
		return nil, err
	}
	if !kind.Allows(action) {
		return nil, domain.NewValidationError("action", "not allowed for "+kind.String()+": "+action.String())
	}
	if len(payload) > 0 {
		if err := resource.ValidatePayload(payload); err != nil {
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "performing action",
		slog.String("kind", kind.String()),
		slog.String("id", id),
		slog.String("action", action.String()),
	)

	out, err := s.client.Perform(ctx, kind, id, action, payload)
	if err != nil {
		s.logFailure(ctx, "Perform", kind, id, err)
		return nil, err
	}
	return out, nil
}

// GetSettings returns the account settings document.
func (s *ResourceService) GetSettings(ctx context.Context) (resource.Payload, error) {
	out, err := s.client.GetSettings(ctx)
	if err != nil {
		s.logFailure(ctx, "GetSettings", "settings", "", err)
		return nil, err
	}
	return out, nil
}

// UpdateSettings replaces the account settings document.
func (s *ResourceService) UpdateSettings(ctx context.Context, payload resource.Payload) (resource.Payload, error) {
	if err := resource.ValidatePayload(payload); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating settings")

	out, err := s.client.UpdateSettings(ctx, payload)
	if err != nil {
		s.logFailure(ctx, "UpdateSettings", "settings", "", err)
		return nil, err
	}
	return out, nil
}

func (s *ResourceService) logFailure(ctx context.Context, op string, kind resource.Kind, id string, err error) {
	attrs := []any{
		slog.String("operation", op),
		slog.String("kind", kind.String()),
		slog.Any("error", err),
	}
	if id != "" {
		attrs = append(attrs, slog.String("id", id))
	}
	s.logger.ErrorContext(ctx, "backend call failed", attrs...)
}

func validateKind(kind resource.Kind) error {
	if !kind.IsValid() {
		return domain.NewValidationError("kind", "unknown resource kind: "+kind.String())
	}
	return nil
}

func validateTarget(kind resource.Kind, id string) error {
	if err := validateKind(kind); err != nil {
		return err
	}
	return resource.ValidateID(id)
}
