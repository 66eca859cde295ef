package backend

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/contractor-portal/internal/domain/resource"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/httpclient"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// Compile-time interface check.
var _ ports.ResourceClient = (*ResourceClient)(nil)

// settingsPath is the backend's singleton settings document.
const settingsPath = "/settings"

// ResourceClient forwards resource calls to the backend API. Paths follow
// the backend's REST layout: /{kind}, /{kind}/{id}, and /{kind}/{id}/{action}.
type ResourceClient struct {
	req *Requester
}

// NewResourceClient creates a ResourceClient that sends requests through the
// given [httpclient.Client], whose BaseURL points at the backend API root.
func NewResourceClient(client *httpclient.Client, logger *slog.Logger) *ResourceClient {
	return &ResourceClient{req: NewRequester(client, logger)}
}

// List fetches GET /{kind}?{query}.
func (c *ResourceClient) List(ctx context.Context, kind resource.Kind, query resource.Query) (resource.Payload, error) {
	path := collectionPath(kind)
	if qs := query.Encode(); qs != "" {
		path += "?" + qs
	}
	return c.fetch(ctx, http.MethodGet, path, nil)
}

// Get fetches GET /{kind}/{id}.
func (c *ResourceClient) Get(ctx context.Context, kind resource.Kind, id string) (resource.Payload, error) {
	return c.fetch(ctx, http.MethodGet, itemPath(kind, id), nil)
}

// Create sends POST /{kind}.
func (c *ResourceClient) Create(ctx context.Context, kind resource.Kind, payload resource.Payload) (resource.Payload, error) {
	return c.fetch(ctx, http.MethodPost, collectionPath(kind), payload)
}

// Update sends PATCH /{kind}/{id}.
func (c *ResourceClient) Update(
	ctx context.Context, kind resource.Kind, id string, payload resource.Payload,
) (resource.Payload, error) {
	return c.fetch(ctx, http.MethodPatch, itemPath(kind, id), payload)
}

// Delete sends DELETE /{kind}/{id}.
func (c *ResourceClient) Delete(ctx context.Context, kind resource.Kind, id string) error {
	return c.req.Do(ctx, http.MethodDelete, itemPath(kind, id), nil, nil)
}

// Perform sends POST /{kind}/{id}/{action}. An empty payload sends no body.
func (c *ResourceClient) Perform(
	ctx context.Context, kind resource.Kind, id string, action resource.Action, payload resource.Payload,
) (resource.Payload, error) {
	path := itemPath(kind, id) + "/" + url.PathEscape(action.String())
	return c.fetch(ctx, http.MethodPost, path, payload)
}

// GetSettings fetches GET /settings.
func (c *ResourceClient) GetSettings(ctx context.Context) (resource.Payload, error) {
	return c.fetch(ctx, http.MethodGet, settingsPath, nil)
}

// UpdateSettings sends PUT /settings.
func (c *ResourceClient) UpdateSettings(ctx context.Context, payload resource.Payload) (resource.Payload, error) {
	return c.fetch(ctx, http.MethodPut, settingsPath, payload)
}

// fetch sends payload (if any) and returns the raw response document.
func (c *ResourceClient) fetch(ctx context.Context, method, path string, payload resource.Payload) (resource.Payload, error) {
	var body any
	if len(payload) > 0 {
		body = payload
	}

	var out resource.Payload
	if err := c.req.Do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectionPath(kind resource.Kind) string {
	return "/" + url.PathEscape(kind.String())
}

func itemPath(kind resource.Kind, id string) string {
	return collectionPath(kind) + "/" + url.PathEscape(id)
}
