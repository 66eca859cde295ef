package backend_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/clients/backend"
	"github.com/jsamuelsen11/contractor-portal/internal/domain"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/resource"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/httpclient"
)

func TestResourceClient_Routes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       func(context.Context, *backend.ResourceClient) error
		wantMethod string
		wantPath   string
		wantQuery  string
		wantBody   string
	}{
		{
			name: "list with query",
			call: func(ctx context.Context, c *backend.ResourceClient) error {
				_, err := c.List(ctx, resource.KindEstimates, resource.Query{"status": "sent", "page": "2"})
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/estimates",
			wantQuery:  "page=2&status=sent",
		},
		{
			name: "get",
			call: func(ctx context.Context, c *backend.ResourceClient) error {
				_, err := c.Get(ctx, resource.KindJobs, "job_7")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/jobs/job_7",
		},
		{
			name: "create",
			call: func(ctx context.Context, c *backend.ResourceClient) error {
				_, err := c.Create(ctx, resource.KindClients, resource.Payload(`{"name":"Acme"}`))
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/clients",
			wantBody:   `{"name":"Acme"}`,
		},
		{
			name: "update",
			call: func(ctx context.Context, c *backend.ResourceClient) error {
				_, err := c.Update(ctx, resource.KindClients, "c1", resource.Payload(`{"phone":"555"}`))
				return err
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/clients/c1",
			wantBody:   `{"phone":"555"}`,
		},
		{
			name: "delete",
			call: func(ctx context.Context, c *backend.ResourceClient) error {
				return c.Delete(ctx, resource.KindMessages, "m9")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/messages/m9",
		},
		{
			name: "perform without payload",
			call: func(ctx context.Context, c *backend.ResourceClient) error {
				_, err := c.Perform(ctx, resource.KindEstimates, "e1", resource.ActionSend, nil)
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/estimates/e1/send",
		},
		{
			name: "settings",
			call: func(ctx context.Context, c *backend.ResourceClient) error {
				_, err := c.UpdateSettings(ctx, resource.Payload(`{"currency":"USD"}`))
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/settings",
			wantBody:   `{"currency":"USD"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotMethod, gotPath, gotQuery, gotBody string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod, gotPath, gotQuery = r.Method, r.URL.Path, r.URL.RawQuery
				b, _ := io.ReadAll(r.Body)
				gotBody = string(b)
				writeJSON(t, w, http.StatusOK, map[string]any{"ok": true})
			}))
			t.Cleanup(ts.Close)

			client := backend.NewResourceClient(newTestClient(t, ts.URL), discardLogger())
			if err := tt.call(context.Background(), client); err != nil {
				t.Fatalf("call error = %v", err)
			}

			if gotMethod != tt.wantMethod {
				t.Errorf("method = %s, want %s", gotMethod, tt.wantMethod)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %s, want %s", gotPath, tt.wantPath)
			}
			if gotQuery != tt.wantQuery {
				t.Errorf("query = %q, want %q", gotQuery, tt.wantQuery)
			}
			if gotBody != tt.wantBody {
				t.Errorf("body = %q, want %q", gotBody, tt.wantBody)
			}
		})
	}
}

func TestResourceClient_GetReturnsRawPayload(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"e1","total":1250.5,"line_items":[{"sku":"A"}]}`)
	}))
	t.Cleanup(ts.Close)

	client := backend.NewResourceClient(newTestClient(t, ts.URL), discardLogger())
	got, err := client.Get(context.Background(), resource.KindEstimates, "e1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	want := `{"id":"e1","total":1250.5,"line_items":[{"sku":"A"}]}`
	if string(got) != want {
		t.Errorf("Get() = %s, want %s", got, want)
	}
}

func TestResourceClient_DeleteNoContent(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(ts.Close)

	client := backend.NewResourceClient(newTestClient(t, ts.URL), discardLogger())
	if err := client.Delete(context.Background(), resource.KindJobs, "j1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestResourceClient_ErrorStatusPassthrough(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusPaymentRequired, map[string]string{"message": "subscription expired"})
	}))
	t.Cleanup(ts.Close)

	client := backend.NewResourceClient(newTestClient(t, ts.URL), discardLogger())
	_, err := client.List(context.Background(), resource.KindJobs, nil)

	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("List() error = %v, want *domain.UpstreamError", err)
	}
	if upErr.Status != http.StatusPaymentRequired {
		t.Errorf("Status = %d, want %d", upErr.Status, http.StatusPaymentRequired)
	}
	if upErr.Message != "subscription expired" {
		t.Errorf("Message = %q, want %q", upErr.Message, "subscription expired")
	}
}

func TestResourceClient_NetworkErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	client := backend.NewResourceClient(newTestClient(t, url), discardLogger())
	_, err := client.GetSettings(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("GetSettings() error = %v, want ErrUnavailable", err)
	}
}

func TestResourceClient_ForwardsAuthorization(t *testing.T) {
	t.Parallel()

	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, map[string]any{})
	}))
	t.Cleanup(ts.Close)

	client := backend.NewResourceClient(newTestClient(t, ts.URL), discardLogger())
	ctx := httpclient.WithAuthorization(context.Background(), "Bearer user-token")
	if _, err := client.GetSettings(ctx); err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}

	if gotAuth != "Bearer user-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer user-token")
	}
}
