package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/clients/backend"
	"github.com/jsamuelsen11/contractor-portal/internal/domain"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

var testSession = upload.Session{SignatureID: "sig_1", UploadID: "up-abc", Key: "signatures/sig_1/signed.pdf"}

func TestSignatureClient_Initiate(t *testing.T) {
	t.Parallel()

	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/signatures/sig_1/multipart/initiate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		got = decodeJSON(t, r)
		writeJSON(t, w, http.StatusOK, map[string]string{"upload_id": "up-abc", "key": "signatures/sig_1/signed.pdf"})
	}))
	t.Cleanup(ts.Close)

	client := backend.NewSignatureClient(newTestClient(t, ts.URL), discardLogger())
	session, err := client.Initiate(context.Background(), ports.InitiateUpload{
		SignatureID: "sig_1",
		FileName:    "signed.pdf",
		ContentType: "application/pdf",
		FileSize:    12 << 20,
		PartCount:   3,
	})
	if err != nil {
		t.Fatalf("Initiate() error = %v", err)
	}

	wantBody := map[string]any{
		"file_name":    "signed.pdf",
		"content_type": "application/pdf",
		"file_size":    float64(12 << 20),
		"part_count":   float64(3),
	}
	if diff := cmp.Diff(wantBody, got); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(testSession, *session); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestSignatureClient_InitiateMissingUploadID(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"key": "k"})
	}))
	t.Cleanup(ts.Close)

	client := backend.NewSignatureClient(newTestClient(t, ts.URL), discardLogger())
	if _, err := client.Initiate(context.Background(), ports.InitiateUpload{SignatureID: "sig_1"}); err == nil {
		t.Fatal("Initiate() error = nil, want error for missing upload_id")
	}
}

func TestSignatureClient_PresignPart(t *testing.T) {
	t.Parallel()

	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/signatures/sig_1/multipart/presign" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		got = decodeJSON(t, r)
		writeJSON(t, w, http.StatusOK, map[string]string{"url": "https://bucket.example/part?sig=1"})
	}))
	t.Cleanup(ts.Close)

	client := backend.NewSignatureClient(newTestClient(t, ts.URL), discardLogger())
	url, err := client.PresignPart(context.Background(), testSession, 2)
	if err != nil {
		t.Fatalf("PresignPart() error = %v", err)
	}

	if url != "https://bucket.example/part?sig=1" {
		t.Errorf("url = %q", url)
	}
	wantBody := map[string]any{"upload_id": "up-abc", "key": testSession.Key, "part_number": float64(2)}
	if diff := cmp.Diff(wantBody, got); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestSignatureClient_Complete(t *testing.T) {
	t.Parallel()

	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/signatures/sig_1/multipart/complete" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		got = decodeJSON(t, r)
		writeJSON(t, w, http.StatusOK, map[string]string{"location": "https://bucket.example/signed.pdf"})
	}))
	t.Cleanup(ts.Close)

	client := backend.NewSignatureClient(newTestClient(t, ts.URL), discardLogger())
	location, err := client.Complete(context.Background(), testSession, []upload.CompletedPart{
		{Number: 1, ETag: `"etag-1"`},
		{Number: 2, ETag: `"etag-2"`},
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if location != "https://bucket.example/signed.pdf" {
		t.Errorf("location = %q", location)
	}
	wantBody := map[string]any{
		"upload_id": "up-abc",
		"key":       testSession.Key,
		"parts": []any{
			map[string]any{"part_number": float64(1), "etag": `"etag-1"`},
			map[string]any{"part_number": float64(2), "etag": `"etag-2"`},
		},
	}
	if diff := cmp.Diff(wantBody, got); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestSignatureClient_CompleteFallsBackToKey(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{})
	}))
	t.Cleanup(ts.Close)

	client := backend.NewSignatureClient(newTestClient(t, ts.URL), discardLogger())
	location, err := client.Complete(context.Background(), testSession, nil)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if location != testSession.Key {
		t.Errorf("location = %q, want %q", location, testSession.Key)
	}
}

func TestSignatureClient_AbortErrorKeepsStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/signatures/sig_1/multipart/abort" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "no such upload"})
	}))
	t.Cleanup(ts.Close)

	client := backend.NewSignatureClient(newTestClient(t, ts.URL), discardLogger())
	err := client.Abort(context.Background(), testSession)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Abort() error = %v, want ErrNotFound", err)
	}
}

func TestSignatureClient_SendsEachCallOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(*backend.SignatureClient) error
	}{
		{
			name: "initiate",
			call: func(c *backend.SignatureClient) error {
				_, err := c.Initiate(context.Background(), ports.InitiateUpload{SignatureID: "sig_1"})
				return err
			},
		},
		{
			name: "presign",
			call: func(c *backend.SignatureClient) error {
				_, err := c.PresignPart(context.Background(), testSession, 1)
				return err
			},
		},
		{
			name: "complete",
			call: func(c *backend.SignatureClient) error {
				_, err := c.Complete(context.Background(), testSession, nil)
				return err
			},
		},
		{
			name: "abort",
			call: func(c *backend.SignatureClient) error {
				return c.Abort(context.Background(), testSession)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var count atomic.Int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				count.Add(1)
				writeJSON(t, w, http.StatusBadGateway, map[string]string{"error": "upstream down"})
			}))
			t.Cleanup(ts.Close)

			client := backend.NewSignatureClient(newTestClientWithAttempts(t, ts.URL, 3), discardLogger())
			if err := tt.call(client); !errors.Is(err, domain.ErrUnavailable) {
				t.Errorf("error = %v, want ErrUnavailable", err)
			}
			if got := count.Load(); got != 1 {
				t.Errorf("request count = %d, want 1", got)
			}
		})
	}
}
