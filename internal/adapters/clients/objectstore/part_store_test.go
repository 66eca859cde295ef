package objectstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/clients/objectstore"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/config"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/httpclient"
)

func newStore(t *testing.T, baseURL string) *objectstore.PartStore {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)
	return objectstore.NewPartStore(httpclient.New(cfg, "object-store-test", nil, logger), logger)
}

func TestPutPart_ReturnsETag(t *testing.T) {
	t.Parallel()

	var gotBody, gotMethod, gotQuery string
	var gotLength int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody, gotMethod, gotQuery, gotLength = string(b), r.Method, r.URL.RawQuery, r.ContentLength
		w.Header().Set("ETag", `"5d41402abc4b2a76b9719d911017c592"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	store := newStore(t, ts.URL)
	etag, err := store.PutPart(context.Background(), ts.URL+"/bucket/key?partNumber=1&X-Amz-Signature=abc", []byte("hello"))
	if err != nil {
		t.Fatalf("PutPart() error = %v", err)
	}

	if etag != `"5d41402abc4b2a76b9719d911017c592"` {
		t.Errorf("etag = %q", etag)
	}
	if gotMethod != http.MethodPut || gotBody != "hello" || gotLength != 5 {
		t.Errorf("got %s body=%q len=%d, want PUT body=%q len=5", gotMethod, gotBody, gotLength, "hello")
	}
	if !strings.Contains(gotQuery, "X-Amz-Signature=abc") {
		t.Errorf("query = %q, presigned parameters lost", gotQuery)
	}
}

func TestPutPart_MissingETag(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	_, err := newStore(t, ts.URL).PutPart(context.Background(), ts.URL+"/k", []byte("x"))
	if !errors.Is(err, objectstore.ErrMissingETag) {
		t.Errorf("PutPart() error = %v, want ErrMissingETag", err)
	}
}

func TestPutPart_ErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{name: "expired signature", status: http.StatusForbidden},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, "<Error><Code>Nope</Code></Error>")
			}))
			t.Cleanup(ts.Close)

			_, err := newStore(t, ts.URL).PutPart(context.Background(), ts.URL+"/k", []byte("x"))
			if err == nil {
				t.Fatal("PutPart() error = nil, want error")
			}
			if !strings.Contains(err.Error(), "Nope") {
				t.Errorf("error = %q, want body snippet", err.Error())
			}
		})
	}
}

func TestPutPart_DoesNotForwardAuthorization(t *testing.T) {
	t.Parallel()

	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("ETag", `"e"`)
	}))
	t.Cleanup(ts.Close)

	ctx := httpclient.WithAuthorization(context.Background(), "Bearer user-token")
	if _, err := newStore(t, ts.URL).PutPart(ctx, ts.URL+"/k", []byte("x")); err != nil {
		t.Fatalf("PutPart() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestPutPart_ContextCanceled(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("ETag", `"e"`)
	}))
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newStore(t, ts.URL).PutPart(ctx, ts.URL+"/k", []byte("x"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("PutPart() error = %v, want context.Canceled", err)
	}
}
