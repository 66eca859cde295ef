package backend_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/contractor-portal/internal/platform/config"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()
	return newTestClientWithAttempts(t, baseURL, 1)
}

// newTestClientWithAttempts is newTestClient with a retry policy of the given
// number of attempts.
func newTestClientWithAttempts(t *testing.T, baseURL string, attempts int) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		ForwardAuth: true,
		Retry: config.RetryConfig{
			MaxAttempts:     attempts,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "backend-api-test", nil, discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

// decodeJSON decodes the request body into a generic map.
func decodeJSON(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		t.Errorf("failed to decode request body: %v", err)
	}
	return m
}
