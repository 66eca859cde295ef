package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/contractor-portal/internal/domain"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for backend calls:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup, status validation, error translation, and JSON
// decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do executes an HTTP request against the configured base URL.
//
// A nil reqBody sends no body. A json.RawMessage reqBody is sent as-is; any
// other value is marshaled to JSON. Any 2xx status is success: the body is
// decoded into respBody when respBody is non-nil and the body is non-empty.
//
// Non-2xx responses become *domain.UpstreamError via TranslateHTTPError.
// Transport failures and an open circuit breaker wrap domain.ErrUnavailable.
func (r *Requester) Do(ctx context.Context, method, path string, reqBody, respBody any) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	return r.execute(req, respBody)
}

func (r *Requester) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	url := r.client.BaseURL() + path

	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if reqBody == nil {
		req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	body, err := marshalBody(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func marshalBody(v any) ([]byte, error) {
	if raw, ok := v.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(v)
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil {
		// httpclient.Do returns both resp and err when retries are exhausted
		// on a retryable status. The backend's answer wins over the retry error.
		if resp != nil && !isSuccess(resp.StatusCode) {
			return r.upstreamError(req, resp)
		}
		r.logger.ErrorContext(ctx, "backend request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ctxErr)
		}
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}

	if !isSuccess(resp.StatusCode) {
		return r.upstreamError(req, resp)
	}

	if respBody == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (r *Requester) upstreamError(req *http.Request, resp *http.Response) error {
	err := TranslateHTTPError(resp)

	level := slog.LevelWarn
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) && upErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	r.logger.Log(req.Context(), level, "backend returned error status",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
	)
	return err
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
