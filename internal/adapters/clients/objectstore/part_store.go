// Package objectstore uploads multipart chunks to presigned object store URLs.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/contractor-portal/internal/platform/httpclient"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// Compile-time interface check.
var _ ports.PartStore = (*PartStore)(nil)

// ErrMissingETag is returned when the store accepts a part without naming it.
var ErrMissingETag = errors.New("object store response has no ETag")

// maxErrorSnippet bounds how much of an error body is echoed into the error.
const maxErrorSnippet = 256

// PartStore PUTs part bytes to presigned URLs through an httpclient.Client.
// Each PUT is sent once; the uploader retries with a freshly presigned URL.
// The client should be configured without Authorization forwarding: the URL
// carries its own signature.
type PartStore struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewPartStore creates a PartStore.
func NewPartStore(client *httpclient.Client, logger *slog.Logger) *PartStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PartStore{client: client, logger: logger}
}

// PutPart uploads data to url and returns the response ETag.
func (s *PartStore) PutPart(ctx context.Context, url string, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating part request: %w", err)
	}
	req.ContentLength = int64(len(data))

	resp, err := s.client.Do(httpclient.WithSingleAttempt(ctx), req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			if cerr := resp.Body.Close(); cerr != nil {
				s.logger.WarnContext(ctx, "failed to close response body", slog.String("error", cerr.Error()))
			}
		}()
	}
	if err != nil && (resp == nil || resp.StatusCode < http.StatusBadRequest) {
		return "", fmt.Errorf("uploading part: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorSnippet))
		return "", fmt.Errorf("uploading part: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	etag := resp.Header.Get("ETag")
	if etag == "" {
		return "", ErrMissingETag
	}
	return etag, nil
}
