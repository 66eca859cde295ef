package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/httpclient"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// Compile-time interface check.
var _ ports.SignatureUploadClient = (*SignatureClient)(nil)

// errIncompleteResponse is returned when the backend answers 2xx without a
// field the upload cannot proceed without.
var errIncompleteResponse = errors.New("backend response missing required field")

// SignatureClient drives POST /signatures/{id}/multipart/{initiate,presign,
// complete,abort} on the backend API.
//
// Every call is sent once regardless of the client's retry policy. The
// uploader owns the part retry schedule, and initiate and complete are not
// idempotent.
type SignatureClient struct {
	req *Requester
}

// NewSignatureClient creates a SignatureClient that sends requests through
// the given [httpclient.Client].
func NewSignatureClient(client *httpclient.Client, logger *slog.Logger) *SignatureClient {
	return &SignatureClient{req: NewRequester(client, logger)}
}

// Initiate opens a multipart upload for the signature's PDF.
func (c *SignatureClient) Initiate(ctx context.Context, in ports.InitiateUpload) (*upload.Session, error) {
	body := initiateRequest{
		FileName:    in.FileName,
		ContentType: in.ContentType,
		FileSize:    in.FileSize,
		PartCount:   in.PartCount,
	}

	var resp initiateResponse
	if err := c.post(ctx, multipartPath(in.SignatureID, "initiate"), body, &resp); err != nil {
		return nil, fmt.Errorf("initiating upload: %w", err)
	}
	if resp.UploadID == "" || resp.Key == "" {
		return nil, fmt.Errorf("initiating upload: %w: upload_id and key", errIncompleteResponse)
	}

	return &upload.Session{
		SignatureID: in.SignatureID,
		UploadID:    resp.UploadID,
		Key:         resp.Key,
	}, nil
}

// PresignPart returns the presigned PUT URL for one part.
func (c *SignatureClient) PresignPart(ctx context.Context, session upload.Session, partNumber int) (string, error) {
	body := presignRequest{
		UploadID:   session.UploadID,
		Key:        session.Key,
		PartNumber: partNumber,
	}

	var resp presignResponse
	if err := c.post(ctx, multipartPath(session.SignatureID, "presign"), body, &resp); err != nil {
		return "", fmt.Errorf("presigning part %d: %w", partNumber, err)
	}
	if resp.URL == "" {
		return "", fmt.Errorf("presigning part %d: %w: url", partNumber, errIncompleteResponse)
	}
	return resp.URL, nil
}

// Complete assembles the parts and returns the object location. When the
// backend omits a location the object key is returned instead.
func (c *SignatureClient) Complete(
	ctx context.Context, session upload.Session, parts []upload.CompletedPart,
) (string, error) {
	body := completeRequest{
		UploadID: session.UploadID,
		Key:      session.Key,
		Parts:    make([]completedPartDTO, len(parts)),
	}
	for i, p := range parts {
		body.Parts[i] = completedPartDTO{PartNumber: p.Number, ETag: p.ETag}
	}

	var resp completeResponse
	if err := c.post(ctx, multipartPath(session.SignatureID, "complete"), body, &resp); err != nil {
		return "", fmt.Errorf("completing upload: %w", err)
	}
	if resp.Location != "" {
		return resp.Location, nil
	}
	if resp.Key != "" {
		return resp.Key, nil
	}
	return session.Key, nil
}

// Abort discards an unfinished upload.
func (c *SignatureClient) Abort(ctx context.Context, session upload.Session) error {
	body := sessionRef{UploadID: session.UploadID, Key: session.Key}
	if err := c.post(ctx, multipartPath(session.SignatureID, "abort"), body, nil); err != nil {
		return fmt.Errorf("aborting upload: %w", err)
	}
	return nil
}

func (c *SignatureClient) post(ctx context.Context, path string, body, resp any) error {
	return c.req.Do(httpclient.WithSingleAttempt(ctx), http.MethodPost, path, body, resp)
}

func multipartPath(signatureID, step string) string {
	return "/signatures/" + url.PathEscape(signatureID) + "/multipart/" + step
}
