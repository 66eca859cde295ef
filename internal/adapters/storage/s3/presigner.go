// Package s3 issues presigned S3 upload URLs for attachments using
// aws-sdk-go-v2. Browsers PUT the file straight to the bucket; the gateway
// never sees the bytes.
package s3

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jsamuelsen11/contractor-portal/internal/platform/config"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// Compile-time interface check.
var _ ports.AttachmentPresigner = (*Presigner)(nil)

// putObjectPresigner is the subset of *s3.PresignClient the Presigner uses.
type putObjectPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput,
		optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Presigner implements [ports.AttachmentPresigner] over an S3 bucket.
type Presigner struct {
	api    putObjectPresigner
	bucket string
	expiry time.Duration
	now    func() time.Time
}

// NewPresigner loads the default AWS credential chain and returns a
// Presigner for cfg.Bucket. A non-empty cfg.Endpoint targets an
// S3-compatible store such as LocalStack or MinIO.
func NewPresigner(ctx context.Context, cfg *config.StorageConfig) (*Presigner, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return NewPresignerFromConfig(awsCfg, cfg), nil
}

// NewPresignerFromConfig returns a Presigner using an existing aws.Config.
func NewPresignerFromConfig(awsCfg aws.Config, cfg *config.StorageConfig) *Presigner {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Presigner{
		api:    s3.NewPresignClient(client),
		bucket: cfg.Bucket,
		expiry: cfg.PresignExpiry,
		now:    time.Now,
	}
}

// PresignPut returns a PUT URL for key. The signature covers the content
// type and length, so the uploader must send matching headers.
func (p *Presigner) PresignPut(ctx context.Context, key, contentType string, size int64) (*ports.PresignedUpload, error) {
	if key == "" {
		return nil, errors.New("presign: key must not be empty")
	}

	issuedAt := p.now()
	req, err := p.api.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	}, s3.WithPresignExpires(p.expiry))
	if err != nil {
		return nil, fmt.Errorf("presigning put for %s: %w", key, err)
	}

	return &ports.PresignedUpload{
		URL:       req.URL,
		Method:    req.Method,
		Key:       key,
		Headers:   uploadHeaders(req.SignedHeader),
		ExpiresAt: issuedAt.Add(p.expiry),
	}, nil
}

// uploadHeaders flattens the signed headers the client must send, leaving
// out Host which the HTTP client sets itself.
func uploadHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) == 0 || http.CanonicalHeaderKey(name) == "Host" {
			continue
		}
		out[http.CanonicalHeaderKey(name)] = values[0]
	}
	return out
}
