package s3

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jsamuelsen11/contractor-portal/internal/platform/config"
)

func testStorageConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Enabled:       true,
		Bucket:        "contractor-portal-test",
		Region:        "us-east-1",
		Endpoint:      "http://localhost:4566",
		UsePathStyle:  true,
		PresignExpiry: 15 * time.Minute,
	}
}

func staticAWSConfig() aws.Config {
	return aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", ""),
	}
}

func TestPresignPut_SignsPathStyleURL(t *testing.T) {
	t.Parallel()

	p := NewPresignerFromConfig(staticAWSConfig(), testStorageConfig())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	got, err := p.PresignPut(context.Background(), "attachments/2026/03/01/abc.pdf", "application/pdf", 2048)
	if err != nil {
		t.Fatalf("PresignPut() error = %v", err)
	}

	if got.Method != http.MethodPut {
		t.Errorf("Method = %q, want PUT", got.Method)
	}
	u, err := url.Parse(got.URL)
	if err != nil {
		t.Fatalf("parsing URL: %v", err)
	}
	if u.Host != "localhost:4566" {
		t.Errorf("host = %q, want localhost:4566", u.Host)
	}
	if want := "/contractor-portal-test/attachments/2026/03/01/abc.pdf"; u.Path != want {
		t.Errorf("path = %q, want %q", u.Path, want)
	}
	if u.Query().Get("X-Amz-Signature") == "" {
		t.Error("URL has no X-Amz-Signature")
	}
	if u.Query().Get("X-Amz-Expires") != "900" {
		t.Errorf("X-Amz-Expires = %q, want 900", u.Query().Get("X-Amz-Expires"))
	}
	if got.Headers["Content-Type"] != "application/pdf" {
		t.Errorf("Headers[Content-Type] = %q, want application/pdf", got.Headers["Content-Type"])
	}
	if _, ok := got.Headers["Host"]; ok {
		t.Error("Headers contains Host")
	}
	if !got.ExpiresAt.Equal(fixed.Add(15 * time.Minute)) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, fixed.Add(15*time.Minute))
	}
}

type fakePresigner struct {
	gotInput *s3.PutObjectInput
	err      error
}

func (f *fakePresigner) PresignPutObject(
	_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.PresignOptions),
) (*v4.PresignedHTTPRequest, error) {
	f.gotInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{
		URL:    "https://bucket.s3.amazonaws.com/" + aws.ToString(params.Key) + "?X-Amz-Signature=x",
		Method: http.MethodPut,
		SignedHeader: http.Header{
			"Host":           {"bucket.s3.amazonaws.com"},
			"content-length": {"10"},
		},
	}, nil
}

func TestPresignPut_PassesObjectParameters(t *testing.T) {
	t.Parallel()

	fake := &fakePresigner{}
	p := &Presigner{api: fake, bucket: "b", expiry: time.Minute, now: time.Now}

	got, err := p.PresignPut(context.Background(), "k.png", "image/png", 10)
	if err != nil {
		t.Fatalf("PresignPut() error = %v", err)
	}

	if aws.ToString(fake.gotInput.Bucket) != "b" || aws.ToString(fake.gotInput.Key) != "k.png" {
		t.Errorf("input bucket/key = %q/%q", aws.ToString(fake.gotInput.Bucket), aws.ToString(fake.gotInput.Key))
	}
	if aws.ToInt64(fake.gotInput.ContentLength) != 10 {
		t.Errorf("ContentLength = %d, want 10", aws.ToInt64(fake.gotInput.ContentLength))
	}
	if got.Headers["Content-Length"] != "10" {
		t.Errorf("Headers = %v, want canonical Content-Length", got.Headers)
	}
	if !strings.HasSuffix(strings.Split(got.URL, "?")[0], "/k.png") {
		t.Errorf("URL = %q", got.URL)
	}
}

func TestPresignPut_Errors(t *testing.T) {
	t.Parallel()

	p := &Presigner{api: &fakePresigner{err: errors.New("no credentials")}, bucket: "b", expiry: time.Minute, now: time.Now}

	if _, err := p.PresignPut(context.Background(), "", "image/png", 1); err == nil {
		t.Error("PresignPut(empty key) error = nil, want error")
	}
	if _, err := p.PresignPut(context.Background(), "k", "image/png", 1); err == nil {
		t.Error("PresignPut() error = nil, want presign failure")
	}
}
