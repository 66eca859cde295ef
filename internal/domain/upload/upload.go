// Package upload models the multipart upload of a signed PDF: how a file is
// split into parts, what the object store returns for each part, and the
// progress snapshot callers poll while an upload runs.
package upload

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen11/contractor-portal/internal/domain"
)

// MaxParts is the largest part count an object store multipart upload accepts.
const MaxParts = 10000

// ContentTypePDF is the only content type accepted for signed documents.
const ContentTypePDF = "application/pdf"

// Request describes one signed PDF to upload. Body is read at part offsets,
// so it may be an *os.File or a *bytes.Reader.
type Request struct {
	SignatureID string
	FileName    string
	ContentType string
	Body        io.ReaderAt
	Size        int64
}

// Validate checks the request before any network call is made.
func (r *Request) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.SignatureID) == "" {
		fields["signature_id"] = domain.MsgRequired
	} else if !domain.ValidID(r.SignatureID) {
		fields["signature_id"] = domain.MsgInvalid
	}
	if strings.TrimSpace(r.FileName) == "" {
		fields["file_name"] = domain.MsgRequired
	}
	if r.Body == nil {
		fields["file"] = domain.MsgRequired
	}
	if r.Size <= 0 {
		fields["size"] = fmt.Sprintf("must be positive, got %d", r.Size)
	}
	if r.ContentType != "" && r.ContentType != ContentTypePDF {
		fields["content_type"] = fmt.Sprintf("must be %s, got %q", ContentTypePDF, r.ContentType)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Part is one contiguous byte range of the file. Numbers start at 1.
type Part struct {
	Number int
	Offset int64
	Size   int64
}

// CompletedPart pairs a part number with the ETag the object store returned
// for it. Complete needs these in ascending part order.
type CompletedPart struct {
	Number int
	ETag   string
}

// Session identifies an initiated multipart upload.
type Session struct {
	SignatureID string
	UploadID    string
	Key         string
}

// Result is the outcome of a completed upload.
type Result struct {
	SignatureID string
	UploadID    string
	Key         string
	Location    string
	Parts       []CompletedPart
	Size        int64
}

// PartError reports a part that exhausted its attempts. It wraps the error
// from the final attempt.
type PartError struct {
	Part     int
	Attempts int
	Err      error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("part %d failed after %d attempts: %v", e.Part, e.Attempts, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}

// PlanParts splits size bytes into chunkSize parts. Every part but the last
// is exactly chunkSize bytes; the last holds the remainder.
func PlanParts(size, chunkSize int64) ([]Part, error) {
	if size <= 0 {
		return nil, domain.NewValidationError("size", fmt.Sprintf("must be positive, got %d", size))
	}
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	count := (size + chunkSize - 1) / chunkSize
	if count > MaxParts {
		return nil, domain.NewValidationError("size",
			fmt.Sprintf("needs %d parts at %d bytes each, limit is %d", count, chunkSize, MaxParts))
	}

	parts := make([]Part, 0, count)
	for offset, n := int64(0), 1; offset < size; offset, n = offset+chunkSize, n+1 {
		parts = append(parts, Part{
			Number: n,
			Offset: offset,
			Size:   min(chunkSize, size-offset),
		})
	}
	return parts, nil
}
