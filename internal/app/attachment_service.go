package app

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/contractor-portal/internal/domain"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// Compile-time check that AttachmentService implements ports.AttachmentService.
var _ ports.AttachmentService = (*AttachmentService)(nil)

// attachmentPrefix roots every attachment key in the bucket.
const attachmentPrefix = "attachments"

// AttachmentPolicy bounds what callers may presign.
type AttachmentPolicy struct {
	AllowedContentTypes []string
	MaxSize             int64
}

// AttachmentService checks attachment requests against the policy and asks
// the presigner for a direct-upload URL under a fresh, date-partitioned key.
type AttachmentService struct {
	presigner ports.AttachmentPresigner
	policy    AttachmentPolicy
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewAttachmentService creates an AttachmentService. A nil logger discards output.
func NewAttachmentService(presigner ports.AttachmentPresigner, policy AttachmentPolicy, logger *slog.Logger) *AttachmentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AttachmentService{
		presigner: presigner,
		policy:    policy,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Presign validates req and returns a presigned PUT for it.
func (s *AttachmentService) Presign(ctx context.Context, req ports.AttachmentRequest) (*ports.PresignedUpload, error) {
	contentType := normalizeContentType(req.ContentType)
	if err := s.validate(req, contentType); err != nil {
		return nil, err
	}

	key := s.objectKey(req.FileName, contentType)
	out, err := s.presigner.PresignPut(ctx, key, contentType, req.Size)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to presign attachment",
			slog.String("operation", "Presign"),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("presigning attachment: %w", err)
	}

	s.logger.InfoContext(ctx, "presigned attachment upload",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int64("size", req.Size),
	)
	return out, nil
}

func (s *AttachmentService) validate(req ports.AttachmentRequest, contentType string) error {
	fields := make(map[string]string)

	if strings.TrimSpace(req.FileName) == "" {
		fields["file_name"] = domain.MsgRequired
	}
	if contentType == "" {
		fields["content_type"] = domain.MsgRequired
	} else if !slices.Contains(s.policy.AllowedContentTypes, contentType) {
		fields["content_type"] = fmt.Sprintf("%q is not an allowed type", contentType)
	}
	if req.Size <= 0 {
		fields["size"] = fmt.Sprintf("must be positive, got %d", req.Size)
	} else if s.policy.MaxSize > 0 && req.Size > s.policy.MaxSize {
		fields["size"] = fmt.Sprintf("must be at most %d bytes, got %d", s.policy.MaxSize, req.Size)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// objectKey builds attachments/YYYY/MM/DD/<uuid><ext>. The extension comes
// from the content type, falling back to the file name's own extension.
func (s *AttachmentService) objectKey(fileName, contentType string) string {
	ext := ""
	if mt := mimetype.Lookup(contentType); mt != nil {
		ext = mt.Extension()
	}
	if ext == "" {
		ext = strings.ToLower(path.Ext(fileName))
	}
	return path.Join(attachmentPrefix, s.now().UTC().Format("2006/01/02"), s.newID()+ext)
}

// normalizeContentType lowercases the media type and drops parameters such
// as "; charset=binary".
func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
