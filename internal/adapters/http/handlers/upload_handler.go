package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contractor-portal/internal/domain"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/logging"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

const (
	// multipartOverhead is the headroom allowed above the file limit for
	// multipart boundaries and part headers.
	multipartOverhead = 64 << 10

	formFileField = "file"
)

// UploadHandler accepts signed PDFs and reports upload progress.
type UploadHandler struct {
	svc             ports.UploadService
	maxFileSize     int64
	bodyReadTimeout time.Duration
}

// NewUploadHandler creates a new UploadHandler. maxFileSize caps the accepted
// PDF size in bytes. A positive bodyReadTimeout replaces the server's read and
// write timeouts for the upload request, so a slow client can send a file
// near maxFileSize and still get its 202; zero keeps the server's.
func NewUploadHandler(svc ports.UploadService, maxFileSize int64, bodyReadTimeout time.Duration) *UploadHandler {
	return &UploadHandler{svc: svc, maxFileSize: maxFileSize, bodyReadTimeout: bodyReadTimeout}
}

// Start handles POST /api/v1/signatures/{signatureId}/pdf. The body is either
// the raw PDF or a multipart form with a "file" field. The upload continues in
// the background; the response carries a tracking ID for polling.
func (h *UploadHandler) Start(w http.ResponseWriter, r *http.Request) {
	signatureID := chi.URLParam(r, "signatureId")
	h.extendDeadlines(w, r)

	data, fileName, err := h.readFile(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if fileName == "" {
		fileName = signatureID + ".pdf"
	}

	if len(data) > 0 {
		if mt := mimetype.Detect(data); !mt.Is(upload.ContentTypePDF) {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("file",
				fmt.Sprintf("must be a PDF, detected %s", mt.String())))
			return
		}
	}

	id, err := h.svc.Start(r.Context(), upload.Request{
		SignatureID: signatureID,
		FileName:    fileName,
		ContentType: upload.ContentTypePDF,
		Body:        bytes.NewReader(data),
		Size:        int64(len(data)),
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	statusURL := "/api/v1/uploads/" + id
	w.Header().Set("Location", statusURL)
	writeJSON(w, http.StatusAccepted, dto.UploadAcceptedResponse{
		TrackingID: id,
		Status:     upload.StatePending.String(),
		StatusURL:  statusURL,
	})
}

// Progress handles GET /api/v1/uploads/{uploadId}.
func (h *UploadHandler) Progress(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Progress(chi.URLParam(r, "uploadId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUploadProgressResponse(&p))
}

// List handles GET /api/v1/uploads.
func (h *UploadHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToUploadListResponse(h.svc.List()))
}

// extendDeadlines moves the connection's read and write deadlines to
// bodyReadTimeout from now. Writers that cannot set deadlines keep the
// server's.
func (h *UploadHandler) extendDeadlines(w http.ResponseWriter, r *http.Request) {
	if h.bodyReadTimeout <= 0 {
		return
	}
	deadline := time.Now().Add(h.bodyReadTimeout)
	rc := http.NewResponseController(w)

	err := errors.Join(rc.SetReadDeadline(deadline), rc.SetWriteDeadline(deadline))
	if err != nil && !errors.Is(err, http.ErrNotSupported) {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to extend upload deadlines",
			slog.Any("error", err),
		)
	}
}

// readFile returns the PDF bytes and, when the client sent one, its file name.
func (h *UploadHandler) readFile(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	if mediaType == "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)
		return h.readFormFile(r)
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading upload body: %w", err)
	}
	return data, cleanFileName(r.URL.Query().Get("file_name")), nil
}

func (h *UploadHandler) readFormFile(r *http.Request) ([]byte, string, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, "", domain.NewValidationError("body", "invalid multipart form")
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, "", domain.NewValidationError(formFileField, domain.MsgRequired)
		}
		if err != nil {
			return nil, "", fmt.Errorf("reading multipart form: %w", err)
		}
		if part.FormName() != formFileField {
			_ = part.Close()
			continue
		}

		data, err := io.ReadAll(io.LimitReader(part, h.maxFileSize+1))
		_ = part.Close()
		if err != nil {
			return nil, "", fmt.Errorf("reading multipart file: %w", err)
		}
		if int64(len(data)) > h.maxFileSize {
			return nil, "", &http.MaxBytesError{Limit: h.maxFileSize}
		}
		return data, cleanFileName(part.FileName()), nil
	}
}

// cleanFileName keeps only the base name a client supplied.
func cleanFileName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}
	base := path.Base(name)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
