// Package uploader uploads signed PDFs to object storage through the
// backend's multipart endpoints: initiate, then for each part a presigned
// URL and a PUT, then complete. Parts go one at a time. A failed part is
// retried with exponential backoff; an upload that cannot finish is aborted.
package uploader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/logging"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/telemetry"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// Observer receives progress notifications from a running upload. Calls
// happen on the uploading goroutine, in order.
type Observer interface {
	Initiated(session upload.Session, totalParts int)
	PartUploaded(part upload.Part)
	Completing()
}

type noopObserver struct{}

func (noopObserver) Initiated(upload.Session, int) {}
func (noopObserver) PartUploaded(upload.Part)      {}
func (noopObserver) Completing()                   {}

// waitFunc blocks for d or until ctx is done.
type waitFunc func(ctx context.Context, d time.Duration) error

// Uploader runs one multipart upload per Upload call. It is safe for
// concurrent use; each call keeps its own state.
type Uploader struct {
	client  ports.SignatureUploadClient
	store   ports.PartStore
	policy  Policy
	metrics *telemetry.Metrics
	logger  *slog.Logger
	wait    waitFunc
}

// New creates an Uploader. metrics may be nil.
func New(
	client ports.SignatureUploadClient, store ports.PartStore, policy Policy,
	metrics *telemetry.Metrics, logger *slog.Logger,
) *Uploader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if policy.AbortTimeout <= 0 {
		policy.AbortTimeout = defaultAbortTimeout
	}
	return &Uploader{
		client:  client,
		store:   store,
		policy:  policy,
		metrics: metrics,
		logger:  logger,
		wait:    sleepContext,
	}
}

// Upload sends req.Body to object storage and returns the completed result.
// obs may be nil.
//
// Errors before initiate (validation, planning) leave nothing to clean up.
// Any error after initiate triggers a best-effort abort and is returned
// unchanged. A part that exhausts its attempts yields *upload.PartError.
func (u *Uploader) Upload(ctx context.Context, req upload.Request, obs Observer) (*upload.Result, error) {
	if obs == nil {
		obs = noopObserver{}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.ContentType == "" {
		req.ContentType = upload.ContentTypePDF
	}

	parts, err := upload.PlanParts(req.Size, u.policy.ChunkSize)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	logger := logging.FromContextOr(ctx, u.logger).With(slog.String("signature_id", req.SignatureID))

	session, err := u.client.Initiate(ctx, ports.InitiateUpload{
		SignatureID: req.SignatureID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		FileSize:    req.Size,
		PartCount:   len(parts),
	})
	if err != nil {
		u.recordDuration(ctx, start, false)
		return nil, err
	}

	logger = logger.With(slog.String("upload_id", session.UploadID))
	logger.InfoContext(ctx, "multipart upload initiated",
		slog.Int64("size", req.Size),
		slog.Int("parts", len(parts)),
	)
	obs.Initiated(*session, len(parts))

	completed, err := u.uploadParts(ctx, logger, *session, req.Body, parts, obs)
	if err != nil {
		u.abort(ctx, logger, *session)
		u.recordDuration(ctx, start, false)
		return nil, err
	}

	obs.Completing()
	location, err := u.client.Complete(ctx, *session, completed)
	if err != nil {
		u.abort(ctx, logger, *session)
		u.recordDuration(ctx, start, false)
		return nil, err
	}

	u.recordDuration(ctx, start, true)
	logger.InfoContext(ctx, "multipart upload completed",
		slog.String("location", location),
		slog.Duration("elapsed", time.Since(start)),
	)

	return &upload.Result{
		SignatureID: req.SignatureID,
		UploadID:    session.UploadID,
		Key:         session.Key,
		Location:    location,
		Parts:       completed,
		Size:        req.Size,
	}, nil
}

// uploadParts sends parts in ascending order, reusing one buffer.
func (u *Uploader) uploadParts(
	ctx context.Context, logger *slog.Logger, session upload.Session,
	body io.ReaderAt, parts []upload.Part, obs Observer,
) ([]upload.CompletedPart, error) {
	buf := make([]byte, parts[0].Size)
	completed := make([]upload.CompletedPart, 0, len(parts))

	for _, part := range parts {
		data := buf[:part.Size]
		if _, err := io.ReadFull(io.NewSectionReader(body, part.Offset, part.Size), data); err != nil {
			return nil, fmt.Errorf("reading part %d: %w", part.Number, err)
		}

		etag, err := u.uploadPart(ctx, logger, session, part, data)
		if err != nil {
			return nil, err
		}

		completed = append(completed, upload.CompletedPart{Number: part.Number, ETag: etag})
		obs.PartUploaded(part)
	}
	return completed, nil
}

// uploadPart tries a part up to Policy.Attempts times. Each attempt presigns
// a fresh URL and PUTs the data under its own PartTimeout. Canceling ctx
// stops immediately without further attempts.
func (u *Uploader) uploadPart(
	ctx context.Context, logger *slog.Logger, session upload.Session, part upload.Part, data []byte,
) (string, error) {
	attempts := u.policy.Attempts()
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := u.policy.Backoff(attempt - 1)
			logger.WarnContext(ctx, "retrying part upload",
				slog.Int("part", part.Number),
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", attempts),
				slog.Duration("backoff", delay),
				slog.Any("error", lastErr),
			)
			u.addRetry(ctx)
			if err := u.wait(ctx, delay); err != nil {
				return "", fmt.Errorf("part %d: %w", part.Number, err)
			}
		}

		etag, err := u.attemptPart(ctx, session, part, data)
		if err == nil {
			u.addPartResult(ctx, "success")
			logger.DebugContext(ctx, "part uploaded",
				slog.Int("part", part.Number),
				slog.Int64("bytes", part.Size),
				slog.Int("attempt", attempt),
			)
			return etag, nil
		}
		lastErr = err

		if ctxErr := ctx.Err(); ctxErr != nil {
			u.addPartResult(ctx, "canceled")
			return "", fmt.Errorf("part %d: %w", part.Number, ctxErr)
		}
	}

	u.addPartResult(ctx, "failure")
	return "", &upload.PartError{Part: part.Number, Attempts: attempts, Err: lastErr}
}

func (u *Uploader) attemptPart(ctx context.Context, session upload.Session, part upload.Part, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.policy.PartTimeout)
	defer cancel()

	url, err := u.client.PresignPart(ctx, session, part.Number)
	if err != nil {
		return "", err
	}
	return u.store.PutPart(ctx, url, data)
}

// abort discards the remote upload. It runs even when ctx is canceled, and
// its own failure is only logged.
func (u *Uploader) abort(ctx context.Context, logger *slog.Logger, session upload.Session) {
	abortCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.policy.AbortTimeout)
	defer cancel()

	if err := u.client.Abort(abortCtx, session); err != nil {
		logger.WarnContext(ctx, "failed to abort multipart upload", slog.Any("error", err))
		return
	}
	logger.InfoContext(ctx, "multipart upload aborted")
}

func (u *Uploader) addRetry(ctx context.Context) {
	if u.metrics == nil {
		return
	}
	u.metrics.UploadPartRetries.Add(ctx, 1)
}

func (u *Uploader) addPartResult(ctx context.Context, result string) {
	if u.metrics == nil {
		return
	}
	u.metrics.UploadPartTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}

func (u *Uploader) recordDuration(ctx context.Context, start time.Time, ok bool) {
	if u.metrics == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	u.metrics.UploadDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(telemetry.AttrResult.String(result)))
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
