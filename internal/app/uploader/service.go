package uploader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/contractor-portal/internal/domain"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/logging"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// Compile-time check that Service implements ports.UploadService.
var _ ports.UploadService = (*Service)(nil)

// ErrShuttingDown is returned by Start after Shutdown has begun.
var ErrShuttingDown = errors.New("upload service is shutting down")

// ServiceConfig bounds background uploads.
type ServiceConfig struct {
	// Timeout caps one whole upload, initiate through complete.
	Timeout time.Duration
	// Retention is how long finished uploads stay visible to Progress.
	Retention time.Duration
}

// Service runs uploads in the background and tracks their progress. Each
// upload gets one goroutine; parts within it stay sequential.
type Service struct {
	uploader *Uploader
	tracker  *Tracker
	cfg      ServiceConfig
	logger   *slog.Logger
	newID    func() string

	mu      sync.Mutex
	closed  bool
	baseCtx context.Context //nolint:containedctx // cancels every in-flight upload on Shutdown
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewService creates a Service. A nil logger discards output.
func NewService(uploader *Uploader, tracker *Tracker, cfg ServiceConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		uploader: uploader,
		tracker:  tracker,
		cfg:      cfg,
		logger:   logger,
		newID:    uuid.NewString,
		baseCtx:  ctx,
		cancel:   cancel,
	}
}

// Start validates req, registers it as pending, and uploads it in the
// background. The upload keeps ctx's values (logger, request and
// authorization headers, trace) but not its cancellation: it ends on
// success, failure, Timeout, or Shutdown.
func (s *Service) Start(ctx context.Context, req upload.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", fmt.Errorf("%w: %w", domain.ErrUnavailable, ErrShuttingDown)
	}

	if n := s.tracker.Prune(s.cfg.Retention); n > 0 {
		s.logger.DebugContext(ctx, "pruned finished uploads", slog.Int("count", n))
	}

	id := s.newID()
	s.tracker.Start(id, req)

	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Timeout)
	stop := context.AfterFunc(s.baseCtx, cancel)

	logger := logging.FromContextOr(ctx, s.logger).With(slog.String("tracking_id", id))
	runCtx = logging.WithLogger(runCtx, logger)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer stop()
		defer cancel()
		s.run(runCtx, logger, id, req)
	}()

	logger.InfoContext(ctx, "upload accepted",
		slog.String("signature_id", req.SignatureID),
		slog.Int64("size", req.Size),
	)
	return id, nil
}

func (s *Service) run(ctx context.Context, logger *slog.Logger, id string, req upload.Request) {
	result, err := s.uploader.Upload(ctx, req, s.tracker.Observer(id))
	if err != nil {
		s.tracker.Fail(id, err)
		logger.ErrorContext(ctx, "upload failed",
			slog.String("signature_id", req.SignatureID),
			slog.Any("error", err),
		)
		return
	}
	s.tracker.Complete(id, result)
}

// Progress returns a snapshot of a tracked upload.
func (s *Service) Progress(id string) (upload.Progress, error) {
	p, ok := s.tracker.Get(id)
	if !ok {
		return upload.Progress{}, fmt.Errorf("upload %q: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// List returns every tracked upload, newest first.
func (s *Service) List() []upload.Progress {
	return s.tracker.List()
}

// Shutdown stops accepting uploads, cancels those in flight, and waits for
// their goroutines to finish or for ctx to end.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for uploads: %w", ctx.Err())
	}
}
