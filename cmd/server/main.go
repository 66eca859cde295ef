// Package main is the entry point for the contractor portal gateway. It wires
// all dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/contractor-portal/internal/adapters/http"
	"github.com/jsamuelsen11/contractor-portal/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/contractor-portal/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/clients/backend"
	"github.com/jsamuelsen11/contractor-portal/internal/adapters/clients/objectstore"
	"github.com/jsamuelsen11/contractor-portal/internal/adapters/storage/s3"
	"github.com/jsamuelsen11/contractor-portal/internal/app"
	"github.com/jsamuelsen11/contractor-portal/internal/app/uploader"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/config"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/health"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/httpclient"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/logging"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/telemetry"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	uploadShutdownTimeout = 45 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, backendClientName))
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, objectStoreClientName))

	uploads := do.MustInvoke[*uploader.Service](injector)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Cancel background uploads. Each one aborts its multipart upload.
	uploadCtx, uploadCancel := context.WithTimeout(context.Background(), uploadShutdownTimeout)
	defer uploadCancel()

	if err := uploads.Shutdown(uploadCtx); err != nil {
		logger.Error("upload shutdown error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// uploadRoutePattern matches signed PDF upload requests, which read bodies up
// to upload.max_file_size and are exempt from the request timeout.
const uploadRoutePattern = "/api/v1/signatures/*/pdf"

// Named outbound clients. Both are *httpclient.Client with different config.
const (
	backendClientName     = "backend-api"
	objectStoreClientName = "object-store"
)

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.ProvideNamed(injector, backendClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Backend, backendClientName, metrics, logger), nil
	})

	do.ProvideNamed(injector, objectStoreClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.ObjectStore, objectStoreClientName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ResourceClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, backendClientName)
		return backend.NewResourceClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SignatureUploadClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, backendClientName)
		return backend.NewSignatureClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PartStore, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, objectStoreClientName)
		return objectstore.NewPartStore(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ResourceService, error) {
		return app.NewResourceService(do.MustInvoke[ports.ResourceClient](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardService, error) {
		return app.NewDashboardService(do.MustInvoke[ports.ResourceClient](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*uploader.Service, error) {
		u := uploader.New(
			do.MustInvoke[ports.SignatureUploadClient](i),
			do.MustInvoke[ports.PartStore](i),
			uploader.PolicyFromConfig(&cfg.Upload),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		)
		return uploader.NewService(u, uploader.NewTracker(), uploader.ServiceConfig{
			Timeout:   cfg.Upload.Timeout,
			Retention: cfg.Upload.ProgressRetention,
		}, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ResourceHandler, error) {
		return handlers.NewResourceHandler(do.MustInvoke[ports.ResourceService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DashboardHandler, error) {
		return handlers.NewDashboardHandler(do.MustInvoke[ports.DashboardService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.UploadHandler, error) {
		svc := do.MustInvoke[*uploader.Service](i)
		return handlers.NewUploadHandler(svc, cfg.Upload.MaxFileSize, cfg.Upload.BodyReadTimeout), nil
	})

	// Resolved only when storage is enabled.
	do.Provide(injector, func(_ do.Injector) (*handlers.AttachmentHandler, error) {
		presigner, err := s3.NewPresigner(context.Background(), &cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("creating s3 presigner: %w", err)
		}
		svc := app.NewAttachmentService(presigner, app.AttachmentPolicy{
			AllowedContentTypes: cfg.Storage.AllowedContentTypes,
			MaxSize:             cfg.Storage.MaxAttachmentSize,
		}, logger)
		return handlers.NewAttachmentHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		var attachmentH *handlers.AttachmentHandler
		if cfg.Storage.Enabled {
			var err error
			if attachmentH, err = do.Invoke[*handlers.AttachmentHandler](i); err != nil {
				return nil, err
			}
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		// Outermost first: Recovery sees panics from every later layer, and
		// the IDs exist before anything logs or calls the backend.
		stack := middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.ForwardAuthorization(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger, middleware.MatchPaths("/health/*")),
			middleware.Timeout(cfg.Server.RequestTimeout, middleware.MatchPaths(uploadRoutePattern)),
		)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Resource:   do.MustInvoke[*handlers.ResourceHandler](i),
			Upload:     do.MustInvoke[*handlers.UploadHandler](i),
			Dashboard:  do.MustInvoke[*handlers.DashboardHandler](i),
			Attachment: attachmentH,
			Health:     do.MustInvoke[*handlers.HealthHandler](i),
		}, stack), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
