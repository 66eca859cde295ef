package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/contractor-portal/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadHeaderTimeout != 10*time.Second {
		t.Errorf("Server.ReadHeaderTimeout = %v, want 10s", cfg.Server.ReadHeaderTimeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if !cfg.Storage.UsePathStyle {
		t.Error("Storage.UsePathStyle = false, want true for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Backend.RateLimit.RequestsPerSecond != 200 {
		t.Errorf("Backend.RateLimit.RequestsPerSecond = %v, want 200", cfg.Backend.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_UploadPolicyFromBase(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Upload.ChunkSize != config.MinChunkSize {
		t.Errorf("Upload.ChunkSize = %d, want %d", cfg.Upload.ChunkSize, config.MinChunkSize)
	}
	if cfg.Upload.MaxRetries != 3 {
		t.Errorf("Upload.MaxRetries = %d, want 3", cfg.Upload.MaxRetries)
	}
	if cfg.Upload.InitialBackoff != time.Second {
		t.Errorf("Upload.InitialBackoff = %v, want 1s", cfg.Upload.InitialBackoff)
	}
	if cfg.Upload.PartTimeout != 5*time.Minute {
		t.Errorf("Upload.PartTimeout = %v, want 5m", cfg.Upload.PartTimeout)
	}
	if cfg.Upload.BodyReadTimeout != 10*time.Minute {
		t.Errorf("Upload.BodyReadTimeout = %v, want 10m", cfg.Upload.BodyReadTimeout)
	}
	if cfg.ObjectStore.ForwardAuth {
		t.Error("ObjectStore.ForwardAuth = true, want false")
	}
	if !cfg.Backend.ForwardAuth {
		t.Error("Backend.ForwardAuth = false, want true")
	}
}

func TestLoad_DefaultsFillUnsetKeys(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	// object_store.retry.initial_interval is only set in defaults.
	if cfg.ObjectStore.Retry.InitialInterval != time.Second {
		t.Errorf("ObjectStore.Retry.InitialInterval = %v, want 1s", cfg.ObjectStore.Retry.InitialInterval)
	}
	if len(cfg.Storage.AllowedContentTypes) != 4 {
		t.Errorf("Storage.AllowedContentTypes = %v, want 4 defaults", cfg.Storage.AllowedContentTypes)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_UPLOAD_PART_TIMEOUT", "90s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Upload.PartTimeout != 90*time.Second {
		t.Errorf("Upload.PartTimeout = %v, want 90s (env override)", cfg.Upload.PartTimeout)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_BACKEND_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Backend.Retry.MaxAttempts != 7 {
		t.Errorf("Backend.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Backend.Retry.MaxAttempts)
	}
}

func TestLoad_EnvOverrideList(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_STORAGE_ALLOWED_CONTENT_TYPES", "application/pdf, image/png,")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := []string{"application/pdf", "image/png"}
	if diff := cmp.Diff(want, cfg.Storage.AllowedContentTypes); diff != "" {
		t.Errorf("Storage.AllowedContentTypes mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ConfigDirFromEnv(t *testing.T) {
	root := repoRoot(t)
	t.Chdir(t.TempDir())
	t.Setenv("APP_CONFIG_DIR", filepath.Join(root, "configs"))

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
}

func TestLoad_WithConfigDirBeatsEnv(t *testing.T) {
	root := repoRoot(t)
	t.Chdir(t.TempDir())
	t.Setenv("APP_CONFIG_DIR", "/nonexistent")

	if _, err := config.Load("local", config.WithConfigDir(filepath.Join(root, "configs"))); err != nil {
		t.Fatalf("Load error: %v", err)
	}
}

// repoRoot returns the absolute path of the module root.
func repoRoot(t *testing.T) string {
	t.Helper()

	root, err := filepath.Abs("../../..")
	if err != nil {
		t.Fatalf("resolving repo root: %v", err)
	}
	return root
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../prod", `a\b`, "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(*config.Config) {}},
		{name: "invalid port", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: true},
		{
			name:    "negative header timeout",
			mutate:  func(c *config.Config) { c.Server.ReadHeaderTimeout = -time.Second },
			wantErr: true,
		},
		{name: "invalid log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "relative backend url", mutate: func(c *config.Config) { c.Backend.BaseURL = "/api" }, wantErr: true},
		{name: "chunk below minimum", mutate: func(c *config.Config) { c.Upload.ChunkSize = 1024 }, wantErr: true},
		{name: "negative retries", mutate: func(c *config.Config) { c.Upload.MaxRetries = -1 }, wantErr: true},
		{
			name:    "negative body read timeout",
			mutate:  func(c *config.Config) { c.Upload.BodyReadTimeout = -time.Minute },
			wantErr: true,
		},
		{
			name:    "max backoff below initial",
			mutate:  func(c *config.Config) { c.Upload.MaxBackoff = 100 * time.Millisecond },
			wantErr: true,
		},
		{
			name:    "rate limit without burst",
			mutate:  func(c *config.Config) { c.Backend.RateLimit.RequestsPerSecond = 10 },
			wantErr: true,
		},
		{
			name:    "storage enabled without bucket",
			mutate:  func(c *config.Config) { c.Storage.Enabled = true; c.Storage.Bucket = "" },
			wantErr: true,
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func validClientConfig(baseURL string) config.ClientConfig {
	return config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     10 * time.Second,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 10 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Backend:     validClientConfig("http://localhost:8081"),
		ObjectStore: validClientConfig("https://s3.amazonaws.com"),
		Upload: config.UploadConfig{
			ChunkSize:         config.MinChunkSize,
			MaxRetries:        3,
			InitialBackoff:    time.Second,
			MaxBackoff:        4 * time.Second,
			BackoffMultiplier: 2,
			PartTimeout:       5 * time.Minute,
			Timeout:           30 * time.Minute,
			MaxFileSize:       100 << 20,
			ProgressRetention: time.Hour,
		},
		Storage: config.StorageConfig{
			Enabled: false,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
