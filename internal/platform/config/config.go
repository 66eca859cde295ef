// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server      ServerConfig    `koanf:"server"`
	Log         LogConfig       `koanf:"log"`
	Backend     ClientConfig    `koanf:"backend"`
	ObjectStore ClientConfig    `koanf:"object_store"`
	Upload      UploadConfig    `koanf:"upload"`
	Storage     StorageConfig   `koanf:"storage"`
	Telemetry   TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	RequestTimeout    time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds outbound HTTP client settings. It is used for both the
// backend API and the object store that serves presigned part URLs.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	ForwardAuth    bool                 `koanf:"forward_auth"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. A zero RequestsPerSecond
// disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// UploadConfig holds the signed-PDF multipart upload policy.
type UploadConfig struct {
	ChunkSize         int64         `koanf:"chunk_size"`
	MaxRetries        int           `koanf:"max_retries"`
	InitialBackoff    time.Duration `koanf:"initial_backoff"`
	MaxBackoff        time.Duration `koanf:"max_backoff"`
	BackoffMultiplier float64       `koanf:"backoff_multiplier"`
	PartTimeout       time.Duration `koanf:"part_timeout"`
	Timeout           time.Duration `koanf:"timeout"`
	MaxFileSize       int64         `koanf:"max_file_size"`
	BodyReadTimeout   time.Duration `koanf:"body_read_timeout"`
	ProgressRetention time.Duration `koanf:"progress_retention"`
}

// StorageConfig holds S3 settings for presigned attachment uploads.
type StorageConfig struct {
	Enabled             bool          `koanf:"enabled"`
	Bucket              string        `koanf:"bucket"`
	Region              string        `koanf:"region"`
	Endpoint            string        `koanf:"endpoint"`
	UsePathStyle        bool          `koanf:"use_path_style"`
	PresignExpiry       time.Duration `koanf:"presign_expiry"`
	MaxAttachmentSize   int64         `koanf:"max_attachment_size"`
	AllowedContentTypes []string      `koanf:"allowed_content_types"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
