package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Backend.validate("backend"),
		c.ObjectStore.validate("object_store"),
		c.Upload.validate(),
		c.Storage.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadHeaderTimeout < 0 {
		errs = append(errs, errors.New("server.read_header_timeout must not be negative"))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(section string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", section))
	} else if u, err := url.Parse(cl.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must be an absolute URL, got %q", section, cl.BaseURL))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", section))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", section, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", section, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			section, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", section))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled", section))
	}

	return errors.Join(errs...)
}

func (u *UploadConfig) validate() error {
	var errs []error

	if u.ChunkSize < MinChunkSize {
		errs = append(errs, fmt.Errorf("upload.chunk_size must be >= %d, got %d", MinChunkSize, u.ChunkSize))
	}
	if u.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("upload.max_retries must not be negative, got %d", u.MaxRetries))
	}
	if u.InitialBackoff <= 0 {
		errs = append(errs, errors.New("upload.initial_backoff must be positive"))
	}
	if u.MaxBackoff < u.InitialBackoff {
		errs = append(errs, errors.New("upload.max_backoff must be >= upload.initial_backoff"))
	}
	if u.BackoffMultiplier < 1 {
		errs = append(errs, fmt.Errorf("upload.backoff_multiplier must be >= 1, got %f", u.BackoffMultiplier))
	}
	if u.PartTimeout <= 0 {
		errs = append(errs, errors.New("upload.part_timeout must be positive"))
	}
	if u.Timeout <= 0 {
		errs = append(errs, errors.New("upload.timeout must be positive"))
	}
	if u.MaxFileSize <= 0 {
		errs = append(errs, errors.New("upload.max_file_size must be positive"))
	}
	if u.BodyReadTimeout < 0 {
		errs = append(errs, errors.New("upload.body_read_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	if !s.Enabled {
		return nil
	}

	var errs []error

	if s.Bucket == "" {
		errs = append(errs, errors.New("storage.bucket must not be empty when storage is enabled"))
	}
	if s.Region == "" {
		errs = append(errs, errors.New("storage.region must not be empty when storage is enabled"))
	}
	if s.PresignExpiry <= 0 {
		errs = append(errs, errors.New("storage.presign_expiry must be positive"))
	}
	if s.MaxAttachmentSize <= 0 {
		errs = append(errs, errors.New("storage.max_attachment_size must be positive"))
	}
	if len(s.AllowedContentTypes) == 0 {
		errs = append(errs, errors.New("storage.allowed_content_types must not be empty"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
