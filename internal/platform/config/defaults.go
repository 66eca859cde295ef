package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	mebibyte = 1 << 20

	// MinChunkSize is the smallest part size the object store accepts for
	// every part but the last.
	MinChunkSize = 5 * mebibyte

	defaultUploadMaxRetries    = 3
	defaultUploadMultiplier    = 2.0
	defaultUploadMaxFileSize   = 100 * mebibyte
	defaultMaxAttachmentSize   = 25 * mebibyte
	defaultObjectStoreFailures = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                "0.0.0.0",
		"server.port":                defaultServerPort,
		"server.read_header_timeout": "10s",
		"server.read_timeout":        "60s",
		"server.write_timeout":       "60s",
		"server.idle_timeout":        "120s",
		"server.request_timeout":     "30s",

		"log.level":  "info",
		"log.format": "json",

		"backend.base_url":                        "http://localhost:8081",
		"backend.timeout":                         "30s",
		"backend.forward_auth":                    true,
		"backend.retry.max_attempts":              defaultRetryMaxAttempts,
		"backend.retry.initial_interval":          "100ms",
		"backend.retry.max_interval":              "10s",
		"backend.retry.multiplier":                defaultRetryMultiplier,
		"backend.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"backend.circuit_breaker.timeout":         "30s",
		"backend.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"backend.rate_limit.requests_per_second":  0,
		"backend.rate_limit.burst_size":           0,

		// Presigned URLs are absolute, so base_url only names the peer in
		// traces. Retries are owned by the uploader.
		"object_store.base_url":                        "https://s3.amazonaws.com",
		"object_store.timeout":                         "5m",
		"object_store.forward_auth":                    false,
		"object_store.retry.max_attempts":              1,
		"object_store.retry.initial_interval":          "1s",
		"object_store.retry.max_interval":              "4s",
		"object_store.retry.multiplier":                defaultRetryMultiplier,
		"object_store.circuit_breaker.max_failures":    defaultObjectStoreFailures,
		"object_store.circuit_breaker.timeout":         "30s",
		"object_store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"upload.chunk_size":         MinChunkSize,
		"upload.max_retries":        defaultUploadMaxRetries,
		"upload.initial_backoff":    "1s",
		"upload.max_backoff":        "4s",
		"upload.backoff_multiplier": defaultUploadMultiplier,
		"upload.part_timeout":       "5m",
		"upload.timeout":            "30m",
		"upload.max_file_size":      defaultUploadMaxFileSize,
		"upload.body_read_timeout":  "10m",
		"upload.progress_retention": "1h",

		"storage.enabled":             false,
		"storage.region":              "us-east-1",
		"storage.presign_expiry":      "15m",
		"storage.max_attachment_size": defaultMaxAttachmentSize,
		"storage.allowed_content_types": []string{
			"application/pdf",
			"image/png",
			"image/jpeg",
			"image/heic",
		},

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "contractor-portal",
	}
}
