// Package domain contains shared domain types used across the sub-packages.
// Resource kinds and payloads live in domain/resource; multipart upload
// planning and progress live in domain/upload. This root package holds the
// sentinel errors, ValidationError, and UpstreamError that every layer uses
// to classify failures.
package domain
