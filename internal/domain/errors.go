package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Common validation messages.
const (
	MsgRequired = "is required"
	MsgInvalid  = "is invalid"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UpstreamError is a non-2xx response from the backend API. Status is passed
// through to the caller unchanged; Message is the best human-readable text the
// backend offered. Fields holds per-field validation messages when the backend
// reported them. Body holds the raw response body, possibly truncated.
//
// UpstreamError unwraps to the sentinel matching its status so that callers
// can keep using errors.Is(err, ErrNotFound) and friends.
type UpstreamError struct {
	Status  int
	Message string
	Fields  map[string]string
	Body    []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return SentinelForStatus(e.Status)
}

// SentinelForStatus maps an HTTP status code to a domain sentinel. It returns
// nil for statuses with no domain meaning (e.g., 418).
func SentinelForStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrValidation
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusConflict:
		return ErrConflict
	case status >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return nil
	}
}
