// Package backend is the outbound adapter for the contractor backend API.
// It forwards resource payloads untouched, drives the signed-document
// multipart upload endpoints, and turns non-2xx responses into
// *domain.UpstreamError values that keep the backend's status code.
package backend

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/contractor-portal/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// maxTextMessage bounds a plain-text error body used as the message.
const maxTextMessage = 512

// errorBody covers the error shapes the backend returns: {"message": ...},
// {"error": ...}, and RFC 7807 {"detail": ..., "errors": [...]}.
type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Detail  string          `json:"detail"`
	Errors  []errorDetail   `json:"errors"`
}

// errorDetail is a single field-level error.
type errorDetail struct {
	Location string `json:"location"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a non-2xx backend response to a
// *domain.UpstreamError carrying the same status code.
//
// The message is taken from the first non-empty of the JSON body's
// "message", "error" (string or {"message": ...}), and "detail" fields. A
// body that is not JSON is used as trimmed text. An empty body falls back
// to the status text.
func TranslateHTTPError(resp *http.Response) error {
	var body []byte
	if resp.Body != nil {
		body, _ = io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	}

	upErr := &domain.UpstreamError{
		Status: resp.StatusCode,
		Body:   body,
	}

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		upErr.Message = eb.message()
		upErr.Fields = toFields(eb.Errors)
	} else {
		upErr.Message = textMessage(body)
	}

	if upErr.Message == "" {
		upErr.Message = http.StatusText(resp.StatusCode)
	}
	return upErr
}

func (b *errorBody) message() string {
	if m := strings.TrimSpace(b.Message); m != "" {
		return m
	}
	if len(b.Error) > 0 {
		var s string
		if json.Unmarshal(b.Error, &s) == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(b.Error, &nested) == nil && strings.TrimSpace(nested.Message) != "" {
			return strings.TrimSpace(nested.Message)
		}
	}
	return strings.TrimSpace(b.Detail)
}

// textMessage returns a trimmed plain-text body, cut to maxTextMessage bytes.
func textMessage(body []byte) string {
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxTextMessage {
		msg = msg[:maxTextMessage]
	}
	return msg
}

// toFields converts field-level errors to a map, stripping the "body."
// location prefix to produce clean field names.
func toFields(details []errorDetail) map[string]string {
	if len(details) == 0 {
		return nil
	}
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := d.Field
		if field == "" {
			field = strings.TrimPrefix(d.Location, "body.")
		}
		if field == "" {
			continue
		}
		fields[field] = d.Message
	}
	return fields
}
