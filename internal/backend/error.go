package backend

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is a non-2xx backend response. Message carries the backend's own
// wording from its {"success": false, "message": "..."} envelope when it
// sent one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: %d", e.Status)
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeError(status int, body []byte) *Error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &Error{Status: status, Message: env.Message}
	}
	return &Error{Status: status}
}

// StatusOf returns the HTTP status behind err, or 0 when err did not come
// from a backend response (connectivity failures, decode errors).
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// MessageOr returns the backend-supplied message behind err, falling back to
// fallback when the backend sent none or err is not a backend response.
func MessageOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
