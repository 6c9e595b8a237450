package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// AppError is a failure reported by the backend itself: either an {"error": ...} body
// or a non-2xx status.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
}

// appError inspects a response and returns the application error it carries, if any.
// An object body with a non-null "error" member is an error whatever the status.
func appError(status int, body []byte) *AppError {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err == nil {
			if raw, ok := fields["error"]; ok && string(raw) != "null" {
				var msg string
				if err := json.Unmarshal(raw, &msg); err != nil {
					msg = string(raw)
				}
				if msg == "" {
					msg = http.StatusText(status)
				}
				return &AppError{Status: status, Message: msg}
			}
		}
	}

	if status < 200 || status > 299 {
		msg := http.StatusText(status)
		if msg == "" {
			msg = "unexpected status"
		}
		return &AppError{Status: status, Message: msg}
	}
	return nil
}
