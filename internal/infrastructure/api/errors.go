package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"taskboard/internal/application/dto"
)

// ErrNetwork matches failures where no HTTP response was received
var ErrNetwork = errors.New("network error")

// Error is a non-2xx response from the backend
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func newError(status int, body []byte) *Error {
	msg := http.StatusText(status)

	var payload dto.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			msg = payload.Message
		case payload.Error != "":
			msg = payload.Error
		}
	} else if text := strings.TrimSpace(string(body)); text != "" && len(text) < 200 {
		msg = text
	}

	return &Error{StatusCode: status, Message: msg}
}

type networkError struct {
	op  string
	err error
}

func (e *networkError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *networkError) Unwrap() []error {
	return []error{ErrNetwork, e.err}
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
