package backend

import (
	"errors"
	"fmt"
	"net/http"
)

const fallbackMessage = "Request failed"

// RequestError is returned for any non-2xx backend response. Message is the
// server supplied text or "Request failed" when the server gave none.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
}

// DecodeError is returned when a successful response body cannot be decoded.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response of %s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is a 401 or 403 from the backend.
func IsUnauthorized(err error) bool {
	var re *RequestError
	if !errors.As(err, &re) {
		return false
	}
	return re.Status == http.StatusUnauthorized || re.Status == http.StatusForbidden
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == http.StatusNotFound
}

// UserMessage turns an error from this package into text fit for display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var re *RequestError
	if errors.As(err, &re) {
		return re.Message
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return "The server sent an invalid response. Please try again."
	}
	return "Unable to reach the server. Please try again."
}
