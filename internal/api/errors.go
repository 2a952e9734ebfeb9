package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated is returned when an identity probe receives a 401
// while the client is in a public context. It signals an expected
// "no identity" state, not a failure.
var ErrNotAuthenticated = errors.New("not authenticated")

// errorResponse represents an error body returned by the API
type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError is the normalized error for any non-2xx API response
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized checks if the error is an unauthorized error
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound checks if the error is a not found error
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// normalizeError builds an APIError from a non-2xx response body, falling
// back to a generic message when the body is not the expected JSON shape.
func normalizeError(statusCode int, body []byte) *APIError {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{
			StatusCode: statusCode,
			Code:       errResp.Code,
			Message:    errResp.Message,
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("request failed with status %d", statusCode),
	}
}
