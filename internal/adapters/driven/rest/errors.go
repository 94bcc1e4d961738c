package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// maxErrorBody bounds how much of an error response body is read for
// the message.
const maxErrorBody = 4 << 10

// APIError represents a non-success response from the Trust Circle API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap lets errors.Is match APIError against domain.ErrRemote.
func (e *APIError) Unwrap() error {
	return domain.ErrRemote
}

// newAPIError builds an APIError from a non-2xx response, pulling the
// message from the standard {success, message} envelope when present.
func newAPIError(resp *http.Response) error {
	message := resp.Status

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(body) > 0 {
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
			message = envelope.Message
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		URL:        resp.Request.URL.String(),
	}
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsNotFound checks if the error indicates the resource does not exist
// server-side.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}
