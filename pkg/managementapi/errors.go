package managementapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of an error response is kept in messages.
const maxErrorBody = 4096

// APIError represents an error response from the Management API, or a
// failure to reach it (StatusCode 0).
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	RequestID  string

	cause error
}

func (e *APIError) Error() string {
	if e.RequestID != "" && e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d, request %s)", e.Message, e.StatusCode, e.RequestID)
	}
	return e.Message
}

// Unwrap returns the transport error for connection failures.
func (e *APIError) Unwrap() error {
	return e.cause
}

// IsUnauthorized reports whether err is a 401 or 403 response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// IsConnectionError reports whether the service could not be reached.
func IsConnectionError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode == "connection_error"
}

// parseError parses an error response from the API.
func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var requestID string
	if resp.Request != nil {
		requestID = resp.Request.Header.Get(RequestIDHeader)
	}

	var errResp struct {
		Error     string `json:"error"`
		Message   string `json:"message"`
		Technical string `json:"technicalCode"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		code := errResp.Technical
		if code == "" {
			code = errResp.Error
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			ErrorCode:  code,
			Message:    errResp.Message,
			RequestID:  requestID,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		ErrorCode:  "unknown_error",
		Message:    fmt.Sprintf("server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		RequestID:  requestID,
	}
}

// FormatConnectionError returns a user-friendly error message for connection
// failures. The full message of err is kept so wrapping context survives.
func FormatConnectionError(err error) string {
	if IsConnectionError(err) {
		return err.Error() + `

Suggestions:
  • Check the Management API URL with: apimctl config
  • Verify the service is reachable from this machine`
	}
	return err.Error()
}

// FormatAuthError returns a user-friendly error message for rejected
// credentials.
func FormatAuthError(err error) string {
	if IsUnauthorized(err) {
		return err.Error() + `

Suggestions:
  • Check the username and password with: apimctl config
  • Verify the user may manage APIs on this environment`
	}
	return err.Error()
}
