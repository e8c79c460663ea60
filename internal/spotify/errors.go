// package spotify implements the resilient client for the remote music
// catalog API.
//
// Endpoint shapes follow https://developer.spotify.com/documentation/web-api/reference/
package spotify

import (
	"fmt"
	"time"
)

// ErrorType classifies every failure the client can surface. Callers
// branch on the class, never on raw status codes.
type ErrorType string

const (
	ErrorNetwork   ErrorType = "network_error"
	ErrorAccess    ErrorType = "access_error"
	ErrorAuth      ErrorType = "auth_error"
	ErrorRateLimit ErrorType = "rate_limit"
	ErrorTimeout   ErrorType = "timeout"
	ErrorServer    ErrorType = "server_error"
	ErrorClient    ErrorType = "client_error"
	ErrorData      ErrorType = "data_error"
)

// APIError is the classified error surfaced past the client boundary.
type APIError struct {
	Type        ErrorType      `json:"type"`
	Status      int            `json:"status"`
	Code        string         `json:"code"`
	Message     string         `json:"message"`
	UserMessage string         `json:"user_message"`
	Retryable   bool           `json:"retryable"`
	RetryAfter  time.Duration  `json:"retry_after,omitempty"`
	Context     map[string]any `json:"context,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s, status %d): %s", e.Type, e.Code, e.Status, e.Message)
}

// UserRetryable reports whether offering an in-UI retry makes sense.
// Authentication failures need reconfiguration, not retries.
func (e *APIError) UserRetryable() bool {
	return e.Retryable && e.Type != ErrorAuth
}

// RetryAvailableAt computes when a rate-limited request may be retried.
// Zero time when the error carries no retry-after hint.
func (e *APIError) RetryAvailableAt(now time.Time) time.Time {
	if e.Type != ErrorRateLimit || e.RetryAfter <= 0 {
		return time.Time{}
	}
	return now.Add(e.RetryAfter)
}

// Severity returns the UI severity hint for the error class.
func (e *APIError) Severity() string {
	switch e.Type {
	case ErrorData:
		return "info"
	case ErrorRateLimit, ErrorTimeout, ErrorNetwork:
		return "warning"
	default:
		return "error"
	}
}

// userMessages is the fixed class-to-message table. An explicit
// UserMessage on the error overrides it.
var userMessages = map[ErrorType]string{
	ErrorNetwork:   "Check your internet connection and try again",
	ErrorAccess:    "Unable to access music service. Please try again",
	ErrorAuth:      "Music service temporarily unavailable",
	ErrorRateLimit: "Too many requests. Please wait a moment and try again",
	ErrorTimeout:   "Request timed out. Please try again",
	ErrorServer:    "Music service is temporarily down. Please try again later",
	ErrorClient:    "Invalid request. Please refresh the page",
	ErrorData:      "Unable to load music. Showing cached content",
}

func defaultUserMessage(t ErrorType) string {
	if msg, ok := userMessages[t]; ok {
		return msg
	}
	return "Something went wrong. Please try again"
}

// newAPIError builds an APIError, filling the user message from the fixed
// mapping when none is supplied.
func newAPIError(t ErrorType, status int, code, message string, retryable bool) *APIError {
	return &APIError{
		Type:        t,
		Status:      status,
		Code:        code,
		Message:     message,
		UserMessage: defaultUserMessage(t),
		Retryable:   retryable,
	}
}

// classifyStatus maps an HTTP status to an error class and retryability.
func classifyStatus(status int) (ErrorType, bool) {
	switch {
	case status == 429:
		return ErrorRateLimit, true
	case status == 401 || status == 403:
		return ErrorAuth, false
	case status >= 500:
		return ErrorServer, true
	case status >= 400:
		return ErrorClient, false
	default:
		return ErrorNetwork, true
	}
}
