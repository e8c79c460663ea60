package spotify

import (
	"net/http"
	"testing"
	"time"
)

func TestAPIError(t *testing.T) {
	t.Run("ClassifyStatus", func(t *testing.T) {
		cases := []struct {
			status    int
			wantType  ErrorType
			retryable bool
		}{
			{429, ErrorRateLimit, true},
			{401, ErrorAuth, false},
			{403, ErrorAuth, false},
			{500, ErrorServer, true},
			{503, ErrorServer, true},
			{400, ErrorClient, false},
			{404, ErrorClient, false},
		}

		for _, c := range cases {
			gotType, gotRetry := classifyStatus(c.status)
			if gotType != c.wantType || gotRetry != c.retryable {
				t.Errorf("status %d: got (%s, %v), want (%s, %v)", c.status, gotType, gotRetry, c.wantType, c.retryable)
			}
		}
	})

	t.Run("Default User Message", func(t *testing.T) {
		err := newAPIError(ErrorNetwork, 0, "NETWORK_ERROR", "dial failed", true)
		if err.UserMessage != "Check your internet connection and try again" {
			t.Errorf("unexpected user message: %q", err.UserMessage)
		}

		unknown := newAPIError(ErrorType("weird"), 0, "X", "x", false)
		if unknown.UserMessage != "Something went wrong. Please try again" {
			t.Errorf("unexpected fallback message: %q", unknown.UserMessage)
		}
	})

	t.Run("User Retryable", func(t *testing.T) {
		rateLimit := newAPIError(ErrorRateLimit, 429, "HTTP_429", "slow down", true)
		if !rateLimit.UserRetryable() {
			t.Error("rate-limit errors should offer a retry")
		}

		auth := newAPIError(ErrorAuth, 401, "HTTP_401", "bad token", true)
		if auth.UserRetryable() {
			t.Error("auth errors must not offer a retry")
		}
	})

	t.Run("Retry Available At", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		err := newAPIError(ErrorRateLimit, 429, "HTTP_429", "slow down", true)
		err.RetryAfter = 30 * time.Second
		if got := err.RetryAvailableAt(now); !got.Equal(now.Add(30 * time.Second)) {
			t.Errorf("unexpected retry-at: %v", got)
		}

		plain := newAPIError(ErrorServer, 500, "HTTP_500", "boom", true)
		if !plain.RetryAvailableAt(now).IsZero() {
			t.Error("expected zero time without a retry-after hint")
		}
	})

	t.Run("Severity", func(t *testing.T) {
		if got := newAPIError(ErrorData, http.StatusOK, "X", "x", false).Severity(); got != "info" {
			t.Errorf("data errors should be info, got %s", got)
		}
		if got := newAPIError(ErrorTimeout, 0, "X", "x", true).Severity(); got != "warning" {
			t.Errorf("timeouts should be warning, got %s", got)
		}
		if got := newAPIError(ErrorAuth, 401, "X", "x", false).Severity(); got != "error" {
			t.Errorf("auth should be error, got %s", got)
		}
	})

	t.Run("Error String", func(t *testing.T) {
		err := newAPIError(ErrorServer, 503, "HTTP_503", "upstream down", true)
		want := "server_error (HTTP_503, status 503): upstream down"
		if err.Error() != want {
			t.Errorf("got %q, want %q", err.Error(), want)
		}
	})
}
