package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrMalformedResponse marks upstream payloads that cannot be decoded into a table.
var ErrMalformedResponse = errors.New("malformed provider response")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusError reports a non-success HTTP status from an upstream endpoint.
type StatusError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Provider, e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Provider, e.Endpoint, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
