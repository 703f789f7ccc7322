package llm

import (
	"errors"
	"fmt"
)

// Upstream failures. None of them are retried; the chat service turns every
// one of them into a fallback reply.
var (
	// ErrInvalidCredential is returned when the provider answers 401.
	ErrInvalidCredential = errors.New("invalid API key")

	// ErrRateLimited is returned when the provider answers 429.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrMalformedResponse is returned when a 2xx body carries no completion text.
	ErrMalformedResponse = errors.New("invalid response format from provider")
)

// UpstreamError is any other provider failure. StatusCode is 0 when the
// request never produced an HTTP response (DNS, connection reset, cancellation).
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Message)
	}
	return fmt.Sprintf("upstream error: %d - %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
