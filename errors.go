package vectorize

import (
	"errors"
	"fmt"
)

// Kind is the stable code string identifying a classified API failure.
type Kind string

// Failure kinds produced by the classifier.
const (
	KindAuthentication Kind = "authentication"
	KindQuotaExceeded  Kind = "quota_exceeded"
	KindValidation     Kind = "validation"
	KindRateLimit      Kind = "rate_limit"
	KindServer         Kind = "server"
	KindNetwork        Kind = "network"
	KindTimeout        Kind = "timeout"
	KindUnclassified   Kind = "unclassified"
)

// Sentinel errors for API interaction failures.
//
// Every classified failure unwraps to one of these, so callers check with
// errors.Is(err, vectorize.ErrRateLimit) etc. The full classification is
// available through errors.As with *APIError.
var (
	// ErrAuthFailed indicates API authentication failed (invalid key). Not retried.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrQuotaExceeded indicates the API quota was exceeded (billing issue). Not retried.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrValidation indicates the request was rejected as invalid. Not retried.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimit indicates the API rate limit was exceeded (temporary, retryable).
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrServer indicates a server-side failure (5xx, retryable).
	ErrServer = errors.New("server error")

	// ErrNetwork indicates no HTTP response was received (retryable).
	ErrNetwork = errors.New("network error")

	// ErrTimeout indicates a request timed out (retryable).
	ErrTimeout = errors.New("request timeout")
)

// ErrMissingAPIKey indicates a client was constructed without an API key.
var ErrMissingAPIKey = errors.New("api key is required")

// APIError is a classified API failure.
//
// It is created once per failed attempt sequence and is immutable after
// classification. Error() renders a human-readable message; Unwrap()
// returns the sentinel for the error's kind.
type APIError struct {
	// Kind is the failure classification.
	Kind Kind

	// Message is extracted from the response body when possible,
	// otherwise "Unknown error" or the transport error text.
	Message string

	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	// RetryAfter is the Retry-After hint in seconds for rate-limited
	// requests, 0 when absent.
	RetryAfter int

	// Details holds the decoded response body when present. Unparseable
	// bodies are kept verbatim under the "raw" key.
	Details map[string]any
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the sentinel error for the error's kind, so wrapped
// APIErrors match errors.Is checks. Unclassified failures have no sentinel.
func (e *APIError) Unwrap() error {
	switch e.Kind {
	case KindAuthentication:
		return ErrAuthFailed
	case KindQuotaExceeded:
		return ErrQuotaExceeded
	case KindValidation:
		return ErrValidation
	case KindRateLimit:
		return ErrRateLimit
	case KindServer:
		return ErrServer
	case KindNetwork:
		return ErrNetwork
	case KindTimeout:
		return ErrTimeout
	}
	return nil
}
