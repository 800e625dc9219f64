package vectorize

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
)

// unknownErrorMessage is the fallback when no message can be extracted
// from a response body.
const unknownErrorMessage = "Unknown error"

// classifyResponse maps an HTTP error response to an APIError.
// Pure function, total over all inputs: malformed bodies never fail
// classification, they just fall back to unknownErrorMessage.
func classifyResponse(status int, header http.Header, body []byte) *APIError {
	details := decodeDetails(body)
	e := &APIError{
		Message: extractMessage(details),
		Status:  status,
		Details: details,
	}

	switch status {
	case http.StatusUnauthorized:
		e.Kind = KindAuthentication
	case http.StatusPaymentRequired:
		e.Kind = KindQuotaExceeded
	case http.StatusBadRequest:
		e.Kind = KindValidation
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimit
		if secs, err := strconv.Atoi(header.Get("Retry-After")); err == nil && secs >= 0 {
			e.RetryAfter = secs
		}
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		e.Kind = KindServer
	default:
		e.Kind = KindUnclassified
	}

	return e
}

// classifyTransport maps a transport-level failure (no HTTP response
// received) to an APIError. Timeouts classify as KindTimeout, everything
// else as KindNetwork; both are retryable.
func classifyTransport(err error) *APIError {
	e := &APIError{Message: err.Error()}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		e.Kind = KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		e.Kind = KindTimeout
	default:
		// Connection refused, DNS failures, closed connections: no
		// response was received, so the attempt is safe to repeat.
		e.Kind = KindNetwork
	}

	return e
}

// decodeDetails decodes a JSON error body. Non-JSON bodies are preserved
// verbatim under the "raw" key; empty bodies yield nil.
func decodeDetails(body []byte) map[string]any {
	if len(body) == 0 {
		return nil
	}
	var details map[string]any
	if err := json.Unmarshal(body, &details); err != nil {
		return map[string]any{"raw": string(body)}
	}
	return details
}

// extractMessage pulls a human-readable message from a decoded error body.
// Preference order: "message" field, then "error" field (string or object
// with a nested "message"), then unknownErrorMessage.
func extractMessage(details map[string]any) string {
	if msg, ok := details["message"].(string); ok && msg != "" {
		return msg
	}
	switch v := details["error"].(type) {
	case string:
		if v != "" {
			return v
		}
	case map[string]any:
		if msg, ok := v["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return unknownErrorMessage
}

// IsRetryable reports whether err represents a transient failure the
// executor may retry. Authentication, quota, and validation failures are
// terminal: re-attempting cannot resolve them.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Kind {
	case KindRateLimit, KindServer, KindNetwork, KindTimeout, KindUnclassified:
		return true
	}
	return false
}
