package vectorize

import "time"

// Exports for testing. These allow black-box tests to reach internal
// logic without widening the public API.

// Function exports for unit testing the classifier.
var (
	ClassifyResponse  = classifyResponse
	ClassifyTransport = classifyTransport
	ExtractMessage    = extractMessage
	DecodeDetails     = decodeDetails
)

// Timeout exports the per-attempt timeout for testing.
func (c *Client) Timeout() time.Duration { return c.timeout }

// MaxRetries exports the attempt budget for testing.
func (c *Client) MaxRetries() int { return c.maxRetries }

// Headers exports the extra header map for testing.
func (c *Client) Headers() map[string]string { return c.headers }
