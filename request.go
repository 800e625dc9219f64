package vectorize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// do executes one API operation: it marshals the payload once, issues
// attempts through the retry loop, and decodes the final 2xx body into
// out. Exactly one of a decoded result or a classified error is produced.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = b
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	cfg := RetryConfig{
		MaxRetries: c.maxRetries - 1,
		BaseDelay:  c.baseDelay,
		MaxDelay:   c.maxDelay,
	}

	respBody, err := RetryWithBackoff(ctx, cfg, func() ([]byte, error) {
		return c.attempt(ctx, method, u, body)
	}, IsRetryable)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// attempt issues a single HTTP request. Each attempt builds a fresh
// request; no state is shared across attempts.
func (c *Client) attempt(ctx context.Context, method, u string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Caller cancellation is not an API failure; surface it as-is.
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, classifyTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, classifyResponse(resp.StatusCode, resp.Header, respBody)
	}

	return respBody, nil
}
