package vectorize

import (
	"net/http"
	"time"
)

// Default client configuration.
const (
	// DefaultBaseURL is the production endpoint of the Vectorize API.
	DefaultBaseURL = "https://api.vectorize.dev"

	// DefaultTimeout bounds each HTTP attempt (not the whole retry loop).
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is the total number of attempts per operation.
	DefaultMaxRetries = 3
)

// Backoff defaults. Delays double from the base: 1s, 2s, 4s, ...
const (
	defaultBaseDelay = 1 * time.Second
	defaultMaxDelay  = 30 * time.Second
)

// httpDoer abstracts the HTTP client for testing.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the Vectorize API. It is immutable after construction and
// safe for concurrent use: each operation owns its own request/response
// lifecycle and shares only the read-only configuration.
type Client struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	maxRetries int
	headers    map[string]string
	httpClient httpDoer
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint. Trailing slashes are stripped.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		for len(u) > 0 && u[len(u)-1] == '/' {
			u = u[:len(u)-1]
		}
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
// Ignored when a custom HTTP client is supplied.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxRetries sets the total number of attempts per operation.
// The minimum is 1 (a single attempt, no backoff).
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		if n >= 1 {
			c.maxRetries = n
		}
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHeaders adds a set of headers sent with every request.
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithHTTPClient sets a custom HTTP client (for testing or custom
// transports). The caller is then responsible for per-attempt timeouts.
func WithHTTPClient(hc httpDoer) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetryDelays sets the base and max delays for exponential backoff.
func WithRetryDelays(base, max time.Duration) ClientOption {
	return func(c *Client) {
		if base > 0 {
			c.baseDelay = base
		}
		if max > 0 {
			c.maxDelay = max
		}
	}
}

// NewClient creates a Client for the given API key.
// The key is required; everything else has documented defaults.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
		headers:    make(map[string]string),
		baseDelay:  defaultBaseDelay,
		maxDelay:   defaultMaxDelay,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c, nil
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}
