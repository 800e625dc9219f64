package vectorize

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// usageDateLayout is the wire format of the usage period bounds.
const usageDateLayout = "2006-01-02"

// Usage returns account usage statistics via GET /usage.
// from and to bound the reporting period (YYYY-MM-DD, inclusive); either
// may be empty to leave that side open. Malformed dates are rejected
// before any HTTP call.
func (c *Client) Usage(ctx context.Context, from, to string) (*UsageStats, error) {
	query := url.Values{}
	for _, bound := range []struct{ name, value string }{
		{"from", from},
		{"to", to},
	} {
		if bound.value == "" {
			continue
		}
		if _, err := time.Parse(usageDateLayout, bound.value); err != nil {
			return nil, fmt.Errorf("invalid %s date %q (want YYYY-MM-DD): %w",
				bound.name, bound.value, ErrValidation)
		}
		query.Set(bound.name, bound.value)
	}

	var res UsageStats
	if err := c.do(ctx, http.MethodGet, "/usage", query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
