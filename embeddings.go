package vectorize

import (
	"context"
	"fmt"
	"net/http"
)

// CreateEmbeddings calls POST /embeddings, the service's OpenAI-compatible
// endpoint. Input accepts a single string or a []string; the response
// mirrors OpenAI's embeddings list shape, so off-the-shelf OpenAI clients
// pointed at the service's base URL interoperate with it.
func (c *Client) CreateEmbeddings(ctx context.Context, req EmbeddingsRequest) (*EmbeddingsResponse, error) {
	switch input := req.Input.(type) {
	case string:
		if input == "" {
			return nil, fmt.Errorf("input is required: %w", ErrValidation)
		}
	case []string:
		if len(input) == 0 {
			return nil, fmt.Errorf("input is required: %w", ErrValidation)
		}
	default:
		return nil, fmt.Errorf("input must be a string or []string: %w", ErrValidation)
	}
	if req.Model == "" {
		return nil, fmt.Errorf("model is required: %w", ErrValidation)
	}

	var res EmbeddingsResponse
	if err := c.do(ctx, http.MethodPost, "/embeddings", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
