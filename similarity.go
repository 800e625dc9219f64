package vectorize

import (
	"context"
	"fmt"
	"net/http"
)

// Similarity computes the cosine similarity of two texts via POST /similarity.
func (c *Client) Similarity(ctx context.Context, req SimilarityRequest) (*SimilarityResult, error) {
	if req.Text1 == "" || req.Text2 == "" {
		return nil, fmt.Errorf("both texts are required: %w", ErrValidation)
	}

	var res SimilarityResult
	if err := c.do(ctx, http.MethodPost, "/similarity", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
