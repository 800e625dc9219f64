package vectorize

import (
	"context"
	"net/http"
)

// ListModels returns the embedding models offered by the service
// via GET /models.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var res modelsResponse
	if err := c.do(ctx, http.MethodGet, "/models", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Models, nil
}
