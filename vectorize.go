package vectorize

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// MaxRecommendedParallel is the recommended upper limit for concurrent
// API requests. Higher values may trigger rate limiting.
const MaxRecommendedParallel = 10

// Vectorizer converts a single text to an embedding vector.
// *Client implements this; tests and callers can substitute fakes.
type Vectorizer interface {
	Vectorize(ctx context.Context, req VectorizeRequest) (*VectorizeResult, error)
}

// Compile-time interface compliance check.
var _ Vectorizer = (*Client)(nil)

// Vectorize embeds a single text via POST /vectorize.
// Long inputs are chunked server-side per the request's chunking fields.
func (c *Client) Vectorize(ctx context.Context, req VectorizeRequest) (*VectorizeResult, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("text is required: %w", ErrValidation)
	}

	var res VectorizeResult
	if err := c.do(ctx, http.MethodPost, "/vectorize", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// VectorizeBatch embeds multiple texts in one call via POST /vectorize-batch.
// The result's vectors preserve the order of the request's texts.
func (c *Client) VectorizeBatch(ctx context.Context, req VectorizeBatchRequest) (*VectorizeBatchResult, error) {
	if len(req.Texts) == 0 {
		return nil, fmt.Errorf("texts are required: %w", ErrValidation)
	}

	var res VectorizeBatchResult
	if err := c.do(ctx, http.MethodPost, "/vectorize-batch", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// VectorizeOptions are the per-text settings VectorizeAll applies to
// every request.
type VectorizeOptions struct {
	Model        string
	ChunkSize    int
	ChunkOverlap int
}

// VectorizeAll embeds multiple texts in parallel, one request per text.
// Results are returned in the same order as the input texts. If any text
// fails, the whole operation is aborted and the error is returned.
// maxParallel limits concurrent API requests (1-MaxRecommendedParallel
// recommended).
//
// Unlike VectorizeBatch this keeps per-text token and chunk accounting;
// use the batch endpoint when only the vectors matter.
func VectorizeAll(
	ctx context.Context,
	v Vectorizer,
	texts []string,
	opts VectorizeOptions,
	maxParallel int,
) ([]VectorizeResult, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	if maxParallel < 1 {
		maxParallel = 1
	}

	results := make([]VectorizeResult, len(texts))
	// Semaphore channel for concurrency control.
	sem := make(chan struct{}, maxParallel)

	g, ctx := errgroup.WithContext(ctx)

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			// Acquire semaphore slot.
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-sem }()

			res, err := v.Vectorize(ctx, VectorizeRequest{
				Text:         text,
				Model:        opts.Model,
				ChunkSize:    opts.ChunkSize,
				ChunkOverlap: opts.ChunkOverlap,
			})
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
