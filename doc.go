// Package vectorize is a client for the Vectorize text-embedding API.
//
// The client wraps the service's HTTP surface (single and batch
// vectorization, similarity scoring, model listing, usage reporting, and
// an OpenAI-compatible embeddings endpoint) behind typed operations. Each
// operation executes with bounded retry and exponential backoff, and
// failures are classified into sentinel errors that callers match with
// errors.Is:
//
//	res, err := client.Vectorize(ctx, vectorize.VectorizeRequest{Text: "hello"})
//	if errors.Is(err, vectorize.ErrQuotaExceeded) {
//	    // switch to a cheaper model, stop retrying, etc.
//	}
//
// The full classification (kind, HTTP status, retry-after hint, raw
// details) is available through errors.As with *APIError.
package vectorize
