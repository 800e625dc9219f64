package vectorize

// Wire types for the Vectorize API. Request bodies use the service's
// snake_case field names; responses use its camelCase names.

// VectorizeRequest is the body of POST /vectorize.
// Text is required. ChunkSize and ChunkOverlap control server-side
// chunking of long inputs; zero values let the service decide.
type VectorizeRequest struct {
	Text         string `json:"text"`
	Model        string `json:"model,omitempty"`
	ChunkSize    int    `json:"chunk_size,omitempty"`
	ChunkOverlap int    `json:"chunk_overlap,omitempty"`
}

// VectorizeResult is the response of POST /vectorize.
type VectorizeResult struct {
	Vector    []float32 `json:"vector"`
	Dimension int       `json:"dimension"`
	Model     string    `json:"model"`
	Tokens    int       `json:"tokens"`

	// ChunkCount is the number of chunks the input was split into
	// server-side, 0 when the input fit in a single chunk.
	ChunkCount int `json:"chunkCount,omitempty"`
}

// VectorizeBatchRequest is the body of POST /vectorize-batch.
type VectorizeBatchRequest struct {
	Texts        []string `json:"texts"`
	Model        string   `json:"model,omitempty"`
	ChunkSize    int      `json:"chunk_size,omitempty"`
	ChunkOverlap int      `json:"chunk_overlap,omitempty"`
}

// VectorizeBatchResult is the response of POST /vectorize-batch.
// Vectors preserve the order of the request's texts.
type VectorizeBatchResult struct {
	Vectors     [][]float32 `json:"vectors"`
	Dimension   int         `json:"dimension"`
	Model       string      `json:"model"`
	Count       int         `json:"count"`
	TotalTokens int         `json:"totalTokens"`
}

// SimilarityRequest is the body of POST /similarity.
type SimilarityRequest struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
	Model string `json:"model,omitempty"`
}

// SimilarityResult is the response of POST /similarity.
// Similarity is the cosine similarity of the two embeddings.
type SimilarityResult struct {
	Similarity float64 `json:"similarity"`
	Model      string  `json:"model"`
}

// ModelInfo describes an embedding model offered by the service.
type ModelInfo struct {
	Name            string  `json:"name"`
	Dimension       int     `json:"dimension"`
	MaxInputTokens  int     `json:"maxInputTokens,omitempty"`
	PricePerMillion float64 `json:"pricePerMillionTokens,omitempty"`
	Description     string  `json:"description,omitempty"`
}

// modelsResponse is the envelope of GET /models.
type modelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// UsageStats is the response of GET /usage.
type UsageStats struct {
	TotalRequests int          `json:"totalRequests"`
	TotalTokens   int          `json:"totalTokens"`
	Daily         []DailyUsage `json:"daily,omitempty"`
	Period        *UsagePeriod `json:"period,omitempty"`
}

// DailyUsage is one day of the usage breakdown.
type DailyUsage struct {
	Date     string `json:"date"`
	Requests int    `json:"requests"`
	Tokens   int    `json:"tokens"`
}

// UsagePeriod is the reporting window echoed back by the service.
type UsagePeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// EmbeddingsRequest is the body of POST /embeddings, the OpenAI-compatible
// endpoint. Input accepts a string or a []string, mirroring OpenAI's API.
type EmbeddingsRequest struct {
	Input any    `json:"input"`
	Model string `json:"model"`
	User  string `json:"user,omitempty"`
}

// EmbeddingsResponse is the OpenAI-compatible response of POST /embeddings.
type EmbeddingsResponse struct {
	Object string          `json:"object"`
	Data   []Embedding     `json:"data"`
	Model  string          `json:"model"`
	Usage  EmbeddingsUsage `json:"usage"`
}

// Embedding is one vector of an OpenAI-compatible response.
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// EmbeddingsUsage is the token accounting of an OpenAI-compatible response.
type EmbeddingsUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}
