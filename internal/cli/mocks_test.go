package cli

import (
	"context"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	vectorize "github.com/alnah/go-vectorize"
	"github.com/alnah/go-vectorize/internal/config"
)

// ---------------------------------------------------------------------------
// Mock ConfigLoader
// ---------------------------------------------------------------------------

type mockConfigLoader struct {
	LoadFunc func() (config.Config, error)

	mu        sync.Mutex
	loadCalls int
}

func (m *mockConfigLoader) Load() (config.Config, error) {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return config.Config{}, nil
}

func (m *mockConfigLoader) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

// ---------------------------------------------------------------------------
// Mock ClientFactory + APIClient
// ---------------------------------------------------------------------------

type mockClientFactory struct {
	NewClientFunc func(apiKey, baseURL string) (APIClient, error)

	mu             sync.Mutex
	newClientCalls []clientCall
	mockClient     *mockAPIClient
}

type clientCall struct {
	APIKey  string
	BaseURL string
}

func (m *mockClientFactory) NewClient(apiKey, baseURL string) (APIClient, error) {
	m.mu.Lock()
	m.newClientCalls = append(m.newClientCalls, clientCall{APIKey: apiKey, BaseURL: baseURL})
	m.mu.Unlock()

	if m.NewClientFunc != nil {
		return m.NewClientFunc(apiKey, baseURL)
	}
	if m.mockClient != nil {
		return m.mockClient, nil
	}
	return &mockAPIClient{}, nil
}

func (m *mockClientFactory) NewClientCalls() []clientCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]clientCall(nil), m.newClientCalls...)
}

type mockAPIClient struct {
	VectorizeFunc      func(ctx context.Context, req vectorize.VectorizeRequest) (*vectorize.VectorizeResult, error)
	VectorizeBatchFunc func(ctx context.Context, req vectorize.VectorizeBatchRequest) (*vectorize.VectorizeBatchResult, error)
	SimilarityFunc     func(ctx context.Context, req vectorize.SimilarityRequest) (*vectorize.SimilarityResult, error)
	ListModelsFunc     func(ctx context.Context) ([]vectorize.ModelInfo, error)
	UsageFunc          func(ctx context.Context, from, to string) (*vectorize.UsageStats, error)

	mu              sync.Mutex
	vectorizeCalls  []vectorize.VectorizeRequest
	batchCalls      []vectorize.VectorizeBatchRequest
	similarityCalls []vectorize.SimilarityRequest
	usageCalls      []usageCall
	listModelsCalls int
}

type usageCall struct {
	From string
	To   string
}

func (m *mockAPIClient) Vectorize(ctx context.Context, req vectorize.VectorizeRequest) (*vectorize.VectorizeResult, error) {
	m.mu.Lock()
	m.vectorizeCalls = append(m.vectorizeCalls, req)
	m.mu.Unlock()

	if m.VectorizeFunc != nil {
		return m.VectorizeFunc(ctx, req)
	}
	return &vectorize.VectorizeResult{
		Vector:    []float32{0.1, 0.2},
		Dimension: 2,
		Model:     req.Model,
		Tokens:    len(req.Text),
	}, nil
}

func (m *mockAPIClient) VectorizeBatch(ctx context.Context, req vectorize.VectorizeBatchRequest) (*vectorize.VectorizeBatchResult, error) {
	m.mu.Lock()
	m.batchCalls = append(m.batchCalls, req)
	m.mu.Unlock()

	if m.VectorizeBatchFunc != nil {
		return m.VectorizeBatchFunc(ctx, req)
	}
	vectors := make([][]float32, len(req.Texts))
	for i := range vectors {
		vectors[i] = []float32{0.1}
	}
	return &vectorize.VectorizeBatchResult{
		Vectors:   vectors,
		Dimension: 1,
		Model:     req.Model,
		Count:     len(req.Texts),
	}, nil
}

func (m *mockAPIClient) Similarity(ctx context.Context, req vectorize.SimilarityRequest) (*vectorize.SimilarityResult, error) {
	m.mu.Lock()
	m.similarityCalls = append(m.similarityCalls, req)
	m.mu.Unlock()

	if m.SimilarityFunc != nil {
		return m.SimilarityFunc(ctx, req)
	}
	return &vectorize.SimilarityResult{Similarity: 0.5, Model: req.Model}, nil
}

func (m *mockAPIClient) ListModels(ctx context.Context) ([]vectorize.ModelInfo, error) {
	m.mu.Lock()
	m.listModelsCalls++
	m.mu.Unlock()

	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return []vectorize.ModelInfo{{Name: "base-v1", Dimension: 768}}, nil
}

func (m *mockAPIClient) Usage(ctx context.Context, from, to string) (*vectorize.UsageStats, error) {
	m.mu.Lock()
	m.usageCalls = append(m.usageCalls, usageCall{From: from, To: to})
	m.mu.Unlock()

	if m.UsageFunc != nil {
		return m.UsageFunc(ctx, from, to)
	}
	return &vectorize.UsageStats{TotalRequests: 1, TotalTokens: 10}, nil
}

func (m *mockAPIClient) VectorizeCalls() []vectorize.VectorizeRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]vectorize.VectorizeRequest(nil), m.vectorizeCalls...)
}

func (m *mockAPIClient) BatchCalls() []vectorize.VectorizeBatchRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]vectorize.VectorizeBatchRequest(nil), m.batchCalls...)
}

func (m *mockAPIClient) SimilarityCalls() []vectorize.SimilarityRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]vectorize.SimilarityRequest(nil), m.similarityCalls...)
}

func (m *mockAPIClient) UsageCalls() []usageCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]usageCall(nil), m.usageCalls...)
}

func (m *mockAPIClient) ListModelsCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listModelsCalls
}

// ---------------------------------------------------------------------------
// Mock CompatFactory + EmbeddingsCreator
// ---------------------------------------------------------------------------

type mockCompatFactory struct {
	NewEmbedderFunc func(apiKey, baseURL string) EmbeddingsCreator

	mu               sync.Mutex
	newEmbedderCalls []clientCall
	mockEmbedder     *mockEmbedder
}

func (m *mockCompatFactory) NewEmbedder(apiKey, baseURL string) EmbeddingsCreator {
	m.mu.Lock()
	m.newEmbedderCalls = append(m.newEmbedderCalls, clientCall{APIKey: apiKey, BaseURL: baseURL})
	m.mu.Unlock()

	if m.NewEmbedderFunc != nil {
		return m.NewEmbedderFunc(apiKey, baseURL)
	}
	if m.mockEmbedder != nil {
		return m.mockEmbedder
	}
	return &mockEmbedder{}
}

func (m *mockCompatFactory) NewEmbedderCalls() []clientCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]clientCall(nil), m.newEmbedderCalls...)
}

type mockEmbedder struct {
	CreateEmbeddingsFunc func(ctx context.Context, req openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)

	mu          sync.Mutex
	createCalls []openai.EmbeddingRequestConverter
}

func (m *mockEmbedder) CreateEmbeddings(ctx context.Context, req openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, req)
	m.mu.Unlock()

	if m.CreateEmbeddingsFunc != nil {
		return m.CreateEmbeddingsFunc(ctx, req)
	}
	return openai.EmbeddingResponse{
		Object: "list",
		Data:   []openai.Embedding{{Object: "embedding", Embedding: []float32{0.1}, Index: 0}},
	}, nil
}

func (m *mockEmbedder) CreateCalls() []openai.EmbeddingRequestConverter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]openai.EmbeddingRequestConverter(nil), m.createCalls...)
}

// ---------------------------------------------------------------------------
// Compile-time interface verification
// ---------------------------------------------------------------------------

var (
	_ ConfigLoader      = (*mockConfigLoader)(nil)
	_ ClientFactory     = (*mockClientFactory)(nil)
	_ APIClient         = (*mockAPIClient)(nil)
	_ CompatFactory     = (*mockCompatFactory)(nil)
	_ EmbeddingsCreator = (*mockEmbedder)(nil)
)
