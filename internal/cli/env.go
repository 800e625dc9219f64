package cli

import (
	"context"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"

	vectorize "github.com/alnah/go-vectorize"
	"github.com/alnah/go-vectorize/internal/config"
)

// EnvAPIKey is the environment variable holding the service API key.
const EnvAPIKey = "VECTORIZE_API_KEY"

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing CLI commands in isolation.
//
// All fields have sensible defaults via DefaultEnv(). Tests can override
// specific fields using the With* options or by creating a custom Env.
//
// Env must not be nil when passed to command functions. Use DefaultEnv()
// or NewEnv() to create a valid instance.
type Env struct {
	// I/O and environment
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string

	// Factories for domain objects
	ConfigLoader  ConfigLoader
	ClientFactory ClientFactory
	CompatFactory CompatFactory
}

// ConfigLoader loads and provides access to configuration.
type ConfigLoader interface {
	Load() (config.Config, error)
}

// APIClient is the subset of the vectorize client used by CLI commands.
type APIClient interface {
	Vectorize(ctx context.Context, req vectorize.VectorizeRequest) (*vectorize.VectorizeResult, error)
	VectorizeBatch(ctx context.Context, req vectorize.VectorizeBatchRequest) (*vectorize.VectorizeBatchResult, error)
	Similarity(ctx context.Context, req vectorize.SimilarityRequest) (*vectorize.SimilarityResult, error)
	ListModels(ctx context.Context) ([]vectorize.ModelInfo, error)
	Usage(ctx context.Context, from, to string) (*vectorize.UsageStats, error)
}

// ClientFactory creates API clients bound to a key and base URL.
type ClientFactory interface {
	NewClient(apiKey, baseURL string) (APIClient, error)
}

// EmbeddingsCreator is the OpenAI-client surface used by the compat command.
type EmbeddingsCreator interface {
	CreateEmbeddings(ctx context.Context, req openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// CompatFactory creates OpenAI-compatible embeddings clients pointed at
// the service's /embeddings endpoint.
type CompatFactory interface {
	NewEmbedder(apiKey, baseURL string) EmbeddingsCreator
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithClientFactory sets the API client factory.
func WithClientFactory(f ClientFactory) EnvOption {
	return func(e *Env) {
		e.ClientFactory = f
	}
}

// WithCompatFactory sets the OpenAI-compatible client factory.
func WithCompatFactory(f CompatFactory) EnvOption {
	return func(e *Env) {
		e.CompatFactory = f
	}
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Getenv:        os.Getenv,
		ConfigLoader:  &defaultConfigLoader{},
		ClientFactory: &defaultClientFactory{},
		CompatFactory: &defaultCompatFactory{},
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// ---------------------------------------------------------------------------
// Default implementations - delegate to real packages
// ---------------------------------------------------------------------------

// defaultConfigLoader implements ConfigLoader using the config package.
type defaultConfigLoader struct{}

func (defaultConfigLoader) Load() (config.Config, error) {
	return config.Load()
}

// defaultClientFactory implements ClientFactory using the vectorize package.
type defaultClientFactory struct{}

func (defaultClientFactory) NewClient(apiKey, baseURL string) (APIClient, error) {
	var opts []vectorize.ClientOption
	if baseURL != "" {
		opts = append(opts, vectorize.WithBaseURL(baseURL))
	}
	return vectorize.NewClient(apiKey, opts...)
}

// defaultCompatFactory implements CompatFactory using the OpenAI client
// pointed at the service's OpenAI-compatible endpoint.
type defaultCompatFactory struct{}

func (defaultCompatFactory) NewEmbedder(apiKey, baseURL string) EmbeddingsCreator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = vectorize.DefaultBaseURL
	}
	cfg.BaseURL = baseURL
	return openai.NewClientWithConfig(cfg)
}

// Compile-time interface verification.
var (
	_ ConfigLoader  = (*defaultConfigLoader)(nil)
	_ ClientFactory = (*defaultClientFactory)(nil)
	_ CompatFactory = (*defaultCompatFactory)(nil)
	_ APIClient     = (*vectorize.Client)(nil)
)
