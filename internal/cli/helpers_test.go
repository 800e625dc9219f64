package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/alnah/go-vectorize/internal/config"
)

// ---------------------------------------------------------------------------
// syncBuffer - thread-safe bytes.Buffer for concurrent test output
// ---------------------------------------------------------------------------

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Compile-time check that syncBuffer implements io.Writer.
var _ io.Writer = (*syncBuffer)(nil)

// ---------------------------------------------------------------------------
// testMocks - convenience struct for grouping all mocks
// ---------------------------------------------------------------------------

type testMocks struct {
	configLoader  *mockConfigLoader
	clientFactory *mockClientFactory
	compatFactory *mockCompatFactory
	client        *mockAPIClient
	embedder      *mockEmbedder
}

func newTestMocks() *testMocks {
	client := &mockAPIClient{}
	embedder := &mockEmbedder{}
	return &testMocks{
		configLoader:  &mockConfigLoader{},
		clientFactory: &mockClientFactory{mockClient: client},
		compatFactory: &mockCompatFactory{mockEmbedder: embedder},
		client:        client,
		embedder:      embedder,
	}
}

// ---------------------------------------------------------------------------
// testEnv - creates a fully mocked Env for testing
// ---------------------------------------------------------------------------

// testEnvOptions configures a test environment.
type testEnvOptions struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	mocks  *testMocks
}

// testEnvOption configures testEnv.
type testEnvOption func(*testEnvOptions)

// withTestGetenv overrides the environment variable getter.
func withTestGetenv(fn func(string) string) testEnvOption {
	return func(o *testEnvOptions) {
		o.getenv = fn
	}
}

// withTestConfigLoader overrides the config loader mock.
func withTestConfigLoader(l *mockConfigLoader) testEnvOption {
	return func(o *testEnvOptions) {
		o.mocks.configLoader = l
	}
}

// testEnv creates a test Env with all dependencies mocked.
// Returns the Env and the mocks for assertions.
func testEnv(opts ...testEnvOption) (*Env, *testMocks) {
	options := &testEnvOptions{
		stdout: &syncBuffer{},
		stderr: &syncBuffer{},
		getenv: defaultTestEnv,
		mocks:  newTestMocks(),
	}

	for _, opt := range opts {
		opt(options)
	}

	env := &Env{
		Stdout:        options.stdout,
		Stderr:        options.stderr,
		Getenv:        options.getenv,
		ConfigLoader:  options.mocks.configLoader,
		ClientFactory: options.mocks.clientFactory,
		CompatFactory: options.mocks.compatFactory,
	}

	return env, options.mocks
}

// testCmd returns a cobra command carrying a background context, for run
// functions that read cmd.Context().
func testCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

// stdoutOf returns the captured stdout of a test Env.
func stdoutOf(env *Env) string {
	return env.Stdout.(*syncBuffer).String()
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// staticEnv returns a getenv function that returns values from the given map.
func staticEnv(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

// defaultTestEnv returns a test API key.
func defaultTestEnv(key string) string {
	if key == EnvAPIKey {
		return "test-api-key"
	}
	return ""
}

// createTestFile creates a temporary file with the given content.
// Returns the file path. The file is automatically cleaned up after the test.
func createTestFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

// readFile reads a file created by a command under test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// configWith returns a ConfigLoader that returns the given config.
func configWith(cfg config.Config) *mockConfigLoader {
	return &mockConfigLoader{
		LoadFunc: func() (config.Config, error) {
			return cfg, nil
		},
	}
}
