package cli

import (
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	vectorize "github.com/alnah/go-vectorize"
	"github.com/alnah/go-vectorize/internal/config"
)

func TestRunCompat_Text(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()

	err := RunCompat(testCmd(t), env, "hello world", "", "base-v1", "", "")
	if err != nil {
		t.Fatalf("RunCompat() error = %v", err)
	}

	factoryCalls := mocks.compatFactory.NewEmbedderCalls()
	if len(factoryCalls) != 1 {
		t.Fatalf("NewEmbedder calls = %d, want 1", len(factoryCalls))
	}
	if factoryCalls[0].APIKey != "test-api-key" {
		t.Errorf("APIKey = %q, want test key", factoryCalls[0].APIKey)
	}
	if factoryCalls[0].BaseURL != vectorize.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want library default", factoryCalls[0].BaseURL)
	}

	calls := mocks.embedder.CreateCalls()
	if len(calls) != 1 {
		t.Fatalf("CreateEmbeddings calls = %d, want 1", len(calls))
	}
	req, ok := calls[0].(openai.EmbeddingRequest)
	if !ok {
		t.Fatalf("request type = %T, want openai.EmbeddingRequest", calls[0])
	}
	if req.Input != "hello world" || req.Model != openai.EmbeddingModel("base-v1") {
		t.Errorf("request = %+v", req)
	}

	if !strings.Contains(stdoutOf(env), `"data"`) {
		t.Errorf("stdout = %q, want OpenAI-shaped JSON response", stdoutOf(env))
	}
}

func TestRunCompat_ConfigBaseURL(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv(withTestConfigLoader(configWith(config.Config{
		BaseURL: "https://staging.example.com",
	})))

	err := RunCompat(testCmd(t), env, "hello", "", "base-v1", "", "")
	if err != nil {
		t.Fatalf("RunCompat() error = %v", err)
	}

	if got := mocks.compatFactory.NewEmbedderCalls()[0].BaseURL; got != "https://staging.example.com" {
		t.Errorf("BaseURL = %q, want config value", got)
	}
}

func TestRunCompat_APIKeyMissing(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv(withTestGetenv(staticEnv(nil)))

	err := RunCompat(testCmd(t), env, "hello", "", "base-v1", "", "")
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Fatalf("RunCompat() error = %v, want ErrAPIKeyMissing", err)
	}
	if len(mocks.compatFactory.NewEmbedderCalls()) != 0 {
		t.Error("embedder constructed despite missing API key")
	}
}

func TestRunCompat_EmptyInput(t *testing.T) {
	t.Parallel()

	env, _ := testEnv()

	err := RunCompat(testCmd(t), env, "", "", "base-v1", "", "")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("RunCompat() error = %v, want ErrEmptyInput", err)
	}
}
