package cli

import (
	"fmt"

	"github.com/alnah/go-vectorize/internal/config"
)

// setup resolves configuration and builds an API client for a command run.
// Precedence for the base URL: --base-url flag, then config/env, then the
// library default. The default model falls back to config when the flag is
// empty.
func setup(env *Env, baseURL, model string) (APIClient, string, error) {
	apiKey := env.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, "", fmt.Errorf("%w (set it with: export %s=vk-...)", ErrAPIKeyMissing, EnvAPIKey)
	}

	cfg, err := env.ConfigLoader.Load()
	if err != nil {
		fmt.Fprintf(env.Stderr, "Warning: failed to load config: %v\n", err)
	}

	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	if model == "" {
		model = cfg.DefaultModel
	}

	client, err := env.ClientFactory.NewClient(apiKey, baseURL)
	if err != nil {
		return nil, "", err
	}
	return client, model, nil
}

// resolveOutput resolves an output path against the configured output-dir.
// Empty output means stdout, which bypasses output-dir resolution.
func resolveOutput(env *Env, output string) string {
	if output == "" {
		return ""
	}

	cfg, err := env.ConfigLoader.Load()
	if err != nil {
		return output
	}
	return config.ResolveOutputPath(output, cfg.OutputDir, output)
}
