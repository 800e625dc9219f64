package cli

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	vectorize "github.com/alnah/go-vectorize"
)

// CompatCmd creates the compat command, which exercises the service's
// OpenAI-compatible /embeddings endpoint through the stock OpenAI client.
// The env parameter provides injectable dependencies for testing.
func CompatCmd(env *Env) *cobra.Command {
	var (
		file    string
		model   string
		baseURL string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "compat [text]",
		Short: "Embed a text via the OpenAI-compatible endpoint",
		Long: `Embed a text via the service's OpenAI-compatible /embeddings endpoint.

The request goes through the standard OpenAI client pointed at the service,
which verifies that OpenAI SDKs interoperate with the service unchanged.
Requires --model since the compatible endpoint has no default.`,
		Example: `  vectorize compat "a short text" -m base-v1
  vectorize compat --file document.txt -m large-v1 -o vector.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runCompat(cmd, env, arg, file, model, baseURL, output)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input text from a file")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Embedding model (required)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Service base URL (default: config or built-in)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

// runCompat executes the compat command.
func runCompat(cmd *cobra.Command, env *Env, arg, file, model, baseURL, output string) error {
	ctx := cmd.Context()

	text, err := resolveText(arg, file)
	if err != nil {
		return err
	}

	apiKey := env.Getenv(EnvAPIKey)
	if apiKey == "" {
		return fmt.Errorf("%w (set it with: export %s=vk-...)", ErrAPIKeyMissing, EnvAPIKey)
	}

	cfg, err := env.ConfigLoader.Load()
	if err != nil {
		fmt.Fprintf(env.Stderr, "Warning: failed to load config: %v\n", err)
	}
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	if baseURL == "" {
		baseURL = vectorize.DefaultBaseURL
	}

	embedder := env.CompatFactory.NewEmbedder(apiKey, baseURL)
	res, err := embedder.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: text,
		Model: openai.EmbeddingModel(model),
	})
	if err != nil {
		return err
	}

	return emitResult(env, resolveOutput(env, output), res)
}
