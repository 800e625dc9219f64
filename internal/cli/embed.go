package cli

import (
	"github.com/spf13/cobra"

	vectorize "github.com/alnah/go-vectorize"
)

// EmbedCmd creates the embed command.
// The env parameter provides injectable dependencies for testing.
func EmbedCmd(env *Env) *cobra.Command {
	var (
		file         string
		model        string
		chunkSize    int
		chunkOverlap int
		output       string
		baseURL      string
	)

	cmd := &cobra.Command{
		Use:   "embed [text]",
		Short: "Convert a text into an embedding vector",
		Long: `Convert a text into an embedding vector.

The text is passed as a positional argument or read from a file with --file.
Long inputs are chunked server-side; --chunk-size and --chunk-overlap tune
the chunking, zero values let the service decide.

The result is printed as JSON to stdout, or written to a file with --output.`,
		Example: `  vectorize embed "a short text"
  vectorize embed --file document.txt -m large-v1
  vectorize embed --file document.txt --chunk-size 512 --chunk-overlap 64
  vectorize embed "a short text" -o vector.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runEmbed(cmd, env, arg, file, model, chunkSize, chunkOverlap, output, baseURL)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input text from a file")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Embedding model (default: service default)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Chunk size in tokens for long inputs")
	cmd.Flags().IntVar(&chunkOverlap, "chunk-overlap", 0, "Token overlap between chunks")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Service base URL (default: config or built-in)")

	return cmd
}

// runEmbed executes the embed pipeline.
// Validation order: input text -> API key -> request.
func runEmbed(cmd *cobra.Command, env *Env, arg, file, model string, chunkSize, chunkOverlap int, output, baseURL string) error {
	ctx := cmd.Context()

	text, err := resolveText(arg, file)
	if err != nil {
		return err
	}

	client, model, err := setup(env, baseURL, model)
	if err != nil {
		return err
	}

	res, err := client.Vectorize(ctx, vectorize.VectorizeRequest{
		Text:         text,
		Model:        model,
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
	})
	if err != nil {
		return err
	}

	return emitResult(env, resolveOutput(env, output), res)
}
