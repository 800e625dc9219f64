package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	vectorize "github.com/alnah/go-vectorize"
)

// BatchCmd creates the batch command.
// The env parameter provides injectable dependencies for testing.
func BatchCmd(env *Env) *cobra.Command {
	var (
		model        string
		chunkSize    int
		chunkOverlap int
		output       string
		baseURL      string
		parallel     int
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Convert a file of texts into embedding vectors",
		Long: `Convert a file of texts into embedding vectors.

The input file holds one text per line; empty lines are skipped. Texts are
sent in a single batch request. With --parallel > 1 the texts are instead
embedded one by one with bounded concurrency, which keeps per-text chunk
counts in the results.

The result is printed as JSON to stdout, or written to a file with --output.`,
		Example: `  vectorize batch sentences.txt
  vectorize batch sentences.txt -m large-v1 -o vectors.json
  vectorize batch sentences.txt -p 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, env, args[0], model, chunkSize, chunkOverlap, output, baseURL, parallel)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Embedding model (default: service default)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Chunk size in tokens for long inputs")
	cmd.Flags().IntVar(&chunkOverlap, "chunk-overlap", 0, "Token overlap between chunks")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Service base URL (default: config or built-in)")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "Embed texts individually with this many concurrent requests (1-10)")

	return cmd
}

// runBatch executes the batch pipeline.
func runBatch(cmd *cobra.Command, env *Env, inputPath, model string, chunkSize, chunkOverlap int, output, baseURL string, parallel int) error {
	ctx := cmd.Context()

	texts, err := readLines(inputPath)
	if err != nil {
		return err
	}

	client, model, err := setup(env, baseURL, model)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stderr, "Embedding %d texts...\n", len(texts))

	// Per-text mode: fan out single requests with bounded concurrency.
	if parallel > 1 {
		results, err := vectorize.VectorizeAll(ctx, client, texts, vectorize.VectorizeOptions{
			Model:        model,
			ChunkSize:    chunkSize,
			ChunkOverlap: chunkOverlap,
		}, clampParallel(parallel))
		if err != nil {
			return err
		}
		return emitResult(env, resolveOutput(env, output), results)
	}

	res, err := client.VectorizeBatch(ctx, vectorize.VectorizeBatchRequest{
		Texts:        texts,
		Model:        model,
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
	})
	if err != nil {
		return err
	}

	return emitResult(env, resolveOutput(env, output), res)
}
