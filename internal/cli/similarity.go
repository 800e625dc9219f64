package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	vectorize "github.com/alnah/go-vectorize"
)

// SimilarityCmd creates the similarity command.
// The env parameter provides injectable dependencies for testing.
func SimilarityCmd(env *Env) *cobra.Command {
	var (
		model   string
		baseURL string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "similarity <text1> <text2>",
		Short: "Compute semantic similarity between two texts",
		Long: `Compute semantic similarity between two texts.

Both texts are embedded with the same model and their cosine similarity is
printed as a number between -1 and 1. Use --json for the full result.`,
		Example: `  vectorize similarity "a cat" "a kitten"
  vectorize similarity "a cat" "a kitten" -m large-v1 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimilarity(cmd, env, args[0], args[1], model, baseURL, jsonOut)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Embedding model (default: service default)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Service base URL (default: config or built-in)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the full result as JSON")

	return cmd
}

// runSimilarity executes the similarity command.
func runSimilarity(cmd *cobra.Command, env *Env, text1, text2, model, baseURL string, jsonOut bool) error {
	ctx := cmd.Context()

	client, model, err := setup(env, baseURL, model)
	if err != nil {
		return err
	}

	res, err := client.Similarity(ctx, vectorize.SimilarityRequest{
		Text1: text1,
		Text2: text2,
		Model: model,
	})
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(env.Stdout, res)
	}

	fmt.Fprintf(env.Stdout, "%.4f\n", res.Similarity)
	return nil
}
