package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alnah/go-vectorize/internal/format"
)

// ModelsCmd creates the models command.
// The env parameter provides injectable dependencies for testing.
func ModelsCmd(env *Env) *cobra.Command {
	var (
		baseURL string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List available embedding models",
		Long: `List available embedding models.

Shows each model's name, vector dimension, input limit, and price.
Use --json for machine-readable output.`,
		Example: `  vectorize models
  vectorize models --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModels(cmd, env, baseURL, jsonOut)
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Service base URL (default: config or built-in)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print models as JSON")

	return cmd
}

// runModels executes the models command.
func runModels(cmd *cobra.Command, env *Env, baseURL string, jsonOut bool) error {
	ctx := cmd.Context()

	client, _, err := setup(env, baseURL, "")
	if err != nil {
		return err
	}

	models, err := client.ListModels(ctx)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(env.Stdout, models)
	}

	if len(models) == 0 {
		fmt.Fprintln(env.Stdout, "No models available.")
		return nil
	}

	w := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIMENSION\tMAX INPUT\tPRICE")
	for _, m := range models {
		maxInput := "-"
		if m.MaxInputTokens > 0 {
			maxInput = format.Count(m.MaxInputTokens)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			m.Name, format.Dimension(m.Dimension), maxInput, format.Price(m.PricePerMillion))
	}
	return w.Flush()
}
