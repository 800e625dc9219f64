package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alnah/go-vectorize/internal/format"
)

// UsageCmd creates the usage command.
// The env parameter provides injectable dependencies for testing.
func UsageCmd(env *Env) *cobra.Command {
	var (
		from    string
		to      string
		baseURL string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show API usage statistics",
		Long: `Show API usage statistics for the account.

Without flags the service's default reporting window is used. Bound the
window with --from and --to (YYYY-MM-DD).`,
		Example: `  vectorize usage
  vectorize usage --from 2026-08-01 --to 2026-08-22
  vectorize usage --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsage(cmd, env, from, to, baseURL, jsonOut)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start of the reporting window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End of the reporting window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Service base URL (default: config or built-in)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print usage as JSON")

	return cmd
}

// runUsage executes the usage command.
func runUsage(cmd *cobra.Command, env *Env, from, to, baseURL string, jsonOut bool) error {
	ctx := cmd.Context()

	client, _, err := setup(env, baseURL, "")
	if err != nil {
		return err
	}

	stats, err := client.Usage(ctx, from, to)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(env.Stdout, stats)
	}

	if stats.Period != nil {
		fmt.Fprintf(env.Stdout, "Period: %s to %s\n", stats.Period.From, stats.Period.To)
	}
	fmt.Fprintf(env.Stdout, "Requests: %s\n", format.Count(stats.TotalRequests))
	fmt.Fprintf(env.Stdout, "Tokens:   %s\n", format.Count(stats.TotalTokens))

	if len(stats.Daily) > 0 {
		fmt.Fprintln(env.Stdout)
		w := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tREQUESTS\tTOKENS")
		for _, day := range stats.Daily {
			fmt.Fprintf(w, "%s\t%s\t%s\n", day.Date, format.Count(day.Requests), format.Count(day.Tokens))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	return nil
}
