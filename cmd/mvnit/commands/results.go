package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newResultsCmd() *cobra.Command {
	var layout layoutFlags
	cmd := &cobra.Command{
		Use:   "results",
		Short: "List the results archived by earlier runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			settings, _, err := c.settings(&layout)
			if err != nil {
				return err
			}
			results, err := c.app.Results(settings)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			if len(results) == 0 {
				_, _ = fmt.Fprintln(out, "no archived results")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "CASE\tSTATUS\tEXIT\tDURATION\tSTARTED")
			for _, r := range results {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
					r.Key,
					r.Outcome.Status,
					r.Outcome.ExitCode,
					r.Duration.Round(time.Millisecond),
					r.StartedAt.Format(time.RFC3339),
				)
			}
			return tw.Flush()
		},
	}
	layout.register(cmd, false)
	cmd.Flags().Bool("json", false, "Print the results as JSON")
	return cmd
}
