package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewQueryCmd creates the 'query' command.
func NewQueryCmd() *cobra.Command {
	var (
		limit      int
		threshold  float64
		references bool
	)

	cmd := &cobra.Command{
		Use:   "query <question...>",
		Short: "Query documents for a decision",
		Args:  cobra.MinimumNArgs(1),
		Example: `  neurodoc query "45-year-old male, cardiac surgery in Mumbai"
  neurodoc query --limit 10 --threshold 0.5 maternity coverage premium plan`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			opts := e.queryOptions()
			if cmd.Flags().Changed("limit") {
				opts.Limit = limit
			}
			if cmd.Flags().Changed("threshold") {
				opts.Threshold = threshold
			}
			if cmd.Flags().Changed("references") {
				opts.IncludeReferences = references
			}

			resp, err := e.client.Query(cmd.Context(), strings.Join(args, " "), opts)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(resp)
			}

			fmt.Printf("Decision: %s (confidence %.2f)\n", decisionText(resp.Decision), resp.ConfidenceScore)
			if resp.Justification != "" {
				fmt.Printf("Justification: %s\n", resp.Justification)
			}
			for _, ref := range resp.References {
				fmt.Printf("  [%s] %s (score %.2f)\n", ref.DocumentID, truncate(ref.Text, 80), ref.Score)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "maximum clauses to consider")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.7, "relevance threshold")
	cmd.Flags().BoolVar(&references, "references", true, "include cited clauses")

	return cmd
}
