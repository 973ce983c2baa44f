package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neurodoc/neurodoc-go/internal/client"
)

// NewAuditCmd creates the 'audit' command and its 'stats' subcommand.
func NewAuditCmd() *cobra.Command {
	var opts client.AuditOptions

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the audit trail of queries and decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			trail, err := e.client.AuditTrail(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(trail)
			}

			if len(trail.Entries) == 0 {
				fmt.Println("No audit entries found.")
				return nil
			}

			fmt.Printf("Audit trail (%d):\n", len(trail.Entries))
			for _, entry := range trail.Entries {
				fmt.Printf("  %s  %s -> %s (%.2f)\n",
					entry.CreatedAt, truncate(entry.Query, 50), entry.Decision, entry.Confidence)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum entries to return")
	cmd.Flags().StringVar(&opts.StartDate, "start", "", "start date (RFC 3339)")
	cmd.Flags().StringVar(&opts.EndDate, "end", "", "end date (RFC 3339)")

	cmd.AddCommand(newAuditStatsCmd())

	return cmd
}

func newAuditStatsCmd() *cobra.Command {
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate audit statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			stats, err := e.client.AuditStatistics(cmd.Context(), startDate, endDate)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(stats)
			}

			fmt.Printf("Total queries: %d\n", stats.Statistics.TotalQueries)
			fmt.Printf("Average confidence: %.2f\n", stats.Statistics.AverageConfidence)
			for decision, count := range stats.Statistics.Decisions {
				fmt.Printf("  %s: %d\n", decision, count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "start date (RFC 3339, default 30 days ago)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (RFC 3339, default now)")

	return cmd
}
