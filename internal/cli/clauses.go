package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewClausesCmd creates the 'clauses' command.
func NewClausesCmd() *cobra.Command {
	var (
		limit      int
		embeddings bool
	)

	cmd := &cobra.Command{
		Use:   "clauses <document-id>",
		Short: "Show extracted clauses of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			list, err := e.client.Clauses(cmd.Context(), args[0], limit, embeddings)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(list)
			}

			fmt.Printf("Clauses of %s (%d):\n", args[0], len(list.Clauses))
			for _, c := range list.Clauses {
				fmt.Printf("  %s  %s\n", c.ID, truncate(c.Text, 100))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum clauses to return")
	cmd.Flags().BoolVar(&embeddings, "embeddings", false, "include clause embeddings")

	return cmd
}
