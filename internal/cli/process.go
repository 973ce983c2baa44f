package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewProcessCmd creates the 'process' command: upload then query.
func NewProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process <file> <question...>",
		Short: "Upload a document and query it in one step",
		Args:  cobra.MinimumNArgs(2),
		Example: `  neurodoc process policy.pdf "is knee surgery covered?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			result, err := e.workflow().ProcessDocumentAndQuery(
				cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(result)
			}

			fmt.Printf("Document: %s\n", result.DocumentID)
			fmt.Printf("Decision: %s (confidence %.2f)\n",
				decisionText(result.Query.Decision), result.Query.ConfidenceScore)
			return nil
		},
	}

	return cmd
}
