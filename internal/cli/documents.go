package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neurodoc/neurodoc-go/internal/client"
)

// NewDocumentsCmd creates the 'documents' command.
func NewDocumentsCmd() *cobra.Command {
	var opts client.ListOptions

	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs", "ls"},
		Short:   "List uploaded documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			list, err := e.client.ListDocuments(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(list)
			}

			if len(list.Documents) == 0 {
				fmt.Println("No documents found.")
				return nil
			}

			fmt.Printf("Documents (%d):\n", len(list.Documents))
			for _, d := range list.Documents {
				fmt.Printf("  %s  %s", d.ID, d.Filename)
				if d.Status != "" {
					fmt.Printf("  [%s]", d.Status)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 50, "maximum documents to return")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "listing offset")
	cmd.Flags().StringVar(&opts.Search, "search", "", "filter by filename")
	cmd.Flags().StringVar(&opts.FileType, "file-type", "", "filter by file type")

	return cmd
}
