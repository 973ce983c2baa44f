package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUploadCmd creates the 'upload' command.
func NewUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document for processing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			resp, err := e.client.Upload(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(resp)
			}

			fmt.Printf("Uploaded %s as document %s\n", resp.Document.Filename, resp.Document.ID)
			if resp.Message != "" {
				fmt.Println(resp.Message)
			}
			return nil
		},
	}
}
