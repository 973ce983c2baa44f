package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHealthCmd creates the 'health' command.
func NewHealthCmd() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check NeuroDoc API health",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			resp, err := e.client.Health(cmd.Context(), detailed)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(resp)
			}

			fmt.Printf("Status: %s\n", resp.Status)
			if resp.Version != "" {
				fmt.Printf("Version: %s\n", resp.Version)
			}
			for name, state := range resp.Checks {
				fmt.Printf("  %s: %s\n", name, state)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "include component checks")

	return cmd
}
