package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCommand creates the version command.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tide %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
