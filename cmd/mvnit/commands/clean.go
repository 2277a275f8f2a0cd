package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	var layout layoutFlags
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove all test workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, _, err := c.settings(&layout)
			if err != nil {
				return err
			}
			return c.app.Clean(cmd.Context(), settings)
		},
	}
	layout.register(cmd, false)
	return cmd
}
